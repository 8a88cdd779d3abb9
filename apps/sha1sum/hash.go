//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/sha1sum/env"
	"github.com/markkurossi/sha1sum/sha1"
	"github.com/markkurossi/sha1sum/timing"
)

var (
	ErrFilenames = errors.New("Filenames not supplied.")
	ErrNotFound  = errors.New("File to hash not found.")
	ErrSelftest  = errors.New("selftest failed")
)

// readInput reads at most limit bytes from the file input. The second
// return value tells if the file had more data than was read.
func readInput(input string, limit int) ([]byte, bool, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, false, fmt.Errorf("%w (%v)", ErrNotFound, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", input, err)
	}
	if len(data) < limit {
		return data, false, nil
	}
	var probe [1]byte
	n, _ := f.Read(probe[:])
	return data, n > 0, nil
}

func hashCommand(config *env.Config, input, output string, verbose bool,
	out io.Writer) error {

	logger := config.GetLog().WithField("input", input)
	t := timing.New()

	data, truncated, err := readInput(input, config.GetMaxInput())
	if err != nil {
		return err
	}
	if truncated {
		logger.Debugf("input truncated to %d bytes", len(data))
	}
	t.Sample("Read", timing.FileSize(len(data)).String(), "")

	digest := sha1.Sum(data)
	t.Sample("Hash", "", fmt.Sprintf("%d", sha1.Blocks(len(data))))

	if err := os.WriteFile(output, digest[:], 0644); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	t.Sample("Write", timing.FileSize(len(digest)).String(), "")

	logger.WithField("output", output).Debugf("digest %x", digest)

	if verbose {
		t.Print(out, "Xfer", "Blocks")
	}
	return nil
}
