//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/sha1sum/env"
	"github.com/markkurossi/sha1sum/sha1"
)

type vector struct {
	label  string
	data   []byte
	digest string
}

func vectors() []vector {
	return []vector{
		{
			label:  `""`,
			data:   nil,
			digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		{
			label:  `"abc"`,
			data:   []byte("abc"),
			digest: "a9993e364706816aba3e25717850c26c9cd0d89d",
		},
		{
			label: `"abcdbcde...nopq"`,
			data: []byte(
				"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			digest: "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{
			label:  `1,000,000 x "a"`,
			data:   bytes.Repeat([]byte{'a'}, 1000000),
			digest: "34aa973cd4c4daa4f61eeb2bdbad27316534016f",
		},
	}
}

func selftest(config *env.Config, out io.Writer) error {
	return runVectors(config, vectors(), out)
}

func runVectors(config *env.Config, vs []vector, out io.Writer) error {
	logger := config.GetLog()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MC)

	var failed int
	for _, v := range vs {
		sum := sha1.Sum(v.data)
		got := hex.EncodeToString(sum[:])

		row := tab.Row()
		row.Column(v.label)
		row.Column(fmt.Sprintf("%d", sha1.Blocks(len(v.data))))
		row.Column(got)
		if got == v.digest {
			row.Column("ok")
		} else {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
			logger.Errorf("%s: got %s, want %s", v.label, got, v.digest)
			failed++
		}
	}
	tab.Print(out)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d vectors", ErrSelftest, failed,
			len(vs))
	}
	return nil
}
