//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/sha1sum/env"
)

func writeInput(t *testing.T, data []byte) (input, output string) {
	t.Helper()

	dir := t.TempDir()
	input = filepath.Join(dir, "input.bin")
	output = filepath.Join(dir, "digest.bin")
	require.NoError(t, os.WriteFile(input, data, 0644))
	return input, output
}

func TestRun(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 1000)
	input, output := writeInput(t, data)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{input, output}, &stdout, &stderr),
		stderr.String())

	digest, err := os.ReadFile(output)
	require.NoError(t, err)
	want := stdsha1.Sum(data)
	assert.Equal(t, want[:], digest)
	assert.Empty(t, stdout.String())
}

func TestRunArguments(t *testing.T) {
	input, _ := writeInput(t, []byte("abc"))

	for _, args := range [][]string{nil, {input}} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stdout, &stderr))
		assert.Contains(t, stderr.String(), ErrFilenames.Error())
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "digest.bin")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing"), output},
		&stdout, &stderr))
	assert.Contains(t, stderr.String(), ErrNotFound.Error())

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunBadOutput(t *testing.T) {
	input, _ := writeInput(t, []byte("abc"))
	output := filepath.Join(t.TempDir(), "missing", "digest.bin")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{input, output}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "write digest")
}

func TestRunTruncates(t *testing.T) {
	data := make([]byte, env.DefaultMaxInput+1000)
	for i := range data {
		data[i] = byte(i)
	}
	input, output := writeInput(t, data)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{input, output}, &stdout, &stderr))

	digest, err := os.ReadFile(output)
	require.NoError(t, err)
	want := stdsha1.Sum(data[:env.DefaultMaxInput])
	assert.Equal(t, want[:], digest)
}

func TestRunMaxInput(t *testing.T) {
	input, output := writeInput(t, []byte("abcdef"))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--max-input", "3", input, output},
		&stdout, &stderr))

	digest, err := os.ReadFile(output)
	require.NoError(t, err)
	want := stdsha1.Sum([]byte("abc"))
	assert.Equal(t, want[:], digest)
}

func TestRunMaxInputFromEnv(t *testing.T) {
	input, output := writeInput(t, []byte("abcdef"))

	t.Setenv("SHA1SUM_MAX_INPUT", "2")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{input, output}, &stdout, &stderr))

	digest, err := os.ReadFile(output)
	require.NoError(t, err)
	want := stdsha1.Sum([]byte("ab"))
	assert.Equal(t, want[:], digest)
}

func TestRunVerbose(t *testing.T) {
	input, output := writeInput(t, []byte("abc"))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-v", input, output}, &stdout, &stderr))
	for _, s := range []string{"Read", "Hash", "Write", "Blocks", "Total"} {
		assert.Contains(t, stdout.String(), s)
	}
}

func TestRunDebugLog(t *testing.T) {
	data := make([]byte, 100)
	input, output := writeInput(t, data)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--log-level", "debug", "--max-input",
		"10", input, output}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "input truncated to 10 bytes")
	assert.Contains(t, stderr.String(), "app=sha1sum")
}

func TestRunBadLogLevel(t *testing.T) {
	input, output := writeInput(t, []byte("abc"))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--log-level", "loud", input, output},
		&stdout, &stderr))
	assert.Contains(t, stderr.String(), "invalid log level")
}

func TestSelftest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"selftest"}, &stdout, &stderr),
		stderr.String())
	assert.Contains(t, stdout.String(), "a9993e364706816aba3e25717850c26c9cd0d89d")
	assert.NotContains(t, stdout.String(), "FAIL")
}

func TestSelftestMismatch(t *testing.T) {
	var stdout bytes.Buffer
	err := runVectors(&env.Config{}, []vector{
		{
			label:  "bad",
			data:   []byte("abc"),
			digest: "0000000000000000000000000000000000000000",
		},
	}, &stdout)
	assert.ErrorIs(t, err, ErrSelftest)
	assert.Contains(t, stdout.String(), "FAIL")
}
