package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ninter/setools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLzb(args ...string) (string, error) {
	var stdout bytes.Buffer
	err := newApp(&stdout).Run(append([]string{"lzb"}, args...))
	return stdout.String(), err
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := bytes.Repeat([]byte("na"), 500)
	sourcePath := filepath.Join(dir, "source")
	packedPath := filepath.Join(dir, "packed")
	unpackedPath := filepath.Join(dir, "unpacked")
	require.NoError(t, os.WriteFile(sourcePath, original, 0644))

	output, err := runLzb(sourcePath, packedPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Compressed")

	packed, err := os.ReadFile(packedPath)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(original))

	output, err = runLzb("-d", packedPath, unpackedPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Decompressed")
	assert.Contains(t, output, "to 1000 bytes")

	unpacked, err := os.ReadFile(unpackedPath)
	require.NoError(t, err)
	assert.Equal(t, original, unpacked)
}

func TestWrongArgumentCount(t *testing.T) {
	_, err := runLzb("only-one")
	assert.ErrorIs(t, err, setools.ErrInvalidArgument)
}

func TestMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	_, err := runLzb(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, setools.ErrIOFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmptyFile(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "empty")
	packedPath := filepath.Join(dir, "packed")
	unpackedPath := filepath.Join(dir, "unpacked")
	require.NoError(t, os.WriteFile(sourcePath, nil, 0644))

	output, err := runLzb("--decompress", sourcePath, unpackedPath)
	require.NoError(t, err)
	assert.Contains(t, output, "to 0 bytes")

	_, err = runLzb(sourcePath, packedPath)
	require.NoError(t, err)
	packed, err := os.ReadFile(packedPath)
	require.NoError(t, err)
	assert.Empty(t, packed)
}
