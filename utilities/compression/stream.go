package compression

import (
	"bytes"
	"io"

	"github.com/ninter/setools"
)

// CompressStream reads the entire input, compresses it, and writes the result
// to the output.
//
// Empty input produces empty output, and nothing is written at all.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressStream(input io.Reader, output io.Writer) (int64, error) {
	plaintext, err := io.ReadAll(input)
	if err != nil {
		return 0, setools.ErrIOFailed.Wrap(err)
	}

	encoded := encode(plaintext)
	if len(encoded) == 0 {
		return 0, nil
	}

	n, err := output.Write(encoded)
	if err != nil {
		return int64(n), setools.ErrIOFailed.Wrap(err)
	}
	return int64(n), nil
}

// DecompressStream reads an entire encoded buffer from the input and writes
// the decompressed data to the output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	plaintext, err := DecompressToBytes(input)
	if err != nil {
		return 0, err
	}
	if len(plaintext) == 0 {
		return 0, nil
	}

	n, err := output.Write(plaintext)
	if err != nil {
		return int64(n), setools.ErrIOFailed.Wrap(err)
	}
	return int64(n), nil
}

// DecompressToBytes is like [DecompressStream] but returns the decompressed
// data in a new byte slice instead of writing it to an [io.Writer].
func DecompressToBytes(input io.Reader) ([]byte, error) {
	var encoded bytes.Buffer
	_, err := encoded.ReadFrom(input)
	if err != nil {
		return nil, setools.ErrIOFailed.Wrap(err)
	}
	return decode(encoded.Bytes())
}
