package testing

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/ninter/setools/utilities/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// RandomBytes returns `size` random bytes. It is guaranteed to either return a
// valid slice or fail the test and abort.
func RandomBytes(t *testing.T, size int) []byte {
	data := make([]byte, size)
	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// RepeatPattern returns a slice of exactly `size` bytes made of `pattern`
// repeated as many times as needed, truncated at the end.
func RepeatPattern(pattern []byte, size int) []byte {
	if len(pattern) == 0 {
		return make([]byte, size)
	}
	repeated := bytes.Repeat(pattern, size/len(pattern)+1)
	return repeated[:size]
}

// DistinctBytes returns `size` bytes in which no 3-byte sequence occurs more
// than once. `size` must be at most 256 since every byte value is used once.
func DistinctBytes(t *testing.T, size int) []byte {
	require.LessOrEqual(t, size, 256, "can't make more than 256 distinct bytes")
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// LoadCompressed takes compressed data and returns a stream to access the
// uncompressed data.
//
//   - Writes to the stream do not affect `compressed`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadCompressed(t *testing.T, compressed []byte, expectedSize int) io.ReadWriteSeeker {
	plaintext, err := compression.DecompressToBytes(bytes.NewReader(compressed))
	require.NoError(t, err)
	require.Equal(t, expectedSize, len(plaintext), "decompressed data is wrong size")
	return bytesextra.NewReadWriteSeeker(plaintext)
}
