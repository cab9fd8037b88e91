package compression

import (
	bitmap "github.com/boljen/go-bitmap"
)

// flagBytesFor returns the number of bytes needed to store the flags of the
// given number of tokens.
func flagBytesFor(tokens int) int {
	return (tokens + 7) / 8
}

// packFlags packs one flag per token into the trailing flag region of an
// encoded buffer. Flags are stored least significant bit first, eight to a
// byte, and the bytes are returned in reverse order so that the flags of the
// first eight tokens end up in the last byte.
func packFlags(flags []bool) []byte {
	packed := make(bitmap.Bitmap, flagBytesFor(len(flags)))
	for i, isBackReference := range flags {
		packed.Set(i, isBackReference)
	}

	region := make([]byte, len(packed))
	for i, b := range packed {
		region[len(region)-1-i] = b
	}
	return region
}

// unpackFlag returns the flag of the token at index `token` (0-based) from a
// complete encoded buffer. The caller must make sure the buffer is long enough
// to hold the flag.
func unpackFlag(encoded []byte, token int) bool {
	byteIndex := len(encoded) - 1 - token/8
	return bitmap.Bitmap(encoded[byteIndex : byteIndex+1]).Get(token % 8)
}
