// Package compression implements a small dictionary compressor for in-memory
// buffers.
//
// The input is scanned left to right. At every position the compressor looks
// back through a window of previously seen bytes for the longest earlier copy
// of the upcoming bytes. A copy of at least three bytes is emitted as a
// back-reference, a pair of bytes giving the distance back to the copy and its
// length. Anything else is emitted as a literal byte. One flag bit per token
// tells the decoder which kind of token it is looking at.
//
// The encoded buffer has no header:
//
//	[token bytes ...][flag bytes, most recent group of 8 tokens first]
//
// Flags are packed eight to a byte, least significant bit first. The byte
// holding the flags of the first eight tokens is the very last byte of the
// buffer, the next eight are in the byte before that, and so on. This lets
// the decoder find the flag of token d at byte len-1-d/8 without knowing the
// token count in advance; the token region simply ends where the flag region
// (which grows by a byte every eight tokens) begins.
//
// For example, "AAAAAAAAAA" encodes to
//
//	'A' 'A' 'A' 3 3 6 4 0x18
//
// three literals, a back-reference copying 3 bytes from 3 bytes back, another
// copying 4 bytes from 6 bytes back, and a single flag byte 0b00011000.
//
// A back-reference never copies from a region that overlaps the bytes being
// produced: its distance is always at least its length. Lengths are capped at
// 255 bytes.
//
// The window nominally covers the preceding 256 bytes ([WindowSize]), but
// distances are stored in a single byte, so a match can start at most 255
// bytes back ([MaxDistance]). A repeat exactly 256 bytes back is emitted as
// literals. Inputs shorter than 256 bytes are unaffected; on longer inputs this
// is the one place the output can differ from an encoder that searched all 256
// window positions, and every such buffer still decodes correctly.
//
// The encoding carries no marker saying whether a buffer is compressed. It is
// up to the caller not to compress twice or decompress plaintext.
package compression
