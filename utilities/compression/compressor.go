package compression

import (
	"fmt"

	"github.com/ninter/setools"
)

// Token is a single unit of the encoded stream: either a literal byte or a
// back-reference into the output produced so far.
type Token struct {
	// IsBackReference tells which of the other fields are meaningful.
	IsBackReference bool
	// Literal is the raw byte of a literal token.
	Literal byte
	// Distance is how many bytes before the current end of the output a
	// back-reference starts copying from.
	Distance int
	// Length is the number of bytes a back-reference copies.
	Length int
}

func (t Token) String() string {
	if t.IsBackReference {
		return fmt.Sprintf("copy(%d,%d)", t.Distance, t.Length)
	}
	return fmt.Sprintf("lit(%02x)", t.Literal)
}

// Compressor owns a byte buffer and compresses or decompresses it in place.
//
// A Compressor can't tell whether its buffer currently holds plaintext or
// encoded data; callers must keep track of that themselves. It is not safe
// for concurrent use.
type Compressor struct {
	data []byte
}

// NewCompressor creates a Compressor holding a copy of `data`.
func NewCompressor(data []byte) *Compressor {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Compressor{data: owned}
}

// Data returns the Compressor's buffer. Changes made to the returned slice are
// visible to the Compressor until the next call to [Compressor.Compress] or
// [Compressor.Decompress].
func (c *Compressor) Data() []byte {
	return c.data
}

// Bytes returns a copy of the current buffer.
func (c *Compressor) Bytes() []byte {
	result := make([]byte, len(c.data))
	copy(result, c.data)
	return result
}

func (c *Compressor) Size() int {
	return len(c.data)
}

// String returns the buffer's bytes as a string, without any validation.
func (c *Compressor) String() string {
	return string(c.data)
}

// Compress replaces the buffer's contents with their encoded form.
func (c *Compressor) Compress() {
	c.data = encode(c.data)
}

// Decompress replaces an encoded buffer with the plaintext it was produced
// from. If the buffer isn't well-formed the error is returned and the buffer
// is left unchanged.
func (c *Compressor) Decompress() error {
	decoded, err := decode(c.data)
	if err != nil {
		return err
	}
	c.data = decoded
	return nil
}

// Compress returns the encoded form of src. src is not modified.
func Compress(src []byte) []byte {
	return encode(src)
}

// Decompress returns the plaintext that was encoded into src. src is not
// modified.
func Decompress(src []byte) ([]byte, error) {
	return decode(src)
}

// Tokens walks an encoded buffer and returns the tokens in it, in order.
func Tokens(encoded []byte) ([]Token, error) {
	var tokens []Token
	outputSize := 0
	err := walkTokens(encoded, func(token Token) error {
		if token.IsBackReference {
			err := checkBackReference(token, outputSize)
			if err != nil {
				return err
			}
			outputSize += token.Length
		} else {
			outputSize++
		}
		tokens = append(tokens, token)
		return nil
	})
	return tokens, err
}

////////////////////////////////////////////////////////////////////////////////

func encode(data []byte) []byte {
	// Random data costs one literal per byte plus a flag byte per 8 literals.
	tokenBytes := make([]byte, 0, len(data)+flagBytesFor(len(data)))
	flags := make([]bool, 0, len(data))

	for pos := 0; pos < len(data); {
		distance, length := findMatch(data, pos)
		if length >= MinMatchLength {
			tokenBytes = append(tokenBytes, byte(distance), byte(length))
			flags = append(flags, true)
			pos += length
		} else {
			tokenBytes = append(tokenBytes, data[pos])
			flags = append(flags, false)
			pos++
		}
	}

	return append(tokenBytes, packFlags(flags)...)
}

func decode(encoded []byte) ([]byte, error) {
	output := make([]byte, 0, len(encoded)*2)
	err := walkTokens(encoded, func(token Token) error {
		if !token.IsBackReference {
			output = append(output, token.Literal)
			return nil
		}

		err := checkBackReference(token, len(output))
		if err != nil {
			return err
		}
		// The source range lies entirely within what's already been written,
		// so a plain append is safe even if it reallocates.
		start := len(output) - token.Distance
		output = append(output, output[start:start+token.Length]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// walkTokens calls `visit` on every token of the encoded buffer in order,
// stopping at the first error.
//
// The token region ends where the flag region begins, and the flag region
// grows by one byte every eight tokens. Walking stops once the cursor reaches
// the start of the flag region needed for the tokens read so far.
func walkTokens(encoded []byte, visit func(Token) error) error {
	cursor := 0
	for tokenIndex := 0; cursor < len(encoded)-flagBytesFor(tokenIndex); tokenIndex++ {
		// The flag byte for this token may be one we haven't accounted for yet,
		// in which case the token region just got a byte shorter.
		tokenRegionEnd := len(encoded) - flagBytesFor(tokenIndex+1)

		var token Token
		if unpackFlag(encoded, tokenIndex) {
			if cursor+2 > tokenRegionEnd {
				return setools.ErrUnexpectedEndOfInput.WithMessage(
					fmt.Sprintf(
						"token %d: back-reference at offset %d needs 2 bytes, only %d left before the flags",
						tokenIndex,
						cursor,
						tokenRegionEnd-cursor,
					),
				)
			}
			token = Token{
				IsBackReference: true,
				Distance:        int(encoded[cursor]),
				Length:          int(encoded[cursor+1]),
			}
			cursor += 2
		} else {
			if cursor+1 > tokenRegionEnd {
				return setools.ErrUnexpectedEndOfInput.WithMessage(
					fmt.Sprintf(
						"token %d: literal at offset %d runs into the flag region",
						tokenIndex,
						cursor,
					),
				)
			}
			token = Token{Literal: encoded[cursor]}
			cursor++
		}

		err := visit(token)
		if err != nil {
			return err
		}
	}
	return nil
}

// checkBackReference verifies that a back-reference only copies bytes that
// are already in an output of size `outputSize`.
func checkBackReference(token Token, outputSize int) error {
	if token.Distance == 0 || token.Distance > outputSize {
		return setools.ErrInvalidBackReference.WithMessage(
			fmt.Sprintf(
				"distance %d is outside the %d bytes decoded so far",
				token.Distance,
				outputSize,
			),
		)
	}
	if token.Length > token.Distance {
		return setools.ErrInvalidBackReference.WithMessage(
			fmt.Sprintf(
				"copying %d bytes from %d back runs past the end of the output",
				token.Length,
				token.Distance,
			),
		)
	}
	return nil
}
