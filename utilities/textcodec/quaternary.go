package textcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ninter/setools"
)

// quaternaryGlyphs maps each 2-bit value to the glyph that represents it.
var quaternaryGlyphs = [4]rune{'原', '神', '启', '动'}

type quaternaryCodec struct{}

// Quaternary writes every byte as four glyphs, each standing for two bits,
// most significant pair first. It's hopelessly inefficient and exists for fun.
var Quaternary Codec = quaternaryCodec{}

func (quaternaryCodec) Name() string {
	return "quaternary"
}

func (quaternaryCodec) Encode(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data) * 4 * utf8.RuneLen(quaternaryGlyphs[0]))

	for _, b := range data {
		for shift := 6; shift >= 0; shift -= 2 {
			builder.WriteRune(quaternaryGlyphs[(b>>shift)&3])
		}
	}
	return builder.String()
}

func (quaternaryCodec) Decode(text string) ([]byte, error) {
	decoded := make([]byte, 0, len(text)/12)
	var current byte
	pairs := 0

	for offset, glyph := range text {
		value := glyphValue(glyph)
		if value < 0 {
			return nil, setools.ErrInvalidEncoding.WithMessage(
				fmt.Sprintf("unexpected character %q at offset %d", glyph, offset),
			)
		}

		current = current<<2 | byte(value)
		pairs++
		if pairs == 4 {
			decoded = append(decoded, current)
			current = 0
			pairs = 0
		}
	}

	if pairs != 0 {
		return nil, setools.ErrInvalidEncoding.WithMessage(
			fmt.Sprintf("text ends partway through a byte (%d of 4 glyphs)", pairs),
		)
	}
	return decoded, nil
}

func glyphValue(glyph rune) int {
	for i, candidate := range quaternaryGlyphs {
		if glyph == candidate {
			return i
		}
	}
	return -1
}
