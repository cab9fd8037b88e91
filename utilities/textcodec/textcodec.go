// Package textcodec turns arbitrary bytes into printable text and back, so that
// compressed data can be pasted into places that only accept text.
package textcodec

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/ninter/setools"
)

// Codec converts between raw bytes and a text representation.
type Codec interface {
	// Name is the identifier used to select the codec, e.g. on the command line.
	Name() string
	Encode(data []byte) string
	// Decode returns an error wrapping [setools.ErrInvalidEncoding] if the text
	// isn't a valid encoding.
	Decode(text string) ([]byte, error)
}

var codecs = map[string]Codec{
	Base64.Name():     Base64,
	Base58.Name():     Base58,
	Quaternary.Name(): Quaternary,
	Raw.Name():        Raw,
}

// Lookup returns the codec with the given name.
func Lookup(name string) (Codec, error) {
	codec, ok := codecs[strings.ToLower(name)]
	if !ok {
		return nil, setools.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("unknown codec %q, expected one of %s", name, strings.Join(Names(), ", ")),
		)
	}
	return codec, nil
}

// Names returns the names of all available codecs in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

////////////////////////////////////////////////////////////////////////////////

type base64Codec struct{}

// Base64 is the standard, padded base64 alphabet.
var Base64 Codec = base64Codec{}

func (base64Codec) Name() string {
	return "base64"
}

func (base64Codec) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (base64Codec) Decode(text string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, setools.ErrInvalidEncoding.Wrap(err)
	}
	return decoded, nil
}

type base58Codec struct{}

// Base58 uses the Bitcoin alphabet, which leaves out characters that are easy
// to mistake for one another (0, O, I, l).
var Base58 Codec = base58Codec{}

func (base58Codec) Name() string {
	return "base58"
}

func (base58Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base58.Encode(data)
}

func (base58Codec) Decode(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	decoded, err := base58.Decode(text)
	if err != nil {
		return nil, setools.ErrInvalidEncoding.Wrap(err)
	}
	return decoded, nil
}

type rawCodec struct{}

// Raw passes bytes through unchanged. The result is generally not printable;
// it's meant for writing compressed data straight to a file.
var Raw Codec = rawCodec{}

func (rawCodec) Name() string {
	return "raw"
}

func (rawCodec) Encode(data []byte) string {
	return string(data)
}

func (rawCodec) Decode(text string) ([]byte, error) {
	return []byte(text), nil
}
