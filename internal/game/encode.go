package game

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var latin1Encoder = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

// EncodeLatin1 transcodes output for terminals that cannot render UTF-8.
// Unmappable runes are replaced rather than dropped so layout survives.
func EncodeLatin1(text string) []byte {
	encoded, err := latin1Encoder.Bytes([]byte(text))
	if err != nil {
		return []byte(text)
	}
	return encoded
}
