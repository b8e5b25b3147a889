package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidText is returned when well-formed hex decodes to bytes that are
// not valid UTF-8.
var ErrInvalidText = errors.New("invalid text")

// TextToHex hex-encodes the UTF-8 bytes of text.
func TextToHex(text string) string {
	return EncodeHex([]byte(text))
}

// HexToText decodes a hex string back into text. The decoded bytes must be
// valid UTF-8.
func HexToText(s string) (string, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decoded bytes are not valid UTF-8", ErrInvalidText)
	}
	return string(data), nil
}
