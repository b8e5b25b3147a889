package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a cleaned hex string has an odd length or
// contains a non-hex digit.
var ErrInvalidHex = errors.New("invalid hex")

// EncodeHex maps each byte to two lowercase hex digits.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex strips every non-hex character from s and decodes the rest.
func DecodeHex(s string) ([]byte, error) {
	cleaned := CleanHex(s)
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%w: hex string must have an even length, got %d", ErrInvalidHex, len(cleaned))
	}
	// CleanHex already removed non-hex characters; checked again so a change
	// to the stripping rule cannot let bad digits through.
	if !IsHex(cleaned) {
		return nil, fmt.Errorf("%w: hex string contains invalid characters", ErrInvalidHex)
	}

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return data, nil
}

// CleanHex removes every character outside [0-9a-fA-F].
func CleanHex(s string) string {
	return strings.Map(func(r rune) rune {
		if isHexDigit(r) {
			return r
		}
		return -1
	}, s)
}

// IsHex reports whether s consists only of hex digits. The empty string is hex.
func IsHex(s string) bool {
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
