package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 encodes data with the standard padded alphabet.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 accepts the standard and URL-safe alphabets, padded or not.
// Whitespace is ignored.
func DecodeBase64(s string) ([]byte, error) {
	cleaned := strings.Join(strings.Fields(s), "")

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(cleaned)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to decode base64: %w", lastErr)
}
