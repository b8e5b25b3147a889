package codec

import (
	"bytes"
	"errors"
	"fmt"
)

// SaltedHeader opens an OpenSSL "enc" envelope: header, 8-byte salt, ciphertext.
const SaltedHeader = "Salted__"

// SaltSize is the length of the salt that follows SaltedHeader.
const SaltSize = 8

// ErrInvalidContainer is returned for a container that is not Base64 or
// whose salted header is truncated.
var ErrInvalidContainer = errors.New("invalid ciphertext container")

// OpenContainer decodes a Base64 ciphertext container and returns the raw
// ciphertext. A salted envelope has its header and salt skipped.
func OpenContainer(container string) ([]byte, error) {
	data, err := DecodeBase64(container)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}

	if bytes.HasPrefix(data, []byte(SaltedHeader)) {
		if len(data) < len(SaltedHeader)+SaltSize {
			return nil, fmt.Errorf("%w: salted header truncated", ErrInvalidContainer)
		}
		data = data[len(SaltedHeader)+SaltSize:]
	}

	return data, nil
}
