package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/codec"
)

// openContainer unpacks a Base64 ciphertext container. The caller's key and
// IV are used as given, so an OpenSSL salt plays no part in decryption.
func openContainer(payload []byte) ([]byte, error) {
	data, err := codec.OpenContainer(string(payload))
	if err != nil {
		return nil, fmt.Errorf("malformed ciphertext container: %w", err)
	}
	return data, nil
}
