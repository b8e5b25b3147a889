package cryptography

import (
	"bytes"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
)

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(append([]byte(nil), data...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad strips and checks PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: data length %d is not a multiple of the block size", cryptoDomain.ErrInvalidPadding, len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: pad length %d out of range", cryptoDomain.ErrInvalidPadding, padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", cryptoDomain.ErrInvalidPadding)
		}
	}

	return data[:len(data)-padLen], nil
}
