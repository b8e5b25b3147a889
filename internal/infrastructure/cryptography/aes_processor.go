package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"
)

// aesProcessor struct that implements the AESPrimitive interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESPrimitive, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size.
// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256:
	default:
		return nil, fmt.Errorf("%w: key size %d not supported for AES", cryptoDomain.ErrInvalidKeyLength, keySize)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES-", keySize*8, " key")
	return key, nil
}

// GenerateIV generates a random 16-byte IV.
func (a *aesProcessor) GenerateIV() ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	a.logger.Info("Generated AES IV")
	return iv, nil
}

// Transform encrypts or decrypts input with AES under the given mode.
// PKCS#7 padding is applied in every mode, stream modes included.
func (a *aesProcessor) Transform(direction cryptoDomain.Direction, mode cryptoDomain.PrimitiveMode, key, iv []byte, padding cryptoDomain.Padding, input []byte, encoding cryptoDomain.PayloadEncoding) ([]byte, error) {
	if padding != cryptoDomain.PaddingPKCS7 {
		return nil, fmt.Errorf("unsupported padding scheme: %s", padding)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if mode != cryptoDomain.PrimitiveECB && len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("IV length must be %d bytes for %s, got %d", aes.BlockSize, mode, len(iv))
	}

	switch direction {
	case cryptoDomain.Encrypt:
		if encoding != cryptoDomain.PayloadRaw {
			return nil, errors.New("container payloads can only be decrypted")
		}
		ciphertext, err := encrypt(block, mode, iv, pkcs7Pad(input, aes.BlockSize))
		if err != nil {
			return nil, err
		}
		a.logger.Info("AES encryption succeeded (", mode, ")")
		return ciphertext, nil

	case cryptoDomain.Decrypt:
		ciphertext := input
		if encoding == cryptoDomain.PayloadContainer {
			ciphertext, err = openContainer(input)
			if err != nil {
				return nil, err
			}
		}
		if len(ciphertext) == 0 {
			return nil, errors.New("ciphertext is empty")
		}

		plaintext, err := decrypt(block, mode, iv, ciphertext)
		if err != nil {
			return nil, err
		}

		unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
		if err != nil {
			return nil, err
		}
		a.logger.Info("AES decryption succeeded (", mode, ")")
		return unpadded, nil

	default:
		return nil, fmt.Errorf("unsupported direction: %v", direction)
	}
}

func encrypt(block cipher.Block, mode cryptoDomain.PrimitiveMode, iv, padded []byte) ([]byte, error) {
	ciphertext := make([]byte, len(padded))

	switch mode {
	case cryptoDomain.PrimitiveECB:
		for i := 0; i < len(padded); i += aes.BlockSize {
			block.Encrypt(ciphertext[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
		}
	case cryptoDomain.PrimitiveCBC:
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	case cryptoDomain.PrimitiveCFB:
		cipher.NewCFBEncrypter(block, iv).XORKeyStream(ciphertext, padded)
	case cryptoDomain.PrimitiveOFB:
		cipher.NewOFB(block, iv).XORKeyStream(ciphertext, padded)
	case cryptoDomain.PrimitiveCTR:
		cipher.NewCTR(block, iv).XORKeyStream(ciphertext, padded)
	default:
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}

	return ciphertext, nil
}

func decrypt(block cipher.Block, mode cryptoDomain.PrimitiveMode, iv, ciphertext []byte) ([]byte, error) {
	plaintext := make([]byte, len(ciphertext))

	switch mode {
	case cryptoDomain.PrimitiveECB, cryptoDomain.PrimitiveCBC:
		if len(ciphertext)%aes.BlockSize != 0 {
			return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(ciphertext))
		}
		if mode == cryptoDomain.PrimitiveCBC {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
			break
		}
		for i := 0; i < len(ciphertext); i += aes.BlockSize {
			block.Decrypt(plaintext[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
		}
	case cryptoDomain.PrimitiveCFB:
		cipher.NewCFBDecrypter(block, iv).XORKeyStream(plaintext, ciphertext)
	case cryptoDomain.PrimitiveOFB:
		cipher.NewOFB(block, iv).XORKeyStream(plaintext, ciphertext)
	case cryptoDomain.PrimitiveCTR:
		cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	default:
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}

	return plaintext, nil
}
