package app

import (
	"fmt"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/codec"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"
)

// aesService implements the AESService interface on top of a CipherRequestBuilder
type aesService struct {
	builder   *CipherRequestBuilder
	primitive crypto.AESPrimitive
	logger    logger.Logger
}

// NewAESService creates a new aesService instance
func NewAESService(primitive crypto.AESPrimitive, logger logger.Logger) (crypto.AESService, error) {
	builder, err := NewCipherRequestBuilder(primitive, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher request builder: %w", err)
	}
	return &aesService{
		builder:   builder,
		primitive: primitive,
		logger:    logger,
	}, nil
}

// Encrypt validates params, encrypts the plaintext and returns the hex/Base64 record.
func (s *aesService) Encrypt(params crypto.EncryptParams) (*crypto.CipherOutput, error) {
	req, err := s.builder.BuildForEncrypt(params)
	if err != nil {
		return nil, err
	}

	result, err := s.builder.Invoke(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Encrypted ", len(params.Plaintext), " bytes with AES-", req.Key().Bits(), "-", req.Mode())
	return &crypto.CipherOutput{
		Algorithm:        crypto.AlgorithmAES,
		Mode:             req.Mode(),
		IVHex:            req.IV().Hex(),
		CiphertextHex:    codec.EncodeHex(result.Bytes),
		CiphertextBase64: codec.EncodeBase64(result.Bytes),
	}, nil
}

// Decrypt validates params, decrypts the ciphertext and returns the record with the plaintext set.
func (s *aesService) Decrypt(params crypto.DecryptParams) (*crypto.CipherOutput, error) {
	req, err := s.builder.BuildForDecrypt(params)
	if err != nil {
		return nil, err
	}

	result, err := s.builder.Invoke(req)
	if err != nil {
		return nil, err
	}

	output := &crypto.CipherOutput{
		Algorithm: crypto.AlgorithmAES,
		Mode:      req.Mode(),
		IVHex:     req.IV().Hex(),
		Plaintext: string(result.Bytes),
	}
	// A container keeps its Base64 as given; ciphertextHex holds the bytes inside it.
	if req.Encoding() == crypto.PayloadRaw {
		output.CiphertextHex = codec.EncodeHex(req.Payload())
		output.CiphertextBase64 = codec.EncodeBase64(req.Payload())
	} else {
		raw, err := codec.OpenContainer(string(req.Payload()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", crypto.ErrPrimitive, err)
		}
		output.CiphertextHex = codec.EncodeHex(raw)
		output.CiphertextBase64 = string(req.Payload())
	}

	s.logger.Info("Decrypted ", len(result.Bytes), " bytes with AES-", req.Key().Bits(), "-", req.Mode())
	return output, nil
}

// GenerateKey returns a random hex-encoded key of keySize bytes (16, 24 or 32).
func (s *aesService) GenerateKey(keySize int) (string, error) {
	key, err := s.primitive.GenerateKey(keySize)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(key), nil
}

// GenerateIV returns a random hex-encoded 16-byte IV.
func (s *aesService) GenerateIV() (string, error) {
	iv, err := s.primitive.GenerateIV()
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(iv), nil
}

// Inspect reports the current length of a key or IV string and whether it would be accepted.
// Hex lengths are counted in digits after stripping, text lengths in bytes.
func (s *aesService) Inspect(raw string, format crypto.Format, kind crypto.MaterialKind) crypto.MaterialInfo {
	info := crypto.MaterialInfo{
		Kind:   kind,
		Format: format,
	}

	switch format {
	case crypto.FormatHex:
		info.Length = len(codec.CleanHex(raw))
	default:
		info.Length = len(raw)
	}

	var err error
	switch kind {
	case crypto.MaterialIV:
		info.AcceptedLengths = []int{crypto.IVSize}
		if format == crypto.FormatHex {
			info.AcceptedLengths = []int{crypto.IVSize * 2}
		}
		if raw == "" {
			err = crypto.ErrMissingIV
		} else {
			_, err = crypto.ParseIV(raw, format)
		}
	default:
		info.Kind = crypto.MaterialKey
		info.AcceptedLengths = crypto.ValidKeyByteLengths()
		if format == crypto.FormatHex {
			info.AcceptedLengths = crypto.ValidKeyHexLengths()
		}
		_, err = crypto.ParseKey(raw, format)
	}

	info.Valid = err == nil
	if err != nil {
		info.ValidationReason = err.Error()
	}
	return info
}

// Convert re-encodes a key or IV string between text and hex.
func (s *aesService) Convert(raw string, from, to crypto.Format) (string, error) {
	if !from.Valid() {
		return "", fmt.Errorf("%w: %q", crypto.ErrUnsupportedFormat, string(from))
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: %q", crypto.ErrUnsupportedFormat, string(to))
	}

	switch {
	case from == to && from == crypto.FormatHex:
		data, err := codec.DecodeHex(raw)
		if err != nil {
			return "", err
		}
		return codec.EncodeHex(data), nil
	case from == to:
		return raw, nil
	case from == crypto.FormatText:
		return codec.TextToHex(raw), nil
	default:
		return codec.HexToText(raw)
	}
}
