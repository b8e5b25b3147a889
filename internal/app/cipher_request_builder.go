package app

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/codec"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"
)

// rawHexCiphertext is the auto-detection rule for decrypt input: only hex
// digits, even length. Anything else is treated as an opaque container.
var rawHexCiphertext = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// CipherRequestBuilder turns raw user strings into validated cipher requests
// and runs them against the AES primitive.
type CipherRequestBuilder struct {
	primitive crypto.AESPrimitive
	logger    logger.Logger
}

// NewCipherRequestBuilder creates a new CipherRequestBuilder instance
func NewCipherRequestBuilder(primitive crypto.AESPrimitive, logger logger.Logger) (*CipherRequestBuilder, error) {
	if primitive == nil {
		return nil, errors.New("AES primitive cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &CipherRequestBuilder{
		primitive: primitive,
		logger:    logger,
	}, nil
}

// BuildForEncrypt validates the key, IV and plaintext and assembles an encrypt request.
func (b *CipherRequestBuilder) BuildForEncrypt(params crypto.EncryptParams) (*crypto.CipherRequest, error) {
	if params.Key == "" {
		return nil, crypto.ErrMissingKey
	}
	if params.Plaintext == "" {
		return nil, fmt.Errorf("%w: nothing to encrypt", crypto.ErrMissingPayload)
	}

	key, iv, err := b.parseMaterial(params.Mode, params.Key, params.KeyFormat, params.IV, params.IVFormat)
	if err != nil {
		return nil, err
	}

	return crypto.NewCipherRequest(crypto.Encrypt, params.Mode, key, iv, []byte(params.Plaintext), crypto.PayloadRaw)
}

// BuildForDecrypt validates the key, IV and ciphertext and assembles a decrypt request.
// The ciphertext is read as raw hex or passed through as an opaque container,
// according to params.CiphertextFormat (see DetectCiphertextFormat for auto).
func (b *CipherRequestBuilder) BuildForDecrypt(params crypto.DecryptParams) (*crypto.CipherRequest, error) {
	if params.Key == "" {
		return nil, crypto.ErrMissingKey
	}
	ciphertext := strings.TrimSpace(params.Ciphertext)
	if ciphertext == "" {
		return nil, fmt.Errorf("%w: nothing to decrypt", crypto.ErrMissingPayload)
	}

	key, iv, err := b.parseMaterial(params.Mode, params.Key, params.KeyFormat, params.IV, params.IVFormat)
	if err != nil {
		return nil, err
	}

	format := params.CiphertextFormat
	if format == "" || format == crypto.CiphertextAuto {
		format = DetectCiphertextFormat(ciphertext)
		b.logger.Debug("Detected ciphertext format ", format)
	}

	var (
		payload  []byte
		encoding crypto.PayloadEncoding
	)
	switch format {
	case crypto.CiphertextHex:
		payload, err = codec.DecodeHex(ciphertext)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
		}
		if len(payload) == 0 {
			return nil, fmt.Errorf("%w: ciphertext holds no hex digits", crypto.ErrMissingPayload)
		}
		encoding = crypto.PayloadRaw
	case crypto.CiphertextContainer:
		payload = []byte(ciphertext)
		encoding = crypto.PayloadContainer
	default:
		return nil, fmt.Errorf("%w: ciphertext format %q", crypto.ErrUnsupportedFormat, string(format))
	}

	return crypto.NewCipherRequest(crypto.Decrypt, params.Mode, key, iv, payload, encoding)
}

// DetectCiphertextFormat picks hex for a string made only of hex digits with
// an even length and container for everything else. A container that happens
// to look like hex is misread; callers that know the format should say so.
func DetectCiphertextFormat(ciphertext string) crypto.CiphertextFormat {
	if len(ciphertext)%2 == 0 && rawHexCiphertext.MatchString(ciphertext) {
		return crypto.CiphertextHex
	}
	return crypto.CiphertextContainer
}

// Invoke runs req against the primitive with PKCS#7 padding. On decrypt, a
// result that is empty, fails the padding check or is not UTF-8 text is
// reported as ErrDecryptionFailed.
func (b *CipherRequestBuilder) Invoke(req *crypto.CipherRequest) (*crypto.CipherResult, error) {
	if req == nil {
		return nil, errors.New("cipher request cannot be nil")
	}

	selector, err := crypto.PrimitiveSelector(req.Mode())
	if err != nil {
		return nil, err
	}

	output, err := b.primitive.Transform(
		req.Direction(),
		selector,
		req.Key().Bytes(),
		req.IV().Bytes(),
		crypto.PaddingPKCS7,
		req.Payload(),
		req.Encoding(),
	)
	if err != nil {
		if req.Direction() == crypto.Decrypt && errors.Is(err, crypto.ErrInvalidPadding) {
			b.logger.Warn("Decryption produced invalid padding")
			return nil, fmt.Errorf("%w: check the key, IV and ciphertext", crypto.ErrDecryptionFailed)
		}
		b.logger.Error("AES primitive failed: ", err)
		return nil, fmt.Errorf("%w: %v", crypto.ErrPrimitive, err)
	}

	if req.Direction() == crypto.Decrypt {
		if len(output) == 0 || !utf8.Valid(output) {
			b.logger.Warn("Decryption produced no readable plaintext")
			return nil, fmt.Errorf("%w: check the key, IV and ciphertext", crypto.ErrDecryptionFailed)
		}
	}

	return &crypto.CipherResult{Bytes: output}, nil
}

func (b *CipherRequestBuilder) parseMaterial(mode crypto.Mode, rawKey string, keyFormat crypto.Format, rawIV string, ivFormat crypto.Format) (*crypto.KeyMaterial, *crypto.IVMaterial, error) {
	if !mode.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedMode, string(mode))
	}
	if rawKey == "" {
		return nil, nil, crypto.ErrMissingKey
	}

	key, err := crypto.ParseKey(rawKey, keyFormat)
	if err != nil {
		return nil, nil, err
	}

	if !mode.RequiresIV() {
		return key, nil, nil
	}
	if rawIV == "" {
		return nil, nil, fmt.Errorf("%w: mode %s requires an IV", crypto.ErrMissingIV, mode)
	}

	iv, err := crypto.ParseIV(rawIV, ivFormat)
	if err != nil {
		return nil, nil, err
	}
	return key, iv, nil
}
