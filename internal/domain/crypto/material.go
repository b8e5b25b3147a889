package crypto

import (
	"fmt"
	"slices"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/codec"
)

// KeyMaterial holds a validated AES key of 16, 24 or 32 bytes.
// It can only be obtained from ParseKey and never changes afterwards.
type KeyMaterial struct {
	bytes []byte
}

// Bytes returns a copy of the key bytes.
func (k *KeyMaterial) Bytes() []byte {
	return append([]byte(nil), k.bytes...)
}

// Len returns the key length in bytes.
func (k *KeyMaterial) Len() int {
	return len(k.bytes)
}

// Bits returns the AES variant the key selects: 128, 192 or 256.
func (k *KeyMaterial) Bits() int {
	return len(k.bytes) * 8
}

// IVMaterial holds a validated 16-byte initialization vector.
// A nil *IVMaterial stands for "no IV", which only ECB accepts.
type IVMaterial struct {
	bytes []byte
}

// Bytes returns a copy of the IV bytes.
func (iv *IVMaterial) Bytes() []byte {
	if iv == nil {
		return nil
	}
	return append([]byte(nil), iv.bytes...)
}

// Hex returns the IV as lowercase hex, or "" when absent.
func (iv *IVMaterial) Hex() string {
	if iv == nil {
		return ""
	}
	return codec.EncodeHex(iv.bytes)
}

var (
	keyHexLengths  = []int{AESKeySize128 * 2, AESKeySize192 * 2, AESKeySize256 * 2}
	keyByteLengths = []int{AESKeySize128, AESKeySize192, AESKeySize256}
)

// ValidKeyHexLengths returns the accepted key lengths in hex characters.
// Each call returns a fresh slice.
func ValidKeyHexLengths() []int {
	return slices.Clone(keyHexLengths)
}

// ValidKeyByteLengths returns the accepted key lengths in bytes.
// Each call returns a fresh slice.
func ValidKeyByteLengths() []int {
	return slices.Clone(keyByteLengths)
}

// ParseKey validates raw under format and returns the key bytes.
// Hex keys are stripped of non-hex characters and must then hold 32, 48 or 64 digits;
// text keys must be 16, 24 or 32 bytes long.
func ParseKey(raw string, format Format) (*KeyMaterial, error) {
	switch format {
	case FormatHex:
		cleaned := codec.CleanHex(raw)
		if !slices.Contains(keyHexLengths, len(cleaned)) {
			return nil, fmt.Errorf("%w: hex key must be 32, 48 or 64 characters, got %d", ErrInvalidKeyLength, len(cleaned))
		}
		data, err := codec.DecodeHex(cleaned)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key: %w", err)
		}
		return &KeyMaterial{bytes: data}, nil
	case FormatText:
		data := []byte(raw)
		if !slices.Contains(keyByteLengths, len(data)) {
			return nil, fmt.Errorf("%w: text key must be 16, 24 or 32 bytes, got %d", ErrInvalidKeyLength, len(data))
		}
		return &KeyMaterial{bytes: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// ParseIV validates raw under format. An empty raw string yields a nil IV;
// whether that is acceptable depends on the mode and is decided by the caller.
func ParseIV(raw string, format Format) (*IVMaterial, error) {
	if raw == "" {
		return nil, nil
	}

	switch format {
	case FormatHex:
		cleaned := codec.CleanHex(raw)
		if len(cleaned) != IVSize*2 {
			return nil, fmt.Errorf("%w: hex IV must be 32 characters, got %d", ErrInvalidIVLength, len(cleaned))
		}
		data, err := codec.DecodeHex(cleaned)
		if err != nil {
			return nil, fmt.Errorf("failed to decode IV: %w", err)
		}
		return &IVMaterial{bytes: data}, nil
	case FormatText:
		data := []byte(raw)
		if len(data) != IVSize {
			return nil, fmt.Errorf("%w: text IV must be 16 bytes, got %d", ErrInvalidIVLength, len(data))
		}
		return &IVMaterial{bytes: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// NewKeyMaterial wraps already-decoded key bytes, enforcing the AES key sizes.
func NewKeyMaterial(data []byte) (*KeyMaterial, error) {
	if !slices.Contains(keyByteLengths, len(data)) {
		return nil, fmt.Errorf("%w: key must be 16, 24 or 32 bytes, got %d", ErrInvalidKeyLength, len(data))
	}
	return &KeyMaterial{bytes: append([]byte(nil), data...)}, nil
}

// NewIVMaterial wraps already-decoded IV bytes, enforcing the block size.
func NewIVMaterial(data []byte) (*IVMaterial, error) {
	if len(data) != IVSize {
		return nil, fmt.Errorf("%w: IV must be 16 bytes, got %d", ErrInvalidIVLength, len(data))
	}
	return &IVMaterial{bytes: append([]byte(nil), data...)}, nil
}
