package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CipherDefaults holds the values used when a request leaves mode or formats unset
type CipherDefaults struct {
	Mode             string `mapstructure:"mode" validate:"required,oneof=CBC ECB CFB OFB CTR"`
	KeyFormat        string `mapstructure:"key_format" validate:"required,oneof=text hex"`
	IVFormat         string `mapstructure:"iv_format" validate:"required,oneof=text hex"`
	CiphertextFormat string `mapstructure:"ciphertext_format" validate:"required,oneof=auto hex container"`
	KeySize          int    `mapstructure:"key_size" validate:"required,oneof=16 24 32"`
}

// DefaultCipherDefaults returns CBC with hex key and IV, auto-detected ciphertext and AES-256 key generation
func DefaultCipherDefaults() CipherDefaults {
	return CipherDefaults{
		Mode:             "CBC",
		KeyFormat:        "hex",
		IVFormat:         "hex",
		CiphertextFormat: "auto",
		KeySize:          32,
	}
}

// Validate checks that all fields in CipherDefaults are valid
func (s *CipherDefaults) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherDefaults: %w", err)
	}
	return nil
}
