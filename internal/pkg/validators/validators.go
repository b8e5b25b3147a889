package validators

import (
	"fmt"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// Tags registered by Register
const (
	TagAESMode          = "aesmode"
	TagMaterialFormat   = "materialformat"
	TagCiphertextFormat = "ciphertextformat"
	TagAESKeySize       = "aeskeysize"
)

// AESModeValidation accepts CBC, ECB, CFB, OFB and CTR in any letter case.
func AESModeValidation(fl validator.FieldLevel) bool {
	_, err := crypto.ParseMode(fl.Field().String())
	return err == nil
}

// MaterialFormatValidation accepts the key/IV formats "text" and "hex" in any letter case.
func MaterialFormatValidation(fl validator.FieldLevel) bool {
	_, err := crypto.ParseFormat(fl.Field().String())
	return err == nil
}

// CiphertextFormatValidation accepts "auto", "hex" and "container".
func CiphertextFormatValidation(fl validator.FieldLevel) bool {
	_, err := crypto.ParseCiphertextFormat(fl.Field().String())
	return err == nil
}

// KeySizeValidation validates an AES key size given in bytes (16, 24, 32).
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == crypto.AESKeySize128 || keySize == crypto.AESKeySize192 || keySize == crypto.AESKeySize256
}

// Register adds the AES validation tags to v.
func Register(v *validator.Validate) error {
	validations := map[string]validator.Func{
		TagAESMode:          AESModeValidation,
		TagMaterialFormat:   MaterialFormatValidation,
		TagCiphertextFormat: CiphertextFormatValidation,
		TagAESKeySize:       KeySizeValidation,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the AES validation tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		// The tags above are static and non-empty, so registration cannot fail.
		panic(err)
	}
	return v
}
