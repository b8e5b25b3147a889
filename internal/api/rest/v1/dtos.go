package v1

import (
	"fmt"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/validators"
)

// Kinds reported for request bodies rejected before reaching the service
const (
	KindInvalidRequest  = "InvalidRequest"
	KindPayloadTooLarge = "PayloadTooLarge"
)

var validate = validators.New()

// EncryptRequest represents the body of POST /encrypt.
// Empty mode and formats fall back to the configured defaults.
type EncryptRequest struct {
	Mode      string `json:"mode" validate:"omitempty,aesmode"`
	Key       string `json:"key"`
	KeyFormat string `json:"keyFormat" validate:"omitempty,materialformat"`
	IV        string `json:"iv"`
	IVFormat  string `json:"ivFormat" validate:"omitempty,materialformat"`
	Plaintext string `json:"plaintext"`
}

// Validate checks the enumerated fields of EncryptRequest
func (r *EncryptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// DecryptRequest represents the body of POST /decrypt
type DecryptRequest struct {
	Mode             string `json:"mode" validate:"omitempty,aesmode"`
	Key              string `json:"key"`
	KeyFormat        string `json:"keyFormat" validate:"omitempty,materialformat"`
	IV               string `json:"iv"`
	IVFormat         string `json:"ivFormat" validate:"omitempty,materialformat"`
	Ciphertext       string `json:"ciphertext"`
	CiphertextFormat string `json:"ciphertextFormat" validate:"omitempty,ciphertextformat"`
}

// Validate checks the enumerated fields of DecryptRequest
func (r *DecryptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// GenerateKeyRequest represents the body of POST /keys. KeySize is in bytes.
type GenerateKeyRequest struct {
	KeySize int `json:"keySize" validate:"omitempty,aeskeysize"`
}

// Validate checks that KeySize is 16, 24 or 32 when set
func (r *GenerateKeyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeyRequest: %w", err)
	}
	return nil
}

// ConvertRequest represents the body of POST /convert
type ConvertRequest struct {
	Value string `json:"value"`
	From  string `json:"from" validate:"required,materialformat"`
	To    string `json:"to" validate:"required,materialformat"`
}

// Validate checks that both formats are text or hex
func (r *ConvertRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ConvertRequest: %w", err)
	}
	return nil
}

// InspectRequest represents the body of POST /inspect
type InspectRequest struct {
	Value  string `json:"value"`
	Format string `json:"format" validate:"omitempty,materialformat"`
	Kind   string `json:"kind" validate:"required,oneof=key iv"`
}

// Validate checks the format and kind of InspectRequest
func (r *InspectRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for InspectRequest: %w", err)
	}
	return nil
}

// MaterialResponse carries a generated key or IV
type MaterialResponse struct {
	Hex    string `json:"hex"`
	Length int    `json:"length"`
}

// ConvertResponse carries a re-encoded value
type ConvertResponse struct {
	Value  string `json:"value"`
	Format string `json:"format"`
}

// ModeResponse describes one supported mode
type ModeResponse struct {
	Mode       crypto.Mode `json:"mode"`
	RequiresIV bool        `json:"requiresIV"`
	Streaming  bool        `json:"streaming"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}
