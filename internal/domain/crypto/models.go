package crypto

import (
	"fmt"
)

// CipherRequest is the validated input handed to the AES primitive.
// The IV is present exactly when the mode requires one.
type CipherRequest struct {
	mode      Mode
	key       *KeyMaterial
	iv        *IVMaterial
	payload   []byte
	encoding  PayloadEncoding
	direction Direction
}

// NewCipherRequest assembles a request and enforces the mode/IV invariant.
func NewCipherRequest(direction Direction, mode Mode, key *KeyMaterial, iv *IVMaterial, payload []byte, encoding PayloadEncoding) (*CipherRequest, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, string(mode))
	}
	if key == nil {
		return nil, ErrMissingKey
	}
	if len(payload) == 0 {
		return nil, ErrMissingPayload
	}
	if mode.RequiresIV() && iv == nil {
		return nil, fmt.Errorf("%w: mode %s requires an IV", ErrMissingIV, mode)
	}
	if !mode.RequiresIV() {
		iv = nil
	}
	if encoding == PayloadContainer && direction != Decrypt {
		return nil, fmt.Errorf("%w: container payloads can only be decrypted", ErrPrimitive)
	}

	return &CipherRequest{
		mode:      mode,
		key:       key,
		iv:        iv,
		payload:   append([]byte(nil), payload...),
		encoding:  encoding,
		direction: direction,
	}, nil
}

// Mode returns the request's mode.
func (r *CipherRequest) Mode() Mode { return r.mode }

// Key returns the request's key material.
func (r *CipherRequest) Key() *KeyMaterial { return r.key }

// IV returns the request's IV, nil for ECB.
func (r *CipherRequest) IV() *IVMaterial { return r.iv }

// Payload returns a copy of the bytes to transform.
func (r *CipherRequest) Payload() []byte { return append([]byte(nil), r.payload...) }

// Encoding reports how the payload must be read.
func (r *CipherRequest) Encoding() PayloadEncoding { return r.encoding }

// Direction reports whether the request encrypts or decrypts.
func (r *CipherRequest) Direction() Direction { return r.direction }

// CipherResult holds the bytes produced by a successful transform.
type CipherResult struct {
	Bytes []byte
}

// CipherOutput is the record returned to callers after a successful operation.
// CiphertextHex always holds the raw ciphertext; for a decrypted container it
// is the ciphertext found inside the envelope, salt header excluded.
type CipherOutput struct {
	Algorithm        string `json:"algorithm"`
	Mode             Mode   `json:"mode"`
	IVHex            string `json:"ivHex,omitempty"`
	CiphertextHex    string `json:"ciphertextHex"`
	CiphertextBase64 string `json:"ciphertextBase64,omitempty"`
	Plaintext        string `json:"plaintext,omitempty"`
}

// MaterialKind tells Inspect whether a string is meant as a key or an IV.
type MaterialKind string

// Material kinds
const (
	MaterialKey MaterialKind = "key"
	MaterialIV  MaterialKind = "iv"
)

// MaterialInfo describes how far a key or IV string is from being accepted.
type MaterialInfo struct {
	Kind             MaterialKind `json:"kind"`
	Format           Format       `json:"format"`
	Length           int          `json:"length"`
	AcceptedLengths  []int        `json:"acceptedLengths"`
	Valid            bool         `json:"valid"`
	ValidationReason string       `json:"reason,omitempty"`
}

// EncryptParams carries the raw, unvalidated inputs of an encrypt operation.
type EncryptParams struct {
	Mode      Mode
	Key       string
	KeyFormat Format
	IV        string
	IVFormat  Format
	Plaintext string
}

// DecryptParams carries the raw, unvalidated inputs of a decrypt operation.
type DecryptParams struct {
	Mode             Mode
	Key              string
	KeyFormat        Format
	IV               string
	IVFormat         Format
	Ciphertext       string
	CiphertextFormat CiphertextFormat
}
