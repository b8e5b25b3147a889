package crypto

import (
	"errors"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/codec"
)

// Error kinds a request can fail with. None of them are retryable.
var (
	// ErrInvalidHex is returned when hex text has an odd length or invalid digits.
	ErrInvalidHex = codec.ErrInvalidHex
	// ErrInvalidText is returned when hex decodes to bytes that are not valid UTF-8 text.
	ErrInvalidText = codec.ErrInvalidText
	// ErrInvalidKeyLength is returned when a key does not decode to 16, 24 or 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidIVLength is returned when an IV does not decode to 16 bytes.
	ErrInvalidIVLength = errors.New("invalid IV length")
	// ErrMissingKey is returned when no key was supplied.
	ErrMissingKey = errors.New("missing key")
	// ErrMissingPayload is returned when there is nothing to encrypt or decrypt.
	ErrMissingPayload = errors.New("missing payload")
	// ErrMissingIV is returned when the selected mode needs an IV and none was supplied.
	ErrMissingIV = errors.New("missing IV")
	// ErrDecryptionFailed is returned when decryption produced no usable plaintext,
	// which points at a wrong key, IV or ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrPrimitive is returned when the AES primitive itself rejects the input.
	ErrPrimitive = errors.New("cipher primitive error")
	// ErrUnsupportedMode is returned for a mode outside CBC, ECB, CFB, OFB and CTR.
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrUnsupportedFormat is returned for a format other than text or hex.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidPadding is reported by the primitive when PKCS#7 padding does not check out.
	ErrInvalidPadding = errors.New("invalid PKCS#7 padding")
)

// Kind names used in API error responses
const (
	KindInvalidHex        = "InvalidHex"
	KindInvalidText       = "InvalidText"
	KindInvalidKeyLength  = "InvalidKeyLength"
	KindInvalidIVLength   = "InvalidIVLength"
	KindMissingKey        = "MissingKey"
	KindMissingPayload    = "MissingPayload"
	KindMissingIV         = "MissingIV"
	KindDecryptionFailed  = "DecryptionFailed"
	KindPrimitiveError    = "PrimitiveError"
	KindUnsupportedMode   = "UnsupportedMode"
	KindUnsupportedFormat = "UnsupportedFormat"
	KindUnknown           = "Unknown"
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidHex, KindInvalidHex},
	{ErrInvalidText, KindInvalidText},
	{ErrInvalidKeyLength, KindInvalidKeyLength},
	{ErrInvalidIVLength, KindInvalidIVLength},
	{ErrMissingKey, KindMissingKey},
	{ErrMissingPayload, KindMissingPayload},
	{ErrMissingIV, KindMissingIV},
	{ErrDecryptionFailed, KindDecryptionFailed},
	{ErrPrimitive, KindPrimitiveError},
	{ErrUnsupportedMode, KindUnsupportedMode},
	{ErrUnsupportedFormat, KindUnsupportedFormat},
}

// KindOf returns the kind name of the first known error in err's chain.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
