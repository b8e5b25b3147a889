package crypto

// AlgorithmAES is the only algorithm reported in cipher outputs
const AlgorithmAES = "AES"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// IVSize is the AES block size in bytes, which every IV must match
const IVSize = 16

// BlockSize is the AES block size in bytes
const BlockSize = 16

// Format determines how a key or IV string is decoded to bytes.
type Format string

// Supported key and IV formats
const (
	FormatText Format = "text"
	FormatHex  Format = "hex"
)

// Direction selects whether a request encrypts or decrypts its payload.
type Direction int

// Request directions
const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// PayloadEncoding tells the primitive how to read a request payload.
type PayloadEncoding int

const (
	// PayloadRaw means the payload holds the exact bytes to transform.
	PayloadRaw PayloadEncoding = iota
	// PayloadContainer means the payload is an opaque Base64 container
	// (optionally an OpenSSL "Salted__" envelope) that the primitive unpacks.
	PayloadContainer
)

// CiphertextFormat selects how decrypt input is interpreted.
type CiphertextFormat string

// Ciphertext formats accepted on decrypt
const (
	CiphertextAuto      CiphertextFormat = "auto"
	CiphertextHex       CiphertextFormat = "hex"
	CiphertextContainer CiphertextFormat = "container"
)

// Padding names the padding scheme handed to the primitive.
type Padding string

// PaddingPKCS7 is the only padding scheme requests use
const PaddingPKCS7 Padding = "PKCS7"
