package crypto

// AESPrimitive performs the AES transform itself: block encryption, chaining and padding.
// Callers only hand it validated requests and interpret its output.
type AESPrimitive interface {
	// Transform encrypts or decrypts input under the given mode token, key and optional IV.
	// A nil iv is only valid for ECB. On decrypt, a padding that does not check out is
	// reported as ErrInvalidPadding.
	Transform(direction Direction, mode PrimitiveMode, key, iv []byte, padding Padding, input []byte, encoding PayloadEncoding) ([]byte, error)

	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// GenerateIV generates a random 16-byte IV.
	GenerateIV() ([]byte, error)
}

// AESService runs encrypt and decrypt operations end to end and supplies the
// helpers a front end needs around them.
type AESService interface {
	// Encrypt validates params, encrypts the plaintext and returns the hex/Base64 record.
	Encrypt(params EncryptParams) (*CipherOutput, error)

	// Decrypt validates params, decrypts the ciphertext and returns the record with the plaintext set.
	Decrypt(params DecryptParams) (*CipherOutput, error)

	// GenerateKey returns a random hex-encoded key of keySize bytes (16, 24 or 32).
	GenerateKey(keySize int) (string, error)

	// GenerateIV returns a random hex-encoded 16-byte IV.
	GenerateIV() (string, error)

	// Inspect reports the current length of a key or IV string and whether it would be accepted.
	Inspect(raw string, format Format, kind MaterialKind) MaterialInfo

	// Convert re-encodes a key or IV string between text and hex.
	Convert(raw string, from, to Format) (string, error)
}
