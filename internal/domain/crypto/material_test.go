//go:build unit
// +build unit

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey_Hex(t *testing.T) {
	tests := []struct {
		name          string
		hexLength     int
		expectedBytes int
		expectedError error
	}{
		{"AES-128", 32, 16, nil},
		{"AES-192", 48, 24, nil},
		{"AES-256", 64, 32, nil},
		{"too short", 30, 0, ErrInvalidKeyLength},
		{"odd length", 33, 0, ErrInvalidKeyLength},
		{"too long", 65, 0, ErrInvalidKeyLength},
		{"empty", 0, 0, ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(strings.Repeat("a", tt.hexLength), FormatHex)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBytes, key.Len())
			assert.Equal(t, tt.expectedBytes*8, key.Bits())
		})
	}
}

func TestParseKey_HexStripsSeparators(t *testing.T) {
	key, err := ParseKey("00112233-44556677 8899aabb:ccddeeff", FormatHex)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}, key.Bytes())
}

func TestParseKey_Text(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		key, err := ParseKey(strings.Repeat("k", size), FormatText)
		require.NoError(t, err)
		assert.Equal(t, []byte(strings.Repeat("k", size)), key.Bytes())
	}

	for _, size := range []int{0, 15, 17, 33} {
		_, err := ParseKey(strings.Repeat("k", size), FormatText)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	}
}

func TestParseKey_UnsupportedFormat(t *testing.T) {
	_, err := ParseKey(strings.Repeat("a", 32), Format("base64"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestKeyMaterial_BytesIsACopy(t *testing.T) {
	key, err := ParseKey(strings.Repeat("0", 32), FormatHex)
	require.NoError(t, err)

	b := key.Bytes()
	b[0] = 0xff
	assert.Equal(t, byte(0x00), key.Bytes()[0])
}

func TestParseIV(t *testing.T) {
	iv, err := ParseIV("", FormatHex)
	require.NoError(t, err)
	assert.Nil(t, iv)

	iv, err = ParseIV("", FormatText)
	require.NoError(t, err)
	assert.Nil(t, iv)

	iv, err = ParseIV(strings.Repeat("0f", 16), FormatHex)
	require.NoError(t, err)
	require.NotNil(t, iv)
	assert.Len(t, iv.Bytes(), IVSize)
	assert.Equal(t, strings.Repeat("0f", 16), iv.Hex())

	iv, err = ParseIV("abcdefghijklmnop", FormatText)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghijklmnop"), iv.Bytes())

	_, err = ParseIV(strings.Repeat("a", 30), FormatHex)
	assert.ErrorIs(t, err, ErrInvalidIVLength)

	_, err = ParseIV("zz", FormatHex)
	assert.ErrorIs(t, err, ErrInvalidIVLength)

	_, err = ParseIV("short", FormatText)
	assert.ErrorIs(t, err, ErrInvalidIVLength)
}

func TestIVMaterial_Nil(t *testing.T) {
	var iv *IVMaterial
	assert.Nil(t, iv.Bytes())
	assert.Equal(t, "", iv.Hex())
}

func TestNewKeyMaterial(t *testing.T) {
	_, err := NewKeyMaterial(make([]byte, 16))
	assert.NoError(t, err)

	_, err = NewKeyMaterial(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestNewIVMaterial(t *testing.T) {
	_, err := NewIVMaterial(make([]byte, 16))
	assert.NoError(t, err)

	_, err = NewIVMaterial(make([]byte, 12))
	assert.ErrorIs(t, err, ErrInvalidIVLength)
}

func TestValidKeyLengths_ReturnFreshSlices(t *testing.T) {
	byteLengths := ValidKeyByteLengths()
	byteLengths[0] = 15
	hexLengths := ValidKeyHexLengths()
	hexLengths[0] = 30

	assert.Equal(t, []int{16, 24, 32}, ValidKeyByteLengths())
	assert.Equal(t, []int{32, 48, 64}, ValidKeyHexLengths())

	_, err := ParseKey("123456789012345", FormatText)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
	_, err = NewKeyMaterial(make([]byte, 15))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

// Text material is measured in UTF-8 bytes, not characters.
func TestParseTextMaterial_CountsUTF8Bytes(t *testing.T) {
	// 12 characters, 24 bytes
	key, err := ParseKey("ключключключ", FormatText)
	require.NoError(t, err)
	assert.Equal(t, 192, key.Bits())

	// 16 characters, 32 bytes
	key, err = ParseKey("ключключключключ", FormatText)
	require.NoError(t, err)
	assert.Equal(t, 256, key.Bits())

	// 16 characters, 17 bytes
	_, err = ParseKey("é123456789abcdef", FormatText)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	// 8 characters, 16 bytes
	iv, err := ParseIV("ключключ", FormatText)
	require.NoError(t, err)
	assert.Len(t, iv.Bytes(), 16)

	// 16 characters, 18 bytes
	_, err = ParseIV("éé3456789abcdefg", FormatText)
	assert.ErrorIs(t, err, ErrInvalidIVLength)
}
