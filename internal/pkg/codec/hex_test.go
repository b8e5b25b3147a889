//go:build unit
// +build unit

package codec

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "", EncodeHex(nil))
	assert.Equal(t, "00ff10ab", EncodeHex([]byte{0x00, 0xff, 0x10, 0xab}))
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{"lowercase", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"uppercase", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"separators stripped", "de:ad be-ef\n", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"empty", "", []byte{}, false},
		{"odd length", "abc", nil, true},
		{"odd length after stripping", "ab:c", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecodeHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 15, 16, 17, 255, 1024} {
		data := make([]byte, size)
		_, err := rand.Read(data)
		require.NoError(t, err)

		decoded, err := DecodeHex(EncodeHex(data))
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestCleanHex(t *testing.T) {
	assert.Equal(t, "00112233", CleanHex("00 11-22:33"))
	assert.Equal(t, "", CleanHex("xyz!"))
	assert.Equal(t, "aBc", CleanHex("g aBc"))
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex(""))
	assert.True(t, IsHex("0123456789abcdefABCDEF"))
	assert.False(t, IsHex("deadbeeg"))
	assert.False(t, IsHex("de ad"))
}
