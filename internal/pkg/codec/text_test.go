//go:build unit
// +build unit

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToHex(t *testing.T) {
	assert.Equal(t, "68656c6c6f", TextToHex("hello"))
	assert.Equal(t, "", TextToHex(""))
	// non-ASCII text is encoded as UTF-8
	assert.Equal(t, "c3a9", TextToHex("é"))
}

func TestHexToText(t *testing.T) {
	text, err := HexToText("68 65 6c 6c 6f")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = HexToText("686")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = HexToText("ff")
	assert.ErrorIs(t, err, ErrInvalidText)
	assert.NotErrorIs(t, err, ErrInvalidHex)
}

func TestTextHexRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "hello world", "密钥", "0123456789abcdef"} {
		decoded, err := HexToText(TextToHex(text))
		require.NoError(t, err)
		assert.Equal(t, text, decoded)
	}
}
