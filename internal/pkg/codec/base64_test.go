//go:build unit
// +build unit

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64(t *testing.T) {
	data := []byte{0xfb, 0xff, 0x01, 0x02}

	encoded := EncodeBase64(data)
	assert.Equal(t, "+/8BAg==", encoded)

	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	// URL-safe alphabet without padding
	decoded, err = DecodeBase64("-_8BAg")
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	// whitespace from wrapped output is ignored
	decoded, err = DecodeBase64("+/8B\nAg==")
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	_, err = DecodeBase64("not base64!")
	assert.Error(t, err)
}
