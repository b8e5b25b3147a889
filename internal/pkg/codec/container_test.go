//go:build unit
// +build unit

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenContainer(t *testing.T) {
	ciphertext := []byte{0xde, 0xad, 0xbe, 0xef}

	t.Run("plain Base64", func(t *testing.T) {
		data, err := OpenContainer(EncodeBase64(ciphertext))
		require.NoError(t, err)
		assert.Equal(t, ciphertext, data)
	})

	t.Run("salted envelope", func(t *testing.T) {
		envelope := append([]byte(SaltedHeader), []byte("saltsalt")...)
		envelope = append(envelope, ciphertext...)

		data, err := OpenContainer(EncodeBase64(envelope))
		require.NoError(t, err)
		assert.Equal(t, ciphertext, data)
	})

	t.Run("truncated salt", func(t *testing.T) {
		_, err := OpenContainer(EncodeBase64([]byte(SaltedHeader + "abc")))
		assert.ErrorIs(t, err, ErrInvalidContainer)
	})

	t.Run("not Base64", func(t *testing.T) {
		_, err := OpenContainer("!!not base64!!")
		assert.ErrorIs(t, err, ErrInvalidContainer)
	})
}
