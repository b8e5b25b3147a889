//go:build unit
// +build unit

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresIV(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected bool
	}{
		{ModeCBC, true},
		{ModeECB, false},
		{ModeCFB, true},
		{ModeOFB, true},
		{ModeCTR, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, RequiresIV(tt.mode))
		})
	}
}

func TestPrimitiveSelector(t *testing.T) {
	expected := map[Mode]PrimitiveMode{
		ModeCBC: PrimitiveCBC,
		ModeECB: PrimitiveECB,
		ModeCFB: PrimitiveCFB,
		ModeOFB: PrimitiveOFB,
		ModeCTR: PrimitiveCTR,
	}

	for _, mode := range SupportedModes() {
		selector, err := PrimitiveSelector(mode)
		require.NoError(t, err)
		assert.Equal(t, expected[mode], selector)
	}

	_, err := PrimitiveSelector(Mode("GCM"))
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestIsStreaming(t *testing.T) {
	assert.False(t, ModeCBC.IsStreaming())
	assert.False(t, ModeECB.IsStreaming())
	assert.True(t, ModeCFB.IsStreaming())
	assert.True(t, ModeOFB.IsStreaming())
	assert.True(t, ModeCTR.IsStreaming())
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode(" cbc ")
	require.NoError(t, err)
	assert.Equal(t, ModeCBC, mode)

	mode, err = ParseMode("Ctr")
	require.NoError(t, err)
	assert.Equal(t, ModeCTR, mode)

	_, err = ParseMode("GCM")
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("HEX")
	require.NoError(t, err)
	assert.Equal(t, FormatHex, format)

	format, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	_, err = ParseFormat("base64")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseCiphertextFormat(t *testing.T) {
	format, err := ParseCiphertextFormat("")
	require.NoError(t, err)
	assert.Equal(t, CiphertextAuto, format)

	format, err = ParseCiphertextFormat("Container")
	require.NoError(t, err)
	assert.Equal(t, CiphertextContainer, format)

	_, err = ParseCiphertextFormat("pem")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
