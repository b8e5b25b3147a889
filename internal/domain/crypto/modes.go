package crypto

import (
	"fmt"
	"strings"
)

// Mode is an AES block-cipher mode of operation.
type Mode string

// Supported modes
const (
	ModeCBC Mode = "CBC"
	ModeECB Mode = "ECB"
	ModeCFB Mode = "CFB"
	ModeOFB Mode = "OFB"
	ModeCTR Mode = "CTR"
)

// PrimitiveMode is the mode token understood by the AES primitive.
type PrimitiveMode string

// Primitive mode tokens
const (
	PrimitiveCBC PrimitiveMode = "aes-cbc"
	PrimitiveECB PrimitiveMode = "aes-ecb"
	PrimitiveCFB PrimitiveMode = "aes-cfb"
	PrimitiveOFB PrimitiveMode = "aes-ofb"
	PrimitiveCTR PrimitiveMode = "aes-ctr"
)

type modeSpec struct {
	requiresIV bool
	streaming  bool
	selector   PrimitiveMode
}

var modeRegistry = map[Mode]modeSpec{
	ModeCBC: {requiresIV: true, streaming: false, selector: PrimitiveCBC},
	ModeECB: {requiresIV: false, streaming: false, selector: PrimitiveECB},
	ModeCFB: {requiresIV: true, streaming: true, selector: PrimitiveCFB},
	ModeOFB: {requiresIV: true, streaming: true, selector: PrimitiveOFB},
	ModeCTR: {requiresIV: true, streaming: true, selector: PrimitiveCTR},
}

// SupportedModes lists the modes in display order, CBC first.
func SupportedModes() []Mode {
	return []Mode{ModeCBC, ModeECB, ModeCFB, ModeOFB, ModeCTR}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToUpper(strings.TrimSpace(s)))
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
	return mode, nil
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, ok := modeRegistry[m]
	return ok
}

// RequiresIV reports whether m needs an IV. Only ECB does not.
func (m Mode) RequiresIV() bool {
	return modeRegistry[m].requiresIV
}

// IsStreaming reports whether m turns the block cipher into a key stream
// (CFB, OFB, CTR) rather than chaining or codebook blocks (CBC, ECB).
func (m Mode) IsStreaming() bool {
	return modeRegistry[m].streaming
}

func (m Mode) String() string {
	return string(m)
}

// RequiresIV reports whether mode needs an IV.
func RequiresIV(mode Mode) bool {
	return mode.RequiresIV()
}

// PrimitiveSelector maps a mode to the primitive's mode token.
func PrimitiveSelector(mode Mode) (PrimitiveMode, error) {
	spec, ok := modeRegistry[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, string(mode))
	}
	return spec.selector, nil
}

// ParseFormat parses a key or IV format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return format, nil
}

// Valid reports whether f is text or hex.
func (f Format) Valid() bool {
	return f == FormatText || f == FormatHex
}

// ParseCiphertextFormat parses a ciphertext format name. An empty string means auto.
func ParseCiphertextFormat(s string) (CiphertextFormat, error) {
	format := CiphertextFormat(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case "":
		return CiphertextAuto, nil
	case CiphertextAuto, CiphertextHex, CiphertextContainer:
		return format, nil
	default:
		return "", fmt.Errorf("%w: ciphertext format %q", ErrUnsupportedFormat, s)
	}
}
