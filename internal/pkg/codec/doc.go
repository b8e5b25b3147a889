// Package codec converts between raw bytes and their textual forms:
// lowercase hexadecimal, UTF-8 text and Base64.
//
// Hex decoding is tolerant of separators pasted by users: every character
// outside [0-9a-fA-F] is stripped before the digits are interpreted.
package codec
