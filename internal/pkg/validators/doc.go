// Package validators holds go-playground/validator tags for AES request fields.
package validators
