//go:build unit
// +build unit

package app

import (
	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockAESPrimitive is a mock implementation of AESPrimitive
type MockAESPrimitive struct {
	mock.Mock
}

func (m *MockAESPrimitive) Transform(direction crypto.Direction, mode crypto.PrimitiveMode, key, iv []byte, padding crypto.Padding, input []byte, encoding crypto.PayloadEncoding) ([]byte, error) {
	args := m.Called(direction, mode, key, iv, padding, input, encoding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESPrimitive) GenerateKey(keySize int) ([]byte, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESPrimitive) GenerateIV() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
