//go:build unit
// +build unit

package v1

import (
	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockAESService is a mock implementation of AESService
type MockAESService struct {
	mock.Mock
}

func (m *MockAESService) Encrypt(params crypto.EncryptParams) (*crypto.CipherOutput, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.CipherOutput), args.Error(1)
}

func (m *MockAESService) Decrypt(params crypto.DecryptParams) (*crypto.CipherOutput, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.CipherOutput), args.Error(1)
}

func (m *MockAESService) GenerateKey(keySize int) (string, error) {
	args := m.Called(keySize)
	return args.String(0), args.Error(1)
}

func (m *MockAESService) GenerateIV() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAESService) Inspect(raw string, format crypto.Format, kind crypto.MaterialKind) crypto.MaterialInfo {
	args := m.Called(raw, format, kind)
	return args.Get(0).(crypto.MaterialInfo)
}

func (m *MockAESService) Convert(raw string, from, to crypto.Format) (string, error) {
	args := m.Called(raw, from, to)
	return args.String(0), args.Error(1)
}
