package mocks

import (
	"github.com/11090815/telcrypt/csp/interfaces"
)

// MockCSP 按字段返回预设的结果，用来检查调用方如何处理 CSP 的错误。
type MockCSP struct {
	KeyImportValue interfaces.Key
	KeyImportErr   error
	KeyImportOpts  []interfaces.KeyImportOpts

	KeyDerivValue interfaces.Key
	KeyDerivErr   error

	EncryptErr  error
	EncryptOpts interfaces.EncrypterOpts

	DecryptErr  error
	DecryptOpts interfaces.DecrypterOpts
}

func (m *MockCSP) KeyImport(raw interface{}, opts interfaces.KeyImportOpts) (interfaces.Key, error) {
	m.KeyImportOpts = append(m.KeyImportOpts, opts)
	if m.KeyImportErr != nil {
		return nil, m.KeyImportErr
	}
	if m.KeyImportValue != nil {
		return m.KeyImportValue, nil
	}
	return &MockKey{}, nil
}

func (m *MockCSP) KeyDeriv(key interfaces.Key, opts interfaces.KeyDerivOpts) (interfaces.Key, error) {
	if m.KeyDerivErr != nil {
		return nil, m.KeyDerivErr
	}
	if m.KeyDerivValue != nil {
		return m.KeyDerivValue, nil
	}
	return &MockKey{}, nil
}

// Encrypt 没有设置 EncryptErr 时原样返回明文。
func (m *MockCSP) Encrypt(key interfaces.Key, plaintext []byte, opts interfaces.EncrypterOpts) ([]byte, error) {
	m.EncryptOpts = opts
	if m.EncryptErr == nil {
		return plaintext, nil
	} else {
		return nil, m.EncryptErr
	}
}

// Decrypt 没有设置 DecryptErr 时原样返回密文。
func (m *MockCSP) Decrypt(key interfaces.Key, ciphertext []byte, opts interfaces.DecrypterOpts) ([]byte, error) {
	m.DecryptOpts = opts
	if m.DecryptErr == nil {
		return ciphertext, nil
	} else {
		return nil, m.DecryptErr
	}
}

/* ------------------------------------------------------------------------------------------ */

type MockKey struct {
	BytesValue []byte
	BytesErr   error
	Alg        string
}

func (m *MockKey) Bytes() ([]byte, error) {
	return m.BytesValue, m.BytesErr
}

func (m *MockKey) Algorithm() string {
	return m.Alg
}

func (m *MockKey) Symmetric() bool {
	return true
}
