package aes

import (
	"github.com/11090815/telcrypt/csp/softimpl/utils"
	"github.com/11090815/telcrypt/errors"
)

type AESKey struct {
	key        []byte
	exportable bool
}

// NewAESKey 复制 raw 作为 AES-128 密钥，raw 必须是 16 个字节。
func NewAESKey(raw []byte, exportable bool) (*AESKey, error) {
	if len(raw) != KeySize {
		return nil, errors.NewKindErrorf(errors.KindInvalidKey, "the AES key must have %d bytes, but got \"%d\"", KeySize, len(raw))
	}
	return &AESKey{key: utils.Clone(raw), exportable: exportable}, nil
}

// Bytes 返回 AES 密钥的副本。
func (key *AESKey) Bytes() ([]byte, error) {
	if key.exportable {
		return utils.Clone(key.key), nil
	}

	return nil, errors.NewError("this AES key cannot be exported")
}

func (key *AESKey) Algorithm() string {
	return AES
}

func (key *AESKey) Symmetric() bool {
	return true
}
