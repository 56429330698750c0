package des

import (
	"github.com/11090815/telcrypt/errors"
)

type DESKey struct {
	key        []byte
	exportable bool
}

// NewDESKey 复制 raw 的前 8 个字节作为 DES 密钥。
func NewDESKey(raw []byte, exportable bool) (*DESKey, error) {
	if err := checkKey(raw); err != nil {
		return nil, err
	}
	key := make([]byte, KeySize)
	copy(key, raw[:KeySize])
	return &DESKey{key: key, exportable: exportable}, nil
}

// Bytes 返回 DES 密钥的副本。
func (key *DESKey) Bytes() ([]byte, error) {
	if key.exportable {
		out := make([]byte, len(key.key))
		copy(out, key.key)
		return out, nil
	}

	return nil, errors.NewError("this DES key cannot be exported")
}

func (key *DESKey) Algorithm() string {
	return DES
}

func (key *DESKey) Symmetric() bool {
	return true
}
