package kdf

import (
	"github.com/11090815/telcrypt/csp/softimpl/utils"
)

// PassphraseKey 是 PBKDF2 的口令，口令会以明文形式发给对端，因此总是可以导出。
type PassphraseKey struct {
	passphrase []byte
}

func NewPassphraseKey(passphrase []byte) *PassphraseKey {
	return &PassphraseKey{passphrase: utils.Clone(passphrase)}
}

func (key *PassphraseKey) Bytes() ([]byte, error) {
	return utils.Clone(key.passphrase), nil
}

func (key *PassphraseKey) Algorithm() string {
	return PBKDF2
}

func (key *PassphraseKey) Symmetric() bool {
	return true
}
