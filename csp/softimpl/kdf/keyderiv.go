package kdf

import (
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/csp/softimpl/aes"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

type PBKDF2KeyDeriver struct{}

func NewPBKDF2KeyDeriver() *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{}
}

// KeyDeriv 用口令密钥和 *PBKDF2KeyDerivOpts 中的盐值、迭代次数派生出一个 AES 密钥。
func (kd *PBKDF2KeyDeriver) KeyDeriv(key interfaces.Key, opts interfaces.KeyDerivOpts) (interfaces.Key, error) {
	if opts == nil {
		return nil, errors.NewError("invalid opts parameter, nil opts parameter")
	}

	pk, ok := key.(*PassphraseKey)
	if !ok {
		return nil, errors.NewErrorf("invalid key, expected *PassphraseKey, but got \"%T\"", key)
	}

	o, ok := opts.(*PBKDF2KeyDerivOpts)
	if !ok || o == nil {
		return nil, errors.NewErrorf("the supported options contain [*PBKDF2KeyDerivOpts], but got \"%T\"", opts)
	}

	length := o.KeyLength
	if length == 0 {
		length = aes.KeySize
	}

	derived, err := Derive(pk.passphrase, o.Salt, o.Iterations, length)
	if err != nil {
		return nil, err
	}

	dk, err := aes.NewAESKey(derived, o.Exportable)
	if err != nil {
		return nil, errors.Wrapf(err, "failed deriving AES key")
	}
	return dk, nil
}
