package des

import (
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

type DESECBDecrypter struct{}

func NewDESECBDecrypter() *DESECBDecrypter {
	return &DESECBDecrypter{}
}

// Decrypt 此方法的第三个参数 DecrypterOpts 可以是 nil、*DESECBModeOpts 或 DESECBModeOpts。
func (decrypter *DESECBDecrypter) Decrypt(key interfaces.Key, ciphertext []byte, opts interfaces.DecrypterOpts) ([]byte, error) {
	k, ok := key.(*DESKey)
	if !ok {
		return nil, errors.NewErrorf("invalid key, expected *DESKey, but got \"%T\"", key)
	}

	switch o := opts.(type) {
	case nil:
		return ECBDecrypt(ciphertext, k.key)
	case *DESECBModeOpts:
		if o != nil && o.StrictPadding {
			return ECBDecryptStrict(ciphertext, k.key)
		}
		return ECBDecrypt(ciphertext, k.key)
	case DESECBModeOpts:
		return decrypter.Decrypt(key, ciphertext, &o)
	default:
		return nil, errors.NewErrorf("decryption option \"%T\" is not recognized", opts)
	}
}

/* ------------------------------------------------------------------------------------------ */

type DESECBEncrypter struct{}

func NewDESECBEncrypter() *DESECBEncrypter {
	return &DESECBEncrypter{}
}

// Encrypt 此方法的第三个参数 EncrypterOpts 可以是 nil、*DESECBModeOpts 或 DESECBModeOpts。
func (encrypter *DESECBEncrypter) Encrypt(key interfaces.Key, plaintext []byte, opts interfaces.EncrypterOpts) ([]byte, error) {
	k, ok := key.(*DESKey)
	if !ok {
		return nil, errors.NewErrorf("invalid key, expected *DESKey, but got \"%T\"", key)
	}

	switch o := opts.(type) {
	case nil:
		return ECBEncryptPKCS7(plaintext, k.key)
	case *DESECBModeOpts:
		if o != nil && o.NoPadding {
			return ECBEncrypt(plaintext, k.key)
		}
		return ECBEncryptPKCS7(plaintext, k.key)
	case DESECBModeOpts:
		return encrypter.Encrypt(key, plaintext, &o)
	default:
		return nil, errors.NewErrorf("encryption option \"%T\" is not recognized", opts)
	}
}
