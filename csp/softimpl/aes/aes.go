package aes

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/csp/softimpl/padding"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

type AESCBCPKCS7Encrypter struct{}

func NewAESCBCPKCS7Encrypter() *AESCBCPKCS7Encrypter {
	return &AESCBCPKCS7Encrypter{}
}

// Encrypt 此方法的第三个参数 EncrypterOpts 要么是 *AESCBCPKCS7ModeOpts，要么是 AESCBCPKCS7ModeOpts，
// 且必须带有初始化向量。
func (encrypter *AESCBCPKCS7Encrypter) Encrypt(key interfaces.Key, plaintext []byte, opts interfaces.EncrypterOpts) ([]byte, error) {
	k, ok := key.(*AESKey)
	if !ok {
		return nil, errors.NewErrorf("invalid key, expected *AESKey, but got \"%T\"", key)
	}

	switch o := opts.(type) {
	case *AESCBCPKCS7ModeOpts:
		if o == nil {
			return nil, errors.NewError("invalid opts parameter, nil opts parameter")
		}
		return encryptWithIV(o.IV, k.key, plaintext)
	case AESCBCPKCS7ModeOpts:
		return encrypter.Encrypt(key, plaintext, &o)
	default:
		return nil, errors.NewErrorf("encryption option \"%T\" is not recognized", opts)
	}
}

/* ------------------------------------------------------------------------------------------ */

type AESCBCPKCS7Decrypter struct{}

func NewAESCBCPKCS7Decrypter() *AESCBCPKCS7Decrypter {
	return &AESCBCPKCS7Decrypter{}
}

// Decrypt 此方法的第三个参数 DecrypterOpts 要么是 *AESCBCPKCS7ModeOpts，要么是 AESCBCPKCS7ModeOpts。
func (decrypter *AESCBCPKCS7Decrypter) Decrypt(key interfaces.Key, ciphertext []byte, opts interfaces.DecrypterOpts) ([]byte, error) {
	k, ok := key.(*AESKey)
	if !ok {
		return nil, errors.NewErrorf("invalid key, expected *AESKey, but got \"%T\"", key)
	}

	switch o := opts.(type) {
	case *AESCBCPKCS7ModeOpts:
		if o == nil {
			return nil, errors.NewError("invalid opts parameter, nil opts parameter")
		}
		return decryptWithIV(o.IV, k.key, ciphertext)
	case AESCBCPKCS7ModeOpts:
		return decrypter.Decrypt(key, ciphertext, &o)
	default:
		return nil, errors.NewErrorf("decryption option \"%T\" is not recognized", opts)
	}
}

/* ------------------------------------------------------------------------------------------ */

func newBlock(iv, key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, errors.NewKindErrorf(errors.KindInvalidKey, "the AES key must have %d bytes, but got \"%d\"", KeySize, len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "the length of the initial vector must be \"%d\", but got \"%d\"", aes.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.NewErrorf("failed creating AES cipher, the error is \"%s\"", err.Error())
	}
	return block, nil
}

// encryptWithIV 返回的密文不包含初始化向量，对端单独接收十六进制形式的初始化向量。
func encryptWithIV(iv, key, plaintext []byte) ([]byte, error) {
	block, err := newBlock(iv, key)
	if err != nil {
		return nil, err
	}

	padded, err := padding.PKCS7Pad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

func decryptWithIV(iv, key, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(iv, key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "invalid ciphertext, the length of the ciphertext must be a positive multiple of \"%d\", but got \"%d\"", aes.BlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext)

	return padding.PKCS7Unpad(plaintext, aes.BlockSize)
}
