package des

import (
	"github.com/11090815/telcrypt/csp/softimpl/padding"
	"github.com/11090815/telcrypt/errors"
)

const (
	// BlockSize DES 的分组长度（字节）。
	BlockSize = 8

	// KeySize DES 密钥的长度（字节），更长的密钥材料只取前 8 个字节。
	KeySize = 8
)

func checkKey(key []byte) error {
	if len(key) < KeySize {
		return errors.NewKindErrorf(errors.KindInvalidKey, "the DES key must have at least %d bytes, but got \"%d\"", KeySize, len(key))
	}
	return nil
}

// ECBDecrypt 用 key 的前 8 个字节以 ECB 模式解密 ciphertext，然后宽松地去除 PKCS7 填充：
// 最后一个字节不在 [1, 8] 内时原样返回解密结果，不报错。
func ECBDecrypt(ciphertext, key []byte) ([]byte, error) {
	plaintext, err := ecbDecryptRaw(ciphertext, key)
	if err != nil {
		return nil, err
	}
	return padding.PKCS7StripLenient(plaintext, BlockSize), nil
}

// ECBDecryptStrict 与 ECBDecrypt 相同，但填充不合法时返回错误。
func ECBDecryptStrict(ciphertext, key []byte) ([]byte, error) {
	plaintext, err := ecbDecryptRaw(ciphertext, key)
	if err != nil {
		return nil, err
	}
	return padding.PKCS7Unpad(plaintext, BlockSize)
}

func ecbDecryptRaw(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "the length of the ciphertext must be a positive multiple of %d, but got \"%d\"", BlockSize, len(ciphertext))
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}

	ks := generateSubkeys(key)
	plaintext := make([]byte, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		plaintext = append(plaintext, cryptBlock(ciphertext[i:i+BlockSize], ks, true)...)
	}
	return plaintext, nil
}

// ECBEncrypt 以 ECB 模式加密 plaintext，不做任何填充，plaintext 的长度必须是 8 的整数倍。
func ECBEncrypt(plaintext, key []byte) ([]byte, error) {
	if len(plaintext)%BlockSize != 0 {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "the length of the plaintext must be a multiple of %d, but got \"%d\"", BlockSize, len(plaintext))
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}

	ks := generateSubkeys(key)
	ciphertext := make([]byte, 0, len(plaintext))
	for i := 0; i < len(plaintext); i += BlockSize {
		ciphertext = append(ciphertext, cryptBlock(plaintext[i:i+BlockSize], ks, false)...)
	}
	return ciphertext, nil
}

// ECBEncryptPKCS7 先用 PKCS7 补齐 plaintext，再以 ECB 模式加密。
func ECBEncryptPKCS7(plaintext, key []byte) ([]byte, error) {
	padded, err := padding.PKCS7Pad(plaintext, BlockSize)
	if err != nil {
		return nil, err
	}
	return ECBEncrypt(padded, key)
}
