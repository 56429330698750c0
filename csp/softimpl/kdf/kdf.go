package kdf

import (
	"crypto/sha1"

	"github.com/11090815/telcrypt/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Derive 计算 PBKDF2-HMAC-SHA1(password, salt, iterations, keyLen)。
func Derive(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 {
		return nil, errors.NewErrorf("the iteration count must be at least 1, but got \"%d\"", iterations)
	}
	if keyLen < 1 {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "the derived key length must be at least 1, but got \"%d\"", keyLen)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha1.New), nil
}
