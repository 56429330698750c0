package kdf_test

import (
	"encoding/hex"
	"testing"

	"github.com/11090815/telcrypt/csp/softimpl/aes"
	"github.com/11090815/telcrypt/csp/softimpl/kdf"
	"github.com/11090815/telcrypt/errors"
	"github.com/stretchr/testify/require"
)

func TestDeriveRFC6070(t *testing.T) {
	cases := []struct {
		password   string
		salt       string
		iterations int
		keyLen     int
		expected   string
	}{
		{"password", "salt", 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{"password", "salt", 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{"password", "salt", 4096, 20, "4b007901b765489abead49d926f721d065a429c1"},
		{"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt", 4096, 25, "3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038"},
	}

	for _, c := range cases {
		dk, err := kdf.Derive([]byte(c.password), []byte(c.salt), c.iterations, c.keyLen)
		require.NoError(t, err)
		require.Equal(t, c.expected, hex.EncodeToString(dk))
	}
}

// 口令是 00..0f 的十六进制文本，盐值是 10..1f，100 次迭代，16 字节密钥。
func TestDeriveHexPassphrase(t *testing.T) {
	salt := make([]byte, 16)
	for i := range salt {
		salt[i] = byte(16 + i)
	}

	dk, err := kdf.Derive([]byte("000102030405060708090a0b0c0d0e0f"), salt, 100, 16)
	require.NoError(t, err)
	require.Equal(t, "c6f680fdbd0822156eaf22163297ca1a", hex.EncodeToString(dk))
}

func TestDeriveInvalid(t *testing.T) {
	_, err := kdf.Derive([]byte("password"), []byte("salt"), 0, 16)
	require.Error(t, err)

	_, err = kdf.Derive([]byte("password"), []byte("salt"), 1, 0)
	require.ErrorIs(t, err, errors.ErrInvalidLength)
}

func TestKeyDeriv(t *testing.T) {
	pk, err := kdf.NewPassphraseKeyImporter().KeyImport("password", &kdf.PassphraseKeyImportOpts{})
	require.NoError(t, err)
	require.Equal(t, kdf.PBKDF2, pk.Algorithm())

	deriver := kdf.NewPBKDF2KeyDeriver()
	dk, err := deriver.KeyDeriv(pk, &kdf.PBKDF2KeyDerivOpts{Salt: []byte("salt"), Iterations: 1, Exportable: true})
	require.NoError(t, err)
	require.IsType(t, &aes.AESKey{}, dk)

	raw, err := dk.Bytes()
	require.NoError(t, err)
	require.Equal(t, "0c60c80f961f0e71f3a9b524af601206", hex.EncodeToString(raw))

	// 派生出的 AES 密钥只能是 16 个字节。
	_, err = deriver.KeyDeriv(pk, &kdf.PBKDF2KeyDerivOpts{Salt: []byte("salt"), Iterations: 1, KeyLength: 20})
	require.ErrorIs(t, err, errors.ErrInvalidKey)

	_, err = deriver.KeyDeriv(pk, nil)
	require.Error(t, err)

	aesKey, err := aes.NewAESKey(make([]byte, 16), false)
	require.NoError(t, err)
	_, err = deriver.KeyDeriv(aesKey, &kdf.PBKDF2KeyDerivOpts{Salt: []byte("salt"), Iterations: 1})
	require.Error(t, err)

	_, err = kdf.NewPassphraseKeyImporter().KeyImport(42, nil)
	require.Error(t, err)
}
