package softimpl_test

import (
	"reflect"
	"testing"

	"github.com/11090815/telcrypt/csp/softimpl"
	"github.com/11090815/telcrypt/csp/softimpl/aes"
	"github.com/11090815/telcrypt/csp/softimpl/des"
	"github.com/11090815/telcrypt/csp/softimpl/kdf"
	"github.com/11090815/telcrypt/errors"
	"github.com/stretchr/testify/require"
)

func newImpl(t *testing.T) *softimpl.SoftCSPImpl {
	impl := softimpl.NewSoftCSPImpl()

	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&des.DESKeyImportOpts{}), des.NewDESKeyImporter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&des.DESKey{}), des.NewDESECBEncrypter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&des.DESKey{}), des.NewDESECBDecrypter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&aes.AESKeyImportOpts{}), aes.NewAESKeyImporter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&aes.AESKey{}), aes.NewAESCBCPKCS7Encrypter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&aes.AESKey{}), aes.NewAESCBCPKCS7Decrypter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&kdf.PassphraseKeyImportOpts{}), kdf.NewPassphraseKeyImporter()))
	require.NoError(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&kdf.PassphraseKey{}), kdf.NewPBKDF2KeyDeriver()))

	return impl
}

func TestRegisterWidget(t *testing.T) {
	impl := softimpl.NewSoftCSPImpl()

	require.Error(t, softimpl.RegisterWidget(impl, nil, des.NewDESECBDecrypter()))
	require.Error(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&des.DESKey{}), nil))
	require.Error(t, softimpl.RegisterWidget(impl, reflect.TypeOf(&des.DESKey{}), "decrypter"))

	impl = newImpl(t)
	require.Len(t, impl.KeyImporters, 3)
	require.Len(t, impl.KeyDerivers, 1)
	require.Len(t, impl.Encrypters, 2)
	require.Len(t, impl.Decrypters, 2)
}

func TestDESThroughCSP(t *testing.T) {
	impl := newImpl(t)

	key, err := impl.KeyImport([]byte("airtel.com"), &des.DESKeyImportOpts{})
	require.NoError(t, err)

	ciphertext, err := impl.Encrypt(key, []byte(`{"msisdn":"9876543210"}`), nil)
	require.NoError(t, err)
	require.Len(t, ciphertext, 24)

	plaintext, err := impl.Decrypt(key, ciphertext, nil)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"msisdn":"9876543210"}`), plaintext)

	_, err = impl.Decrypt(key, ciphertext[:7], nil)
	require.ErrorIs(t, err, errors.ErrInvalidLength)

	_, err = impl.KeyImport([]byte("short"), &des.DESKeyImportOpts{})
	require.ErrorIs(t, err, errors.ErrInvalidKey)
}

func TestPBKDF2ThroughCSP(t *testing.T) {
	impl := newImpl(t)

	pk, err := impl.KeyImport("000102030405060708090a0b0c0d0e0f", &kdf.PassphraseKeyImportOpts{})
	require.NoError(t, err)

	salt := make([]byte, 16)
	iv := make([]byte, 16)
	for i := 0; i < 16; i++ {
		salt[i] = byte(16 + i)
		iv[i] = byte(32 + i)
	}

	dk, err := impl.KeyDeriv(pk, &kdf.PBKDF2KeyDerivOpts{Salt: salt, Iterations: 100, KeyLength: 16})
	require.NoError(t, err)

	ciphertext, err := impl.Encrypt(dk, []byte("hello"), &aes.AESCBCPKCS7ModeOpts{IV: iv})
	require.NoError(t, err)
	require.Len(t, ciphertext, 16)

	plaintext, err := impl.Decrypt(dk, ciphertext, &aes.AESCBCPKCS7ModeOpts{IV: iv})
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), plaintext)
}

func TestMissingWidgets(t *testing.T) {
	impl := softimpl.NewSoftCSPImpl()

	_, err := impl.KeyImport([]byte("airtel.com"), &des.DESKeyImportOpts{})
	require.Error(t, err)

	_, err = impl.KeyImport(nil, &des.DESKeyImportOpts{})
	require.Error(t, err)

	_, err = impl.KeyImport([]byte("airtel.com"), nil)
	require.Error(t, err)

	key, err := des.NewDESKey([]byte("airtel.c"), false)
	require.NoError(t, err)

	_, err = impl.Encrypt(key, []byte("x"), nil)
	require.Error(t, err)

	_, err = impl.Decrypt(key, make([]byte, 8), nil)
	require.Error(t, err)

	_, err = impl.Decrypt(nil, make([]byte, 8), nil)
	require.Error(t, err)

	_, err = impl.KeyDeriv(kdf.NewPassphraseKey([]byte("p")), &kdf.PBKDF2KeyDerivOpts{Salt: []byte("s"), Iterations: 1})
	require.Error(t, err)

	_, err = impl.KeyDeriv(nil, &kdf.PBKDF2KeyDerivOpts{})
	require.Error(t, err)
}
