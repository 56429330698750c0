package des_test

import (
	"bytes"
	stddes "crypto/des"
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync"
	"testing"

	"github.com/11090815/telcrypt/csp/softimpl/des"
	"github.com/11090815/telcrypt/errors"
	"github.com/andreburgaud/crypt2go/ecb"
	"github.com/andreburgaud/crypt2go/padding"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vector struct {
	Name       string `yaml:"name"`
	Key        string `yaml:"key"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

func loadVectors(t *testing.T) []vector {
	raw, err := os.ReadFile("testdata/des_vectors.yaml")
	require.NoError(t, err)
	var vectors []vector
	require.NoError(t, yaml.Unmarshal(raw, &vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// oracle 用标准库的 DES 分组加上 crypt2go 的 ECB 模式和 PKCS7 填充计算参考密文。
func oracle(t *testing.T, plaintext, key []byte) []byte {
	block, err := stddes.NewCipher(key[:des.KeySize])
	require.NoError(t, err)
	padded, err := padding.NewPkcs7Padding(des.BlockSize).Pad(append([]byte{}, plaintext...))
	require.NoError(t, err)
	out := make([]byte, len(padded))
	ecb.NewECBEncrypter(block).CryptBlocks(out, padded)
	return out
}

func TestKnownAnswers(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			key := decodeHex(t, v.Key)
			pt := decodeHex(t, v.Plaintext)
			ct := decodeHex(t, v.Ciphertext)

			out, err := des.ECBEncrypt(pt, key)
			require.NoError(t, err)
			require.Equal(t, ct, out)

			// 单个分组解密后最后一个字节不在 [1, 8] 内时原样返回。
			if last := pt[len(pt)-1]; last == 0 || last > des.BlockSize {
				out, err = des.ECBDecrypt(ct, key)
				require.NoError(t, err)
				require.Equal(t, pt, out)
			}
		})
	}
}

func TestDecryptAgainstStdlib(t *testing.T) {
	key := []byte("airtel.c")
	for n := 0; n <= 40; n++ {
		plaintext := make([]byte, n)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		ct := oracle(t, plaintext, key)
		out, err := des.ECBEncryptPKCS7(plaintext, key)
		require.NoError(t, err)
		require.Equal(t, ct, out)

		pt, err := des.ECBDecrypt(ct, key)
		require.NoError(t, err)
		require.Equal(t, plaintext, pt)

		pt, err = des.ECBDecryptStrict(ct, key)
		require.NoError(t, err)
		require.Equal(t, plaintext, pt)
	}
}

func TestDecryptJSONResponse(t *testing.T) {
	body := []byte(`{"status":"ok","data":{"msisdn":"9876543210","circle":"DL"}}`)
	key := []byte("airtel.com")

	ct := oracle(t, body, key)
	pt, err := des.ECBDecrypt(ct, key)
	require.NoError(t, err)
	require.Equal(t, body, pt)
}

func TestLongKeyTruncated(t *testing.T) {
	ct, err := des.ECBEncryptPKCS7([]byte("hello"), []byte("airtel.c"))
	require.NoError(t, err)

	pt, err := des.ECBDecrypt(ct, []byte("airtel.com"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), pt)

	pt, err = des.ECBDecrypt(ct, []byte("airtel.c0000000000000000"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), pt)
}

func TestLenientPadding(t *testing.T) {
	key := decodeHex(t, "0123456789ABCDEF")

	// 最后一个字节是 0x09，超出 [1, 8]，不去除任何字节。
	raw := []byte("abcdefg\x09")
	ct, err := des.ECBEncrypt(raw, key)
	require.NoError(t, err)
	pt, err := des.ECBDecrypt(ct, key)
	require.NoError(t, err)
	require.Equal(t, raw, pt)

	_, err = des.ECBDecryptStrict(ct, key)
	require.Error(t, err)

	// 最后一个字节是 0x03，但前面的字节不是 0x03，宽松模式依然去掉 3 个字节。
	raw = []byte("abcdefg\x03")
	ct, err = des.ECBEncrypt(raw, key)
	require.NoError(t, err)
	pt, err = des.ECBDecrypt(ct, key)
	require.NoError(t, err)
	require.Equal(t, []byte("abcde"), pt)

	_, err = des.ECBDecryptStrict(ct, key)
	require.Error(t, err)

	// 整个分组都是填充。
	raw = bytes.Repeat([]byte{0x08}, 8)
	ct, err = des.ECBEncrypt(raw, key)
	require.NoError(t, err)
	pt, err = des.ECBDecrypt(ct, key)
	require.NoError(t, err)
	require.Empty(t, pt)
}

func TestInvalidInputs(t *testing.T) {
	key := []byte("airtel.c")

	for _, n := range []int{0, 1, 7, 9, 15, 17} {
		_, err := des.ECBDecrypt(make([]byte, n), key)
		require.ErrorIs(t, err, errors.ErrInvalidLength, "length %d", n)
		_, err = des.ECBDecryptStrict(make([]byte, n), key)
		require.ErrorIs(t, err, errors.ErrInvalidLength, "length %d", n)
	}

	for _, n := range []int{0, 1, 7} {
		_, err := des.ECBDecrypt(make([]byte, 8), make([]byte, n))
		require.ErrorIs(t, err, errors.ErrInvalidKey, "key length %d", n)
		_, err = des.ECBEncrypt(make([]byte, 8), make([]byte, n))
		require.ErrorIs(t, err, errors.ErrInvalidKey, "key length %d", n)
	}

	// 长度先于密钥检查。
	_, err := des.ECBDecrypt(make([]byte, 7), nil)
	require.ErrorIs(t, err, errors.ErrInvalidLength)

	_, err = des.ECBEncrypt(make([]byte, 5), key)
	require.ErrorIs(t, err, errors.ErrInvalidLength)

	out, err := des.ECBEncrypt(nil, key)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestInputsNotModified(t *testing.T) {
	key := []byte("airtel.com")
	ct := oracle(t, []byte("do not touch"), key)
	ctCopy := append([]byte{}, ct...)
	keyCopy := append([]byte{}, key...)

	_, err := des.ECBDecrypt(ct, key)
	require.NoError(t, err)
	require.Equal(t, ctCopy, ct)
	require.Equal(t, keyCopy, key)
}

func TestConcurrentDecrypt(t *testing.T) {
	key := []byte("airtel.c")
	plaintext := []byte(`{"msisdn":"9876543210"}`)
	ct := oracle(t, plaintext, key)

	wg := sync.WaitGroup{}
	results := make([][]byte, 1000)
	errs := make([]error, 1000)
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = des.ECBDecrypt(ct, key)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, plaintext, results[i])
	}
}

/* ------------------------------------------------------------------------------------------ */

func TestKeyImport(t *testing.T) {
	importer := des.NewDESKeyImporter()

	key, err := importer.KeyImport("airtel.com", &des.DESKeyImportOpts{Exportable: true})
	require.NoError(t, err)
	require.Equal(t, des.DES, key.Algorithm())
	require.True(t, key.Symmetric())
	raw, err := key.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("airtel.c"), raw)

	// 导出的是副本。
	raw[0] = 'X'
	raw2, err := key.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("airtel.c"), raw2)

	key, err = importer.KeyImport([]byte("12345678"), nil)
	require.NoError(t, err)
	_, err = key.Bytes()
	require.Error(t, err)

	key, err = importer.KeyImport([]byte("short"), nil)
	require.ErrorIs(t, err, errors.ErrInvalidKey)
	require.Nil(t, key)

	_, err = importer.KeyImport(12345678, nil)
	require.Error(t, err)
}

func TestWidgets(t *testing.T) {
	key, err := des.NewDESKeyImporter().KeyImport([]byte("airtel.c"), nil)
	require.NoError(t, err)

	encrypter := des.NewDESECBEncrypter()
	decrypter := des.NewDESECBDecrypter()
	plaintext := []byte("widget round trip")

	ct, err := encrypter.Encrypt(key, plaintext, nil)
	require.NoError(t, err)
	require.Equal(t, oracle(t, plaintext, []byte("airtel.c")), ct)

	pt, err := decrypter.Decrypt(key, ct, nil)
	require.NoError(t, err)
	require.Equal(t, plaintext, pt)

	pt, err = decrypter.Decrypt(key, ct, &des.DESECBModeOpts{StrictPadding: true})
	require.NoError(t, err)
	require.Equal(t, plaintext, pt)

	pt, err = decrypter.Decrypt(key, ct, des.DESECBModeOpts{})
	require.NoError(t, err)
	require.Equal(t, plaintext, pt)

	_, err = encrypter.Encrypt(key, plaintext, &des.DESECBModeOpts{NoPadding: true})
	require.ErrorIs(t, err, errors.ErrInvalidLength)

	raw, err := encrypter.Encrypt(key, []byte("12345678"), des.DESECBModeOpts{NoPadding: true})
	require.NoError(t, err)
	require.Len(t, raw, 8)

	_, err = decrypter.Decrypt(key, ct, "strict")
	require.Error(t, err)

	_, err = decrypter.Decrypt(nil, ct, nil)
	require.Error(t, err)
}
