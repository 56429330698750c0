package wire_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/11090815/telcrypt/common/mlog"
	"github.com/11090815/telcrypt/config"
	"github.com/11090815/telcrypt/csp/engine"
	"github.com/11090815/telcrypt/csp/factory"
	"github.com/11090815/telcrypt/csp/softimpl/des"
	"github.com/11090815/telcrypt/errors"
	"github.com/11090815/telcrypt/internal/pkg/wire"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *engine.Engine {
	csp, err := factory.NewCSP(factory.DefaultOpts())
	require.NoError(t, err)
	e, err := engine.New(csp, nil, nil, mlog.GetTestLogger("wire", mlog.InfoLevel, nil))
	require.NoError(t, err)
	return e
}

func TestValidateNumber(t *testing.T) {
	require.NoError(t, wire.ValidateNumber("9876543210"))
	require.Error(t, wire.ValidateNumber("987654321"))
	require.Error(t, wire.ValidateNumber("98765432100"))
	require.Error(t, wire.ValidateNumber("98765x3210"))
	require.Error(t, wire.ValidateNumber(""))
}

func TestDecodeAirtelBody(t *testing.T) {
	raw, err := wire.DecodeAirtelBody(`"aGVsbG8gd29ybGQ="`)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), raw)

	raw, err = wire.DecodeAirtelBody("aGVsbG8gd29ybGQ=\n")
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), raw)

	_, err = wire.DecodeAirtelBody(`"not base64!"`)
	require.Error(t, err)
}

func TestOpenAirtelResponse(t *testing.T) {
	e := newEngine(t)
	account := []byte(`{"siAccountDetails":{"airtel":true,"siStatus":"ACTIV","circleId":"8","lob":"PREPAID"},"valid":true}`)

	ciphertext, err := des.ECBEncryptPKCS7(account, []byte("airtel.c"))
	require.NoError(t, err)
	body := `"` + base64.StdEncoding.EncodeToString(ciphertext) + `"`

	plaintext, err := wire.OpenAirtelResponse(e, body, "")
	require.NoError(t, err)
	require.Equal(t, account, plaintext)

	ciphertext, err = des.ECBEncryptPKCS7(account, []byte("s3cr3tK3"))
	require.NoError(t, err)
	body = base64.StdEncoding.EncodeToString(ciphertext)
	plaintext, err = wire.OpenAirtelResponse(e, body, "s3cr3tK3y-from-header")
	require.NoError(t, err)
	require.Equal(t, account, plaintext)

	_, err = wire.OpenAirtelResponse(e, body, "short")
	require.ErrorIs(t, err, errors.ErrInvalidKey)

	_, err = wire.OpenAirtelResponse(e, `"AAAA"`, "")
	require.ErrorIs(t, err, errors.ErrInvalidLength)
}

func TestOpenAirtelResponseConfiguredDefaultKey(t *testing.T) {
	v := config.New()
	v.Set("cipher.airtel.defaultKey", "vendorKey-2024")
	e, err := engine.NewFromConfig(v)
	require.NoError(t, err)
	defer e.Close()

	account := []byte(`{"valid":true,"lob":"POSTPAID"}`)
	ciphertext, err := des.ECBEncryptPKCS7(account, []byte("vendorKe"))
	require.NoError(t, err)

	plaintext, err := wire.OpenAirtelResponse(e, `"`+base64.StdEncoding.EncodeToString(ciphertext)+`"`, "")
	require.NoError(t, err)
	require.Equal(t, account, plaintext)

	// 默认引擎使用 airtel.com，宽松去填充不报错，但得不到同样的明文。
	plaintext, err = wire.OpenAirtelResponse(newEngine(t), base64.StdEncoding.EncodeToString(ciphertext), "")
	require.NoError(t, err)
	require.NotEqual(t, account, plaintext)
}

func TestViRequest(t *testing.T) {
	raw, err := wire.ViRequest("9876543210")
	require.NoError(t, err)
	require.Equal(t, `{"mobNumber":"9876543210"}`, string(raw))

	_, err = wire.ViRequest("12345")
	require.Error(t, err)
}

func TestViFormBody(t *testing.T) {
	body, err := wire.ViFormBody(&engine.Payload{Params: "cGFyYW1z", Salt: "aa", IV: "bb", Passphrase: "cc"})
	require.NoError(t, err)
	require.Equal(t, `mobile={"params":"cGFyYW1z","sl":"aa","algf":"bb","sps":"cc"}`, body)

	_, err = wire.ViFormBody(nil)
	require.Error(t, err)
}

func TestSealViRequest(t *testing.T) {
	body, err := wire.SealViRequest(newEngine(t), "9876543210")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(body, "mobile={"))

	payload := &engine.Payload{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(body, "mobile=")), payload))
	require.Len(t, payload.Salt, 32)
	require.Len(t, payload.IV, 32)
	require.Len(t, payload.Passphrase, 32)
	require.NotEmpty(t, payload.Params)

	_, err = wire.SealViRequest(newEngine(t), "98765")
	require.Error(t, err)
}
