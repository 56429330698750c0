package wire

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/11090815/telcrypt/csp/engine"
	"github.com/11090815/telcrypt/errors"
)

const (
	// AirtelKeyHeader airtel 通过这个响应头下发 DES 密钥。
	AirtelKeyHeader = "googleCookie"

	// ViFormField vi 请求体中承载加密结果的表单字段。
	ViFormField = "mobile"
)

var numberPattern = regexp.MustCompile(`^\d{10}$`)

// ValidateNumber 号码必须是 10 位数字。
func ValidateNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errors.NewErrorf("invalid phone number \"%s\", it must have 10 digits", number)
	}
	return nil
}

/* ------------------------------------------------------------------------------------------ */

// DecodeAirtelBody 去掉响应体中所有的双引号，然后做 base64 解码。
func DecodeAirtelBody(body string) ([]byte, error) {
	encoded := strings.TrimSpace(strings.ReplaceAll(body, `"`, ""))
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.NewErrorf("failed decoding airtel response body, the error is \"%s\"", err.Error())
	}
	return ciphertext, nil
}

// OpenAirtelResponse 解码并解密 airtel 的响应体，返回 JSON 明文。headerValue 是 googleCookie 响应头的值，
// 为空时使用引擎配置的默认密钥。
func OpenAirtelResponse(e *engine.Engine, body, headerValue string) ([]byte, error) {
	ciphertext, err := DecodeAirtelBody(body)
	if err != nil {
		return nil, err
	}
	return e.DecryptAirtel(ciphertext, headerValue)
}

/* ------------------------------------------------------------------------------------------ */

type viRequest struct {
	MobNumber string `json:"mobNumber"`
}

// ViRequest 返回 vi 接口需要加密的明文 {"mobNumber":"<number>"}。
func ViRequest(number string) ([]byte, error) {
	if err := ValidateNumber(number); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(&viRequest{MobNumber: number})
	if err != nil {
		return nil, errors.NewErrorf("failed marshaling vi request, the error is \"%s\"", err.Error())
	}
	return raw, nil
}

// ViFormBody 返回 application/x-www-form-urlencoded 请求体 mobile=<json>，json 不做 URL 转义。
func ViFormBody(p *engine.Payload) (string, error) {
	if p == nil {
		return "", errors.NewError("invalid payload, nil payload")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", errors.NewErrorf("failed marshaling vi payload, the error is \"%s\"", err.Error())
	}
	return ViFormField + "=" + string(raw), nil
}

// SealViRequest 加密号码并返回完整的请求体。
func SealViRequest(e *engine.Engine, number string) (string, error) {
	plaintext, err := ViRequest(number)
	if err != nil {
		return "", err
	}
	payload, err := e.EncryptPayload(plaintext)
	if err != nil {
		return "", err
	}
	return ViFormBody(payload)
}
