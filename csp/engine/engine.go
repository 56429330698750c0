package engine

import (
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/11090815/telcrypt/common/metrics"
	"github.com/11090815/telcrypt/common/metrics/disabled"
	"github.com/11090815/telcrypt/common/mlog"
	"github.com/11090815/telcrypt/csp/factory"
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/csp/softimpl/aes"
	"github.com/11090815/telcrypt/csp/softimpl/des"
	"github.com/11090815/telcrypt/csp/softimpl/kdf"
	"github.com/11090815/telcrypt/csp/softimpl/utils"
	"github.com/11090815/telcrypt/errors"
	"github.com/spf13/viper"
)

// Payload vi 接口需要的加密结果，json 字段名沿用对端的命名。
type Payload struct {
	// Params base64 编码的密文，不包含初始化向量。
	Params string `json:"params"`
	// Salt 十六进制编码的盐值。
	Salt string `json:"sl"`
	// IV 十六进制编码的初始化向量。
	IV string `json:"algf"`
	// Passphrase 十六进制编码的口令，其本身也是 PBKDF2 的口令文本。
	Passphrase string `json:"sps"`
}

// Engine 把 CSP 组合成两条流水线：解密 airtel 响应（DES-ECB），加密 vi 请求（PBKDF2 + AES-CBC）。
// 每次调用都会重新导入和派生密钥，不缓存任何密钥材料，可以被并发使用。
type Engine struct {
	csp     interfaces.CSP
	opts    *factory.FactoryOpts
	metrics *Metrics
	logger  mlog.Logger
	stop    func()
}

// New opts 为 nil 时使用默认参数，provider 为 nil 时不记录指标，logger 为 nil 时使用 "engine" 模块的
// 默认日志记录器。
func New(csp interfaces.CSP, opts *factory.FactoryOpts, provider metrics.Provider, logger mlog.Logger) (*Engine, error) {
	if csp == nil {
		return nil, errors.NewError("invalid crypto service provider, nil provider")
	}
	if opts == nil {
		opts = factory.DefaultOpts()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		provider = &disabled.Provider{}
	}
	if logger == nil {
		logger = mlog.GetLogger("engine", mlog.DefaultLevel())
	}

	return &Engine{
		csp:     csp,
		opts:    opts,
		metrics: NewMetrics(provider),
		logger:  logger,
		stop:    func() {},
	}, nil
}

// NewFromConfig 从 viper 配置中读取 cipher、metrics 与 log 部分，初始化日志输出，创建 CSP、指标提供者和引擎。
func NewFromConfig(v *viper.Viper) (*Engine, error) {
	if err := mlog.Init(v); err != nil {
		return nil, err
	}

	opts, err := factory.ReadConfig(v)
	if err != nil {
		return nil, err
	}

	csp, err := factory.NewCSP(opts)
	if err != nil {
		return nil, err
	}

	logger := mlog.GetLogger("engine", mlog.ParseLevel(v.GetString("log.Level")))
	provider, stop, err := NewMetricsProvider(v, logger)
	if err != nil {
		return nil, err
	}

	e, err := New(csp, opts, provider, logger)
	if err != nil {
		stop()
		return nil, err
	}
	e.stop = stop
	return e, nil
}

// Close 停止后台的指标发送。
func (e *Engine) Close() {
	e.stop()
}

/* ------------------------------------------------------------------------------------------ */

// DecryptResponse 用 key 的前 8 个字节以 DES-ECB 解密 ciphertext，默认宽松地去除 PKCS7 填充。
func (e *Engine) DecryptResponse(ciphertext, key []byte) (plaintext []byte, err error) {
	start := time.Now()
	defer func() { e.observe(OpDecryptResponse, start, len(ciphertext), err) }()

	k, err := e.csp.KeyImport(key, &des.DESKeyImportOpts{})
	if err != nil {
		return nil, err
	}

	plaintext, err = e.csp.Decrypt(k, ciphertext, &des.DESECBModeOpts{StrictPadding: e.opts.Airtel.StrictPadding})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// AirtelKey 返回解密 airtel 响应使用的密钥：headerValue 为空时使用 cipher.airtel.defaultKey，
// 结果截断到 cipher.airtel.keyLength 个字节。过短的密钥原样返回，由 DecryptResponse 拒绝。
func (e *Engine) AirtelKey(headerValue string) []byte {
	value := headerValue
	if value == "" {
		value = e.opts.Airtel.DefaultKey
	}
	key := []byte(value)
	if len(key) > e.opts.Airtel.KeyLength {
		key = key[:e.opts.Airtel.KeyLength]
	}
	return key
}

// DecryptAirtel 用 AirtelKey(headerValue) 解密 airtel 响应。
func (e *Engine) DecryptAirtel(ciphertext []byte, headerValue string) ([]byte, error) {
	return e.DecryptResponse(ciphertext, e.AirtelKey(headerValue))
}

// EncryptPayload 随机生成盐值、初始化向量和口令，然后调用 EncryptPayloadWith。
func (e *Engine) EncryptPayload(plaintext []byte) (*Payload, error) {
	materials, err := utils.GetRandomMaterials(e.opts.Vi.SaltSize, e.opts.Vi.IVSize, e.opts.Vi.PassphraseSize)
	if err != nil {
		e.observe(OpEncryptPayload, time.Now(), len(plaintext), err)
		return nil, errors.Wrapf(err, "failed generating payload materials")
	}
	return e.EncryptPayloadWith(plaintext, materials[0], materials[1], materials[2])
}

// EncryptPayloadWith 把 passphrase 的小写十六进制文本作为 PBKDF2-HMAC-SHA1 的口令，用 salt 派生 AES-128
// 密钥，再以 iv 对 plaintext 做 AES-CBC 加密。
func (e *Engine) EncryptPayloadWith(plaintext, salt, iv, passphrase []byte) (payload *Payload, err error) {
	start := time.Now()
	defer func() { e.observe(OpEncryptPayload, start, len(plaintext), err) }()

	passphraseHex := hex.EncodeToString(passphrase)
	pk, err := e.csp.KeyImport(passphraseHex, &kdf.PassphraseKeyImportOpts{})
	if err != nil {
		return nil, err
	}

	dk, err := e.csp.KeyDeriv(pk, &kdf.PBKDF2KeyDerivOpts{
		Salt:       salt,
		Iterations: e.opts.Vi.Iterations,
		KeyLength:  e.opts.Vi.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	ciphertext, err := e.csp.Encrypt(dk, plaintext, &aes.AESCBCPKCS7ModeOpts{IV: iv})
	if err != nil {
		return nil, err
	}

	return &Payload{
		Params:     base64.StdEncoding.EncodeToString(ciphertext),
		Salt:       hex.EncodeToString(salt),
		IV:         hex.EncodeToString(iv),
		Passphrase: passphraseHex,
	}, nil
}

/* ------------------------------------------------------------------------------------------ */

// observe 只记录长度和耗时，不记录任何密钥或明文内容。
func (e *Engine) observe(op string, start time.Time, n int, err error) {
	e.metrics.Duration.With("operation", op).Observe(time.Since(start).Seconds())
	if err != nil {
		e.metrics.Operations.With("operation", op, "result", resultError).Add(1)
		e.logger.With("op", op).Debugf("Failed handling %d bytes: %s", n, err.Error())
		return
	}
	e.metrics.Operations.With("operation", op, "result", resultOK).Add(1)
	e.metrics.BytesProcessed.With("operation", op).Add(float64(n))
	e.logger.With("op", op).Debugf("Handled %d bytes in %s", n, time.Since(start))
}
