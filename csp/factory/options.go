package factory

import (
	"github.com/11090815/telcrypt/config"
	"github.com/11090815/telcrypt/errors"
	"github.com/spf13/viper"
)

// ViOpts vi 请求加密的参数，长度的单位都是字节。
type ViOpts struct {
	Iterations     int `json:"iterations" yaml:"iterations" mapstructure:"iterations"`
	SaltSize       int `json:"salt_size" yaml:"saltSize" mapstructure:"saltSize"`
	IVSize         int `json:"iv_size" yaml:"ivSize" mapstructure:"ivSize"`
	PassphraseSize int `json:"passphrase_size" yaml:"passphraseSize" mapstructure:"passphraseSize"`
	KeyLength      int `json:"key_length" yaml:"keyLength" mapstructure:"keyLength"`
}

// AirtelOpts airtel 响应解密的参数。
type AirtelOpts struct {
	KeyLength  int    `json:"key_length" yaml:"keyLength" mapstructure:"keyLength"`
	DefaultKey string `json:"default_key" yaml:"defaultKey" mapstructure:"defaultKey"`

	// StrictPadding 为 true 时，解密后的 PKCS7 填充不合法会返回错误。
	StrictPadding bool `json:"strict_padding" yaml:"strictPadding" mapstructure:"strictPadding"`
}

type FactoryOpts struct {
	Kind   string     `json:"kind" yaml:"kind" mapstructure:"kind"`
	Vi     ViOpts     `json:"vi" yaml:"vi" mapstructure:"vi"`
	Airtel AirtelOpts `json:"airtel" yaml:"airtel" mapstructure:"airtel"`
}

// DefaultOpts 返回与 config.SetDefaults 一致的默认参数。
func DefaultOpts() *FactoryOpts {
	opts, _ := ReadConfig(config.New())
	return opts
}

// ReadConfig 读取配置中的 cipher 部分，v 为 nil 时使用全局配置。
func ReadConfig(v *viper.Viper) (*FactoryOpts, error) {
	if v == nil {
		v = config.GetConfig()
	}

	// 通过 Unmarshal 读取整个配置，嵌套的默认值才会与配置文件、Set 的值逐项合并。
	section := &struct {
		Cipher FactoryOpts `mapstructure:"cipher"`
	}{}
	if err := v.Unmarshal(section); err != nil {
		return nil, errors.NewErrorf("cannot read config file, the error is \"%s\"", err.Error())
	}
	opts := &section.Cipher
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate 检查参数是否能被 PBKDF2、AES-128 和 DES 使用。
func (opts *FactoryOpts) Validate() error {
	if opts.Vi.Iterations < 1 {
		return errors.NewErrorf("invalid cipher.vi.iterations \"%d\", it must be at least 1", opts.Vi.Iterations)
	}
	if opts.Vi.SaltSize < 1 {
		return errors.NewErrorf("invalid cipher.vi.saltSize \"%d\", it must be at least 1", opts.Vi.SaltSize)
	}
	if opts.Vi.PassphraseSize < 1 {
		return errors.NewErrorf("invalid cipher.vi.passphraseSize \"%d\", it must be at least 1", opts.Vi.PassphraseSize)
	}
	if opts.Vi.IVSize != 16 {
		return errors.NewKindErrorf(errors.KindInvalidLength, "invalid cipher.vi.ivSize \"%d\", AES-CBC needs 16", opts.Vi.IVSize)
	}
	if opts.Vi.KeyLength != 16 {
		return errors.NewKindErrorf(errors.KindInvalidKey, "invalid cipher.vi.keyLength \"%d\", only AES-128 is supported", opts.Vi.KeyLength)
	}
	if opts.Airtel.KeyLength != 8 {
		return errors.NewKindErrorf(errors.KindInvalidKey, "invalid cipher.airtel.keyLength \"%d\", DES needs 8", opts.Airtel.KeyLength)
	}
	return nil
}
