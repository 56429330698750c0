package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/11090815/telcrypt/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigName 配置文件的名字（不含扩展名）。
	ConfigName = "core"

	// EnvPrefix 环境变量的前缀，例如 TELCRYPT_CIPHER_VI_ITERATIONS 会覆盖 cipher.vi.iterations。
	EnvPrefix = "TELCRYPT"

	// PathEnv 如果设置了此环境变量，则从该目录读取配置文件。
	PathEnv = "TELCRYPT_CFG_PATH"
)

var (
	_config *viper.Viper
	mutex   = &sync.Mutex{}
)

// SetDefaults 为 v 写入所有配置项的默认值，配置文件中没有出现的配置项会取这些值。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("cipher.kind", "sw")
	v.SetDefault("cipher.vi.iterations", 100)
	v.SetDefault("cipher.vi.saltSize", 16)
	v.SetDefault("cipher.vi.ivSize", 16)
	v.SetDefault("cipher.vi.passphraseSize", 16)
	v.SetDefault("cipher.vi.keyLength", 16)
	v.SetDefault("cipher.airtel.keyLength", 8)
	v.SetDefault("cipher.airtel.defaultKey", "airtel.com")
	v.SetDefault("cipher.airtel.strictPadding", false)

	v.SetDefault("metrics.provider", "disabled")
	v.SetDefault("metrics.statsd.prefix", "")
	v.SetDefault("metrics.statsd.network", "udp")
	v.SetDefault("metrics.statsd.address", "127.0.0.1:8125")
	v.SetDefault("metrics.statsd.writeInterval", "10s")

	v.SetDefault("log.Level", "info")
	v.SetDefault("log.DirPath", "")
	v.SetDefault("log.SingleFileMaxSize", 1<<20)
}

// New 返回一个只带有默认值的 viper 实例，不读取任何配置文件。
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 从给定目录读取 core.yaml，如果 dir 为空，则依次尝试 TELCRYPT_CFG_PATH 和当前目录。
// 找不到配置文件时返回只带有默认值的配置。
func Load(dir string) (*viper.Viper, error) {
	v := New()
	if dir == "" {
		dir = os.Getenv(PathEnv)
	}
	if dir != "" {
		if !dirExists(dir) {
			return nil, errors.NewErrorf("config path \"%s\" does not exist", dir)
		}
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath("./")
	}
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.NewErrorf("failed reading config file, the error is \"%s\"", err.Error())
		}
	}

	return v, nil
}

// GetConfig 返回全局配置，第一次调用时通过 Load("") 加载。
func GetConfig() *viper.Viper {
	mutex.Lock()
	defer mutex.Unlock()
	if _config == nil {
		v, err := Load("")
		if err != nil {
			v = New()
		}
		_config = v
	}
	return _config
}

// SetConfig 替换全局配置。
func SetConfig(v *viper.Viper) {
	mutex.Lock()
	_config = v
	mutex.Unlock()
}

/* ------------------------------------------------------------------------------------------ */

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.IsDir()
}

// TranslatePath 判断给定的路径（第二个参数）是否是绝对路径，若是，直接返回此路径，否则返回
// base/path。
func TranslatePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// GetPath 读取 key 对应的路径，相对路径以配置文件所在目录为基准。
func GetPath(v *viper.Viper, key string) string {
	path := v.GetString(key)
	if path == "" {
		return ""
	}
	if v.ConfigFileUsed() == "" {
		return path
	}

	return TranslatePath(filepath.Dir(v.ConfigFileUsed()), path)
}
