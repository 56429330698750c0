package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/11090815/telcrypt/config"
	"github.com/11090815/telcrypt/config/configtest"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := config.New()
	require.Equal(t, 100, v.GetInt("cipher.vi.iterations"))
	require.Equal(t, 16, v.GetInt("cipher.vi.saltSize"))
	require.Equal(t, 16, v.GetInt("cipher.vi.keyLength"))
	require.Equal(t, 8, v.GetInt("cipher.airtel.keyLength"))
	require.Equal(t, "airtel.com", v.GetString("cipher.airtel.defaultKey"))
	require.Equal(t, "disabled", v.GetString("metrics.provider"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`cipher:
  vi:
    iterations: 250
metrics:
  provider: prometheus
log:
  Level: debug
  DirPath: logs
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.yaml"), content, os.FileMode(0600)))

	v, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 250, v.GetInt("cipher.vi.iterations"))
	require.Equal(t, 16, v.GetInt("cipher.vi.ivSize"))
	require.Equal(t, "prometheus", v.GetString("metrics.provider"))
	require.Equal(t, filepath.Join(dir, "logs"), config.GetPath(v, "log.DirPath"))
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	v, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 100, v.GetInt("cipher.vi.iterations"))
}

func TestTranslatePath(t *testing.T) {
	require.Equal(t, "/etc/telcrypt", config.TranslatePath("/base", "/etc/telcrypt"))
	require.Equal(t, filepath.Join("/base", "logs"), config.TranslatePath("/base", "logs"))
}

func TestSampleConfig(t *testing.T) {
	configtest.SetDevConfigPath(t)

	v, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "core.yaml", filepath.Base(v.ConfigFileUsed()))

	defaults := config.New()
	for _, key := range defaults.AllKeys() {
		require.Equal(t, defaults.GetString(key), v.GetString(key), key)
	}
}
