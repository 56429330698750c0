package configtest

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/11090815/telcrypt/config"
	"github.com/11090815/telcrypt/errors"
)

// GetDevConfigDir 返回项目根目录下 sampleconfig 目录的路径。
func GetDevConfigDir() string {
	path, err := gomodDevConfigDir()
	if err != nil {
		path, err = walkUpDevConfigDir()
		if err != nil {
			panic(err)
		}
	}
	return path
}

// SetDevConfigPath 在测试期间把 TELCRYPT_CFG_PATH 指向 sampleconfig。
func SetDevConfigPath(t *testing.T) {
	t.Helper()
	t.Setenv(config.PathEnv, GetDevConfigDir())
}

/* ------------------------------------------------------------------------------------------ */

func gomodDevConfigDir() (string, error) {
	buf := bytes.NewBuffer(nil)
	cmd := exec.Command("go", "env", "GOMOD")
	cmd.Stdout = buf
	if err := cmd.Run(); err != nil {
		return "", err
	}

	modFile := strings.TrimSpace(buf.String())
	if modFile == "" || modFile == os.DevNull {
		return "", errors.NewError("not a module or not in module mode")
	}

	devPath := filepath.Join(filepath.Dir(modFile), "sampleconfig")
	if !dirExists(devPath) {
		return "", errors.NewErrorf("%s does not exist", devPath)
	}

	return devPath, nil
}

// walkUpDevConfigDir 从当前目录开始逐级向上查找 go.mod 旁边的 sampleconfig。
func walkUpDevConfigDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.NewErrorf("failed getting working directory, the error is \"%s\"", err.Error())
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			devPath := filepath.Join(dir, "sampleconfig")
			if dirExists(devPath) {
				return devPath, nil
			}
			return "", errors.NewErrorf("%s does not exist", devPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.NewError("failed finding sampleconfig directory, no go.mod found")
		}
		dir = parent
	}
}

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.IsDir()
}
