package configtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkUpDevConfigDir(t *testing.T) {
	devPath, err := walkUpDevConfigDir()
	require.NoError(t, err)
	require.Equal(t, "sampleconfig", filepath.Base(devPath))
	require.FileExists(t, filepath.Join(devPath, "core.yaml"))
}

func TestGetDevConfigDir(t *testing.T) {
	require.FileExists(t, filepath.Join(GetDevConfigDir(), "core.yaml"))
}
