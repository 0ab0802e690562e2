package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, "/custom/config")
		assert.Equal(t, "/custom/config", paths.ConfigDir())
	})

	t.Run("falls back to xdg config home", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, "")
		assert.Equal(t, paths.AppDirName, filepath.Base(paths.ConfigDir()))
	})
}

func TestStateDir(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/custom/state")
	assert.Equal(t, "/custom/state", paths.StateDir())
}

func TestDefaultStorePath(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", paths.StoreFileName), paths.DefaultStorePath())
}

func TestConfigFilePaths(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/cfg")
	candidates := paths.ConfigFilePaths()
	assert.Equal(t, []string{"/cfg/dirprefs.toml", "/cfg/dirprefs.yaml"}, candidates)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/state")
	assert.Equal(t, filepath.Join("/state", paths.LogFileName), paths.LogFilePath())
}
