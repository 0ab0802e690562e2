// Package paths provides centralized path handling for dirprefs.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dirprefs
	EnvConfigDir = "DIRPREFS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dirprefs
	EnvStateDir = "DIRPREFS_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for dirprefs-specific files
	AppDirName = "dirprefs"

	// StoreFileName is the name of the persisted preference file
	StoreFileName = "prefs.json"

	// ConfigFileName is the base name of the startup configuration file
	ConfigFileName = "dirprefs"

	// LogFileName is the name of the log file
	LogFileName = "dirprefs.log"
)

// ConfigDir returns the directory holding dirprefs configuration files.
// DIRPREFS_CONFIG_DIR takes precedence over the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding dirprefs state (logs).
// DIRPREFS_STATE_DIR takes precedence over the XDG state home.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// DefaultStorePath returns the default location of the persisted
// preference file. Callers may override it via the save_path
// configuration key.
func DefaultStorePath() string {
	return filepath.Join(ConfigDir(), StoreFileName)
}

// ConfigFilePaths returns the candidate startup configuration files in
// lookup order. The first one that exists wins.
func ConfigFilePaths() []string {
	dir := ConfigDir()
	return []string{
		filepath.Join(dir, ConfigFileName+".toml"),
		filepath.Join(dir, ConfigFileName+".yaml"),
	}
}

// LogFilePath returns the path to the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
