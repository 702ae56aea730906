// Package paths resolves the configuration and chart output directories
// used by the mecanica CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config root.
const appDirName = "mecanica"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MECANICA_CONFIG_DIR"
	EnvPlotDir   = "MECANICA_PLOT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/mecanica (fallback ~/.config/mecanica)
// macOS:   ~/Library/Application Support/mecanica
// Windows: %APPDATA%/mecanica
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > MECANICA_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolvePlotDir returns the chart output directory following the
// precedence chain: flag > configYAMLValue > MECANICA_PLOT_DIR env.
//
// Charts are optional, so an empty result with a nil error means none
// should be written.
func ResolvePlotDir(flag, configYAMLValue string) (string, error) {
	for _, dir := range []string{flag, configYAMLValue, os.Getenv(EnvPlotDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return "", nil
}
