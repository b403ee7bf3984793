package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const optionsFileName = "config.yaml"

func Dir() string {
	if override := os.Getenv("UVI_CONFIG_DIR"); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".uvi"
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "uvi")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "uvi")
	default:
		return filepath.Join(home, ".config", "uvi")
	}
}

// OptionsPath returns the user config file holding default option values.
func OptionsPath() string {
	if override := os.Getenv("UVI_CONFIG"); override != "" {
		return override
	}
	return filepath.Join(Dir(), optionsFileName)
}
