package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// UserConfigPath is $XDG_CONFIG_HOME/lollywiz/config.toml
func UserConfigPath() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "lollywiz", "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, "lollywiz", "config.toml")
}

// DefaultLibraryDir is $XDG_DATA_HOME/lollywiz/templates
func DefaultLibraryDir() string {
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		return filepath.Join(home, "lollywiz", "templates")
	}
	return filepath.Join(xdg.DataHome, "lollywiz", "templates")
}
