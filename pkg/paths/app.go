package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name envpath uses under XDG base dirs
	AppDirName = "envpath"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// EnvConfigFile overrides the user configuration file location
	EnvConfigFile = "ENVPATH_CONFIG"
)

// ConfigFilePath returns the user configuration file location.
// ENVPATH_CONFIG wins, then $XDG_CONFIG_HOME/envpath/config.toml.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, AppDirName, ConfigFileName)
}
