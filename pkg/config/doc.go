// Package config handles configuration management for envpath.
// It merges the embedded defaults, the user's TOML file, ENVPATH_
// environment variables and command line overrides with koanf.
package config
