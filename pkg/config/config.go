package config

import (
	"fmt"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/shell"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

// Formats lists the accepted output formats
var Formats = []string{FormatAuto, FormatText, FormatJSON, FormatYAML, FormatXML}

// Config is the effective envpath configuration
type Config struct {
	Defaults Defaults `koanf:"defaults"`
	Output   Output   `koanf:"output"`
	Release  Release  `koanf:"release"`
	System   System   `koanf:"system"`

	// raw is the merged key tree, kept for dumping
	raw map[string]interface{}
}

// Defaults holds values used when the matching flag is not given
type Defaults struct {
	Target string `koanf:"target"`
	State  string `koanf:"state"`
	Shell  string `koanf:"shell"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format"`
}

// Release holds GitHub release lookup settings
type Release struct {
	APIURL   string        `koanf:"api_url"`
	TokenEnv string        `koanf:"token_env"`
	Timeout  time.Duration `koanf:"timeout"`
}

// System holds host specific locations
type System struct {
	PasswdFile string `koanf:"passwd_file"`
}

// Validate checks values that the rest of envpath would otherwise reject
// much later
func (c *Config) Validate() error {
	if _, err := types.ParseTarget(c.Defaults.Target); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid defaults.target")
	}
	if _, err := types.ParseState(c.Defaults.State); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid defaults.state")
	}
	if c.Defaults.Shell != "" {
		if _, err := shell.Parse(c.Defaults.Shell); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "invalid defaults.shell")
		}
	}
	if !validFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigParse, "invalid output.format %q (valid: %v)", c.Output.Format, Formats)
	}
	if c.Release.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigParse, "release.timeout must be positive, got %s", c.Release.Timeout)
	}
	return nil
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	raw := c.raw
	if raw == nil {
		raw = c.toMap()
	}
	data, err := toml.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

func (c *Config) toMap() map[string]interface{} {
	return map[string]interface{}{
		"defaults": map[string]interface{}{
			"target": c.Defaults.Target,
			"state":  c.Defaults.State,
			"shell":  c.Defaults.Shell,
		},
		"output": map[string]interface{}{
			"format": c.Output.Format,
		},
		"release": map[string]interface{}{
			"api_url":   c.Release.APIURL,
			"token_env": c.Release.TokenEnv,
			"timeout":   c.Release.Timeout.String(),
		},
		"system": map[string]interface{}{
			"passwd_file": c.System.PasswdFile,
		},
	}
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer for debug logging
func (c *Config) String() string {
	return fmt.Sprintf("target=%s state=%s shell=%q format=%s", c.Defaults.Target, c.Defaults.State, c.Defaults.Shell, c.Output.Format)
}
