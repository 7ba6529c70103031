package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Dirs is the resolved set of base directories startup files live under.
// It is computed once per invocation and not modified afterwards.
type Dirs struct {
	Home          string
	ZDotDir       string
	XDGConfigHome string
}

// Overrides are explicitly requested base directories. Empty fields are unset.
type Overrides struct {
	Home          string
	XDGConfigHome string
	ZDotDir       string
}

// ResolveDirs computes the base directories for an invocation.
//
// ZDotDir resolves override -> $ZDOTDIR -> home and XDGConfigHome resolves
// override -> $XDG_CONFIG_HOME -> home/.config. When a home override is given
// the environment is ignored for both lookups, so a caller managing another
// user's home never picks up the invoking user's ZDOTDIR.
func ResolveDirs(o Overrides, env types.Env) (Dirs, error) {
	home := strings.TrimSpace(o.Home)
	if home == "" {
		home = env.Home
	} else {
		env = types.Env{}
	}
	if home == "" {
		return Dirs{}, errors.New(errors.ErrInvalidInput,
			"unable to determine home directory: no home override given and HOME is not set")
	}

	zdotdir := firstNonEmpty(o.ZDotDir, env.ZDotDir, home)
	xdgConfig := firstNonEmpty(o.XDGConfigHome, env.XDGConfigHome, filepath.Join(home, ".config"))

	return Dirs{
		Home:          home,
		ZDotDir:       zdotdir,
		XDGConfigHome: xdgConfig,
	}, nil
}

// ExpandHome expands a leading ~ against home
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
