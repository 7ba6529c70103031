package shell

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Field positions in a passwd(5) entry
const (
	passwdHomeField  = 5
	passwdShellField = 6
)

// Detect picks the dialect for a run. An explicit shell always wins. With a
// home override the login shell of the account owning that home is read
// from the passwd file, since the caller's $SHELL says nothing about that
// account. Otherwise $SHELL is used. Unknown shells map to sh.
func Detect(explicit, homeOverride string, env types.Env, fsys types.FS) Dialect {
	return Lookup(DetectName(explicit, homeOverride, env, fsys))
}

// DetectName returns the normalized shell name Detect resolves, before it
// is mapped to a dialect
func DetectName(explicit, homeOverride string, env types.Env, fsys types.FS) string {
	logger := logging.GetLogger("shell.detect")

	if name := Normalize(explicit); name != "" {
		logger.Debug().Str("shell", name).Msg("Using explicit shell")
		return name
	}

	if homeOverride != "" {
		name := Normalize(LoginShellForHome(fsys, env.Passwd(), homeOverride))
		logger.Debug().
			Str("home", homeOverride).
			Str("shell", name).
			Msg("Resolved shell from passwd")
		return name
	}

	shellPath := env.Shell
	if shellPath == "" {
		shellPath = DefaultShellPath
	}
	name := Normalize(filepath.Base(shellPath))
	logger.Debug().Str("SHELL", shellPath).Str("shell", name).Msg("Resolved shell from environment")
	return name
}

// LoginShellForHome scans a passwd file for the first account whose home
// directory is home and returns the base name of its login shell. Any
// failure (unreadable file, no matching entry, empty shell field) yields sh.
func LoginShellForHome(fsys types.FS, passwdFile, home string) string {
	logger := logging.GetLogger("shell.detect")

	data, err := fsys.ReadFile(passwdFile)
	if err != nil {
		logger.Debug().Err(err).Str("file", passwdFile).Msg("Cannot read passwd file")
		return NameSh
	}

	want := filepath.Clean(home)
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) <= passwdShellField {
			continue
		}
		if filepath.Clean(fields[passwdHomeField]) != want {
			continue
		}
		if fields[passwdShellField] == "" {
			return NameSh
		}
		return filepath.Base(fields[passwdShellField])
	}

	logger.Debug().Str("home", home).Msg("No passwd entry for home")
	return NameSh
}
