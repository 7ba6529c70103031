package shell

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/types"
)

// posixDialect covers sh and any shell envpath does not know about
type posixDialect struct{}

func (posixDialect) Name() string { return NameSh }

func (posixDialect) Render(path string) string {
	q := doubleQuoted(path)
	return fmt.Sprintf(`[ -d "%s" ] && export PATH="%s:$PATH"`, q, q)
}

func (d posixDialect) Exists(content, path string) bool {
	return d.pattern(path).MatchString(content)
}

func (d posixDialect) Strip(content, path string) string {
	return stripMatches(content, d.pattern(path))
}

func (posixDialect) Files(target types.Target, dirs paths.Dirs) []string {
	if target == types.TargetProfile {
		return []string{filepath.Join(dirs.Home, ".profile")}
	}
	return nil
}

// [ -d "P" ] && export PATH="P:$PATH"
func (posixDialect) pattern(path string) *regexp.Regexp {
	q := regexp.QuoteMeta(doubleQuoted(path))
	raw := regexp.QuoteMeta(path)
	return regexp.MustCompile(
		`\[` + hws + `-d` + hws + pathAlternatives(path) + ows + `\]` + ows + `&&` + ows +
			`export` + hws + `PATH=(?:"` + q + `:\$PATH"|` + raw + `:\$PATH)`)
}

// bashDialect writes the POSIX snippet to bash's own startup files
type bashDialect struct {
	posixDialect
}

func (bashDialect) Name() string { return NameBash }

func (bashDialect) Files(target types.Target, dirs paths.Dirs) []string {
	if target == types.TargetRC {
		return []string{filepath.Join(dirs.Home, ".bashrc")}
	}
	return []string{filepath.Join(dirs.Home, ".bash_profile")}
}
