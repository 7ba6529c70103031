package shell

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/types"
)

// fishDialect writes a three line if block. fish reads a single
// config.fish for login and interactive shells alike.
type fishDialect struct{}

func (fishDialect) Name() string { return NameFish }

func (fishDialect) Render(path string) string {
	w := fishWord(path)
	return fmt.Sprintf("if test -d %s\n  set -gx PATH %s $PATH\nend", w, w)
}

func (d fishDialect) Exists(content, path string) bool {
	return d.pattern(path).MatchString(content)
}

func (d fishDialect) Strip(content, path string) string {
	return stripMatches(content, d.pattern(path))
}

func (fishDialect) Files(_ types.Target, dirs paths.Dirs) []string {
	return []string{filepath.Join(dirs.XDGConfigHome, "fish", "config.fish")}
}

// if test -d P; set -gx PATH P $PATH; end, one statement per line
func (fishDialect) pattern(path string) *regexp.Regexp {
	alts := []string{
		regexp.QuoteMeta(path),
		regexp.QuoteMeta(fishQuoted(path)),
		`"` + regexp.QuoteMeta(path) + `"`,
	}
	alt := `(?:` + strings.Join(alts, "|") + `)`
	return regexp.MustCompile(
		`if` + hws + `test` + hws + `-d` + hws + alt + ows + nl +
			ows + `set` + hws + `-gx` + hws + `PATH` + hws + alt + hws + `\$PATH` + ows + nl +
			ows + `end\b`)
}
