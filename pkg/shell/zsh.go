package shell

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/types"
)

type zshDialect struct{}

func (zshDialect) Name() string { return NameZsh }

func (zshDialect) Render(path string) string {
	q := doubleQuoted(path)
	return fmt.Sprintf(`[[ -d "%s" ]] && path+=("%s")`, q, q)
}

func (d zshDialect) Exists(content, path string) bool {
	return d.pattern(path).MatchString(content)
}

func (d zshDialect) Strip(content, path string) string {
	return stripMatches(content, d.pattern(path))
}

func (zshDialect) Files(target types.Target, dirs paths.Dirs) []string {
	if target == types.TargetRC {
		return []string{filepath.Join(dirs.ZDotDir, ".zshrc")}
	}
	return []string{filepath.Join(dirs.ZDotDir, ".zprofile")}
}

// [[ -d "P" ]] && path+=("P")
func (zshDialect) pattern(path string) *regexp.Regexp {
	alt := pathAlternatives(path)
	return regexp.MustCompile(
		`\[\[` + hws + `-d` + hws + alt + ows + `\]\]` + ows + `&&` + ows +
			`path\+=\(` + ows + alt + ows + `\)`)
}
