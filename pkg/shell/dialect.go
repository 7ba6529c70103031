package shell

import (
	"strings"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/types"
)

// Dialect names
const (
	NameSh   = "sh"
	NameBash = "bash"
	NameZsh  = "zsh"
	NameFish = "fish"
)

// DefaultShellPath is used when $SHELL is unset
const DefaultShellPath = "/bin/sh"

// Dialect is everything envpath knows about one shell: the snippet it
// writes, how to find and remove that snippet, and which startup files
// hold it.
type Dialect interface {
	// Name returns the dialect name (sh, bash, zsh, fish)
	Name() string

	// Render returns the snippet that prepends path to PATH when the
	// directory exists. The result carries no trailing newline.
	Render(path string) string

	// Exists reports whether content already holds the snippet for path
	Exists(content, path string) bool

	// Strip removes every snippet for path from content. Content without
	// a snippet is returned unchanged.
	Strip(content, path string) string

	// Files returns the startup files for target, possibly none
	Files(target types.Target, dirs paths.Dirs) []string
}

var dialects = map[string]Dialect{
	NameSh:   posixDialect{},
	NameBash: bashDialect{},
	NameZsh:  zshDialect{},
	NameFish: fishDialect{},
}

// Normalize lowercases and trims a shell name
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the dialect for name. Unknown names get the POSIX sh
// dialect, which writes the portable [ -d ] && export form to ~/.profile.
func Lookup(name string) Dialect {
	if d, ok := dialects[Normalize(name)]; ok {
		return d
	}
	return dialects[NameSh]
}

// Parse is the strict form of Lookup used to validate user input
func Parse(name string) (Dialect, error) {
	if d, ok := dialects[Normalize(name)]; ok {
		return d, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (supported: %s)", name, strings.Join(Names(), ", ")).
		WithDetail("shell", name)
}

// Names returns the supported dialect names
func Names() []string {
	return []string{NameZsh, NameFish, NameBash, NameSh}
}
