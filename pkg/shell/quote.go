package shell

import (
	"regexp"
	"strings"
)

var fishSafeWord = regexp.MustCompile(`^[A-Za-z0-9_./+:@=,-]+$`)

// doubleQuoted escapes path for use inside a POSIX double-quoted string
func doubleQuoted(path string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")
	return r.Replace(path)
}

// fishQuoted returns path as a fish single-quoted string
func fishQuoted(path string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(path) + "'"
}

// fishWord returns path bare when fish would read it back unchanged,
// single-quoted otherwise
func fishWord(path string) string {
	if fishSafeWord.MatchString(path) {
		return path
	}
	return fishQuoted(path)
}
