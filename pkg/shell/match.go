package shell

import (
	"regexp"
	"strings"
)

// Regex fragments shared by the dialect patterns. Single-line snippets only
// allow horizontal whitespace so a match never spans lines.
const (
	hws = `[ \t]+`
	ows = `[ \t]*`
	nl  = `\r?\n`
)

// pathAlternatives matches path either double-quoted (escaped the way
// Render writes it) or bare
func pathAlternatives(path string) string {
	return `(?:"` + regexp.QuoteMeta(doubleQuoted(path)) + `"|` + regexp.QuoteMeta(path) + `)`
}

// stripMatches removes every match of re from content. A match that is
// alone on its line(s) takes the whole line with it. When the removed lines
// sat between blank lines, the blank run that follows is dropped so at most
// one blank line remains. The result has leading blank lines and trailing
// whitespace trimmed and ends in exactly one newline.
func stripMatches(content string, re *regexp.Regexp) string {
	locs := re.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end, whole := lineBounds(content, loc[0], loc[1])
		if start < last {
			start = last
		}
		b.WriteString(content[last:start])
		last = end
		if whole && endsWithBlankLine(b.String()) {
			last = skipBlankLines(content, last)
		}
	}
	b.WriteString(content[last:])

	return finish(b.String())
}

// lineBounds widens [start, end) to cover full lines, including the
// trailing newline, when only whitespace surrounds the match on them. The
// flag reports whether the range was widened.
func lineBounds(content string, start, end int) (int, int, bool) {
	ls := start
	for ls > 0 && isHorizontalSpace(content[ls-1]) {
		ls--
	}
	le := end
	for le < len(content) && (isHorizontalSpace(content[le]) || content[le] == '\r') {
		le++
	}

	atLineStart := ls == 0 || content[ls-1] == '\n'
	atLineEnd := le == len(content) || content[le] == '\n'
	if !atLineStart || !atLineEnd {
		return start, end, false
	}
	if le < len(content) {
		le++
	}
	return ls, le, true
}

// endsWithBlankLine reports whether s is empty or its last complete line
// holds only whitespace
func endsWithBlankLine(s string) bool {
	if s == "" {
		return true
	}
	prev := strings.TrimSuffix(s, "\n")
	line := prev[strings.LastIndexByte(prev, '\n')+1:]
	return strings.TrimSpace(line) == ""
}

// skipBlankLines returns the offset of the first line at or after i that
// holds anything but whitespace
func skipBlankLines(content string, i int) int {
	for {
		j := i
		for j < len(content) && (isHorizontalSpace(content[j]) || content[j] == '\r') {
			j++
		}
		if j >= len(content) || content[j] != '\n' {
			return i
		}
		i = j + 1
	}
}

func isHorizontalSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// finish normalizes content after a removal
func finish(content string) string {
	content = content[skipBlankLines(content, 0):]
	content = strings.TrimRight(content, " \t\r\n")
	return content + "\n"
}
