// Package paths resolves the base directories shell startup files live in
// (home, ZDOTDIR, XDG config home) and envpath's own XDG locations.
package paths
