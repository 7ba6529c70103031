// Package shell knows the shells envpath can configure.
//
// Each shell is a Dialect: it renders the PATH snippet, finds and removes
// it in a startup file and names the startup files for a target. sh, bash,
// zsh and fish are supported. Any other shell is treated as sh.
//
// Detect decides which dialect a run uses, from an explicit name, the
// passwd entry of an overridden home directory, or $SHELL.
package shell
