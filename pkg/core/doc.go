// Package core implements envpath's operations.
//
// EnsurePath is the main one: it resolves the shell dialect (explicit,
// from the passwd entry of an overridden home, or from $SHELL), the base
// directories and the startup files for the requested target, then lets
// an rcfile.Mutator bring every file to the requested state.
//
// Status, Snippet and Files run the same resolution without writing:
// they report presence per file, render the snippet and list the files.
//
// All operations take an explicit types.Env snapshot and a types.FS so
// they never read process state directly.
package core
