// Package rcfile applies PATH entry edits to shell startup files.
//
// A Mutator reads a startup file once through a single read/write handle,
// asks a Matcher whether the entry is there and then appends the rendered
// snippet or rewrites the file without it. Missing files are created, with
// their parent directories, only when an entry has to be added.
package rcfile
