// Package types holds the small value types shared across envpath:
// the filesystem abstraction, target and state enums, and the
// environment snapshot handed to the core.
package types
