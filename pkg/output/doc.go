// Package output renders envpath results as styled terminal text, plain
// text, JSON, YAML or XML.
package output
