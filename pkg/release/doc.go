// Package release looks up the latest release tag of a GitHub repository.
package release
