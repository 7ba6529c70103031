// Package testutil provides utilities for testing envpath components.
//
// Key components:
//   - TestEnvironment: a home directory, filesystem and environment snapshot
//   - NewTestFS: afero backed in-memory filesystem
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Only filesystem backend tests need EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
