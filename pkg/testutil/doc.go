// Package testutil provides isolated environments for tests that touch
// the config directory, rule files or the log file.
//
// Usage guidelines:
//   - Build one Environment per test with NewEnvironment; it points every
//     XDG variable and LINKROUTER_CONFIG_DIR at temp directories
//   - Define rule files inline with WriteRules, not in testdata
package testutil
