// Package harness provides utilities for integration testing the autokey CLI.
// It handles binary compilation, environment isolation, and command execution,
// including running the listener on a pseudo-terminal so keys can be typed at it.
//
// Environment variables managed:
//   - AUTOKEY_HOME: Isolated per test (temp directory)
//   - AUTOKEY_DEBUG: Disabled to reduce noise
//   - HOME: Isolated so no real Dock preferences or log directories are touched
package harness
