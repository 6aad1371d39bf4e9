package harness

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccess fails the test unless autokey exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"autokey exited %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test if autokey exited 0
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"autokey exited 0, expected a startup error.\nStdout: %s\nStderr: %s",
		result.Stdout, result.Stderr)
}

// AssertStdoutContains checks a substring of stdout
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "Stdout: %s", result.Stdout)
}

// AssertStdoutNotContains checks stdout lacks a substring
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "Stdout: %s", result.Stdout)
}

// AssertStderrContains checks a substring of stderr, where kong and the
// startup warnings write
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Stderr: %s", result.Stderr)
}

// AssertFileExists checks that autokey created path
func AssertFileExists(tb testing.TB, path string) {
	tb.Helper()
	_, err := os.Stat(path)
	assert.NoError(tb, err, "expected %s to exist", path)
}

// AssertFileMissing checks that autokey left path alone
func AssertFileMissing(tb testing.TB, path string) {
	tb.Helper()
	_, err := os.Stat(path)
	assert.True(tb, errors.Is(err, os.ErrNotExist), "expected %s not to exist, stat error: %v", path, err)
}
