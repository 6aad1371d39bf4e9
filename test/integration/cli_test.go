package integration_test

import (
	"testing"

	"github.com/renato0307/autokey/test/integration/harness"
)

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "autokey dev")
}

func TestHelp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--help")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "--config")
	harness.AssertStdoutContains(t, result, "--chord-repeat")
	harness.AssertStdoutContains(t, result, "--source")
}

func TestInvalidConfigExitsWithError(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := env.WriteConfig(`{"aaa": [{"activate_command": "Mail", "url": "github.com"}]}`)

	result := harness.RunCommand(t, env, "--config", path, "--source", "terminal")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, `trigger "aaa" step 1`)
}

func TestUnknownSourceRejected(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--source", "bluetooth")

	harness.AssertFailure(t, result)
}

func TestShowHistoryEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--show-history", "5")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Last 5 dispatches:")
	harness.AssertStdoutContains(t, result, "(none)")
	harness.AssertStdoutNotContains(t, result, "Listening for triggers")
	harness.AssertFileMissing(t, env.DBPath())
}
