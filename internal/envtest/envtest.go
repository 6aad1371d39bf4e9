// Package envtest keeps the xyproto/env cache in step with t.Setenv.
package envtest

import (
	"testing"

	"github.com/xyproto/env/v2"
)

// Setenv sets key for the duration of the test and reloads the env cache,
// both now and after t.Setenv restores the previous value.
func Setenv(tb testing.TB, key, value string) {
	tb.Helper()
	// registered first so it runs after the restore
	tb.Cleanup(env.Load)
	tb.Setenv(key, value)
	env.Load()
}
