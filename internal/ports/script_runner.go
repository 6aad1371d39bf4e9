package ports

import "context"

// ScriptResult holds what an automation script printed
type ScriptResult struct {
	Output string
}

// ScriptRunner executes generated automation scripts (the action backend)
type ScriptRunner interface {
	// Run executes script with optional positional arguments.
	// A non-nil error means the action failed; Output may still carry diagnostics.
	Run(ctx context.Context, script string, args ...string) (ScriptResult, error)
}
