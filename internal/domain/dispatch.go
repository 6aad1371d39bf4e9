package domain

import "time"

// ResolutionSource records where a trigger's action list came from
type ResolutionSource string

const (
	SourceConfig   ResolutionSource = "config"
	SourceFallback ResolutionSource = "fallback"
)

// Resolution is a trigger resolved to the steps the dispatcher will run
type Resolution struct {
	Actions  ActionList
	Source   ResolutionSource
	Trigger  Trigger
	WithUndo bool // triplets undo their literal input before the first step
}

// StepOutcome is the result of one backend call during a dispatch
type StepOutcome struct {
	Error  string
	Index  int // 1-based position in the action list, 0 for the undo pre-step
	Kind   ActionKind
	Output string
	Undo   bool
}

// Failed reports whether the backend call failed
func (o StepOutcome) Failed() bool {
	return o.Error != ""
}

// DispatchReport summarizes one dispatch
type DispatchReport struct {
	FinishedAt time.Time
	ID         string
	Resolution Resolution
	StartedAt  time.Time
	Steps      []StepOutcome
}

// Failures counts failed backend calls
func (r *DispatchReport) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}
