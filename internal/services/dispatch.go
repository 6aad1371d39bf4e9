package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/ports"
	"github.com/renato0307/autokey/internal/scripts"
)

// DispatchService resolves triggers to action lists and runs them through the script backend
type DispatchService struct {
	bindings  domain.Bindings
	fallback  domain.FallbackBindings
	journal   ports.DispatchJournal
	now       func() time.Time
	out       io.Writer
	runner    ports.ScriptRunner
	scheduler ports.Scheduler
}

// NewDispatchService creates a new DispatchService.
// journal may be nil when history is disabled; diagnostics are written to out.
func NewDispatchService(
	bindings domain.Bindings,
	fallback domain.FallbackBindings,
	runner ports.ScriptRunner,
	scheduler ports.Scheduler,
	journal ports.DispatchJournal,
	out io.Writer,
) *DispatchService {
	if out == nil {
		out = io.Discard
	}
	return &DispatchService{
		bindings:  bindings,
		fallback:  fallback,
		journal:   journal,
		now:       time.Now,
		out:       out,
		runner:    runner,
		scheduler: scheduler,
	}
}

// Resolve finds the action list for a trigger.
// Configured entries win; unconfigured function keys fall back to the pinned
// application at that position; everything else is ignored.
func (s *DispatchService) Resolve(trigger domain.Trigger) (domain.Resolution, bool) {
	if list, ok := s.bindings.Lookup(trigger.ID); ok {
		return domain.Resolution{
			Actions:  list,
			Source:   domain.SourceConfig,
			Trigger:  trigger,
			WithUndo: trigger.Kind == domain.TriggerTriplet,
		}, true
	}

	if trigger.IsFunctionKey() {
		n, _ := domain.FunctionKeyIndex(trigger.ID)
		if app, ok := s.fallback.At(n); ok {
			return domain.Resolution{
				Actions: domain.ActionList{domain.ActivateStep(app, "", 0)},
				Source:  domain.SourceFallback,
				Trigger: trigger,
			}, true
		}
	}

	return domain.Resolution{}, false
}

// Dispatch resolves and runs a trigger. Returns a nil report for ignored triggers.
// Step failures are reported and never stop the remaining steps; the only
// error returned is context cancellation.
func (s *DispatchService) Dispatch(ctx context.Context, trigger domain.Trigger) (*domain.DispatchReport, error) {
	res, ok := s.Resolve(trigger)
	if !ok {
		logging.Logger.Debug("Trigger not bound, ignoring", "trigger", trigger.ID, "kind", trigger.Kind)
		return nil, nil
	}

	report := &domain.DispatchReport{
		ID:         uuid.New().String(),
		Resolution: res,
		StartedAt:  s.now(),
	}
	logging.Logger.Info("Dispatching trigger",
		"dispatch_id", report.ID,
		"trigger", trigger.ID,
		"kind", trigger.Kind,
		"source", res.Source,
		"steps", len(res.Actions))

	err := s.execute(ctx, res, report)

	report.FinishedAt = s.now()
	s.record(report)

	logging.Logger.Info("Dispatch finished",
		"dispatch_id", report.ID,
		"trigger", trigger.ID,
		"failures", report.Failures(),
		"duration", report.FinishedAt.Sub(report.StartedAt))

	return report, err
}

func (s *DispatchService) execute(ctx context.Context, res domain.Resolution, report *domain.DispatchReport) error {
	if res.WithUndo {
		if err := ctx.Err(); err != nil {
			return err
		}
		outcome := s.run(ctx, res.Trigger, scripts.Undo(), 0, "")
		outcome.Undo = true
		report.Steps = append(report.Steps, outcome)
	}

	for i, step := range res.Actions {
		if err := ctx.Err(); err != nil {
			return err
		}

		script, err := scripts.ForStep(step)
		if err != nil {
			s.fail(res.Trigger, i+1, step.Kind, err, "")
			report.Steps = append(report.Steps, domain.StepOutcome{Index: i + 1, Kind: step.Kind, Error: err.Error()})
		} else {
			outcome := s.run(ctx, res.Trigger, script, i+1, step.Kind)
			if !outcome.Failed() {
				fmt.Fprintln(s.out, successMessage(step, outcome.Output))
			}
			report.Steps = append(report.Steps, outcome)
		}

		if step.Delay > 0 {
			if err := s.scheduler.Wait(ctx, step.Delay); err != nil {
				return err
			}
		}
	}
	return nil
}

// run performs one backend call and converts the result into an outcome
func (s *DispatchService) run(ctx context.Context, trigger domain.Trigger, script scripts.Script, index int, kind domain.ActionKind) domain.StepOutcome {
	result, err := s.runner.Run(ctx, script.Source, script.Args...)
	outcome := domain.StepOutcome{
		Index:  index,
		Kind:   kind,
		Output: strings.TrimSpace(result.Output),
	}
	if err != nil {
		outcome.Error = err.Error()
		s.fail(trigger, index, kind, err, outcome.Output)
		return outcome
	}

	logging.Logger.Debug("Step completed", "trigger", trigger.ID, "step", index, "kind", kind, "output", outcome.Output)
	return outcome
}

func (s *DispatchService) fail(trigger domain.Trigger, index int, kind domain.ActionKind, err error, output string) {
	label := fmt.Sprintf("step %d (%s)", index, kind)
	if index == 0 {
		label = "undo"
	}
	logging.Logger.Error("Action step failed",
		"trigger", trigger.ID,
		"step", index,
		"kind", kind,
		"error", err,
		"output", output)

	fmt.Fprintf(s.out, "Error: trigger %s %s: %v\n", trigger.ID, label, err)
	if output != "" {
		fmt.Fprintf(s.out, "Script output: %s\n", output)
	}
}

func (s *DispatchService) record(report *domain.DispatchReport) {
	if s.journal == nil {
		return
	}
	// the dispatch context may already be cancelled on shutdown; the record should still land
	if err := s.journal.Record(context.Background(), report); err != nil {
		logging.Logger.Warn("Failed to record dispatch", "error", err, "dispatch_id", report.ID)
	}
}

func successMessage(step domain.ActionStep, output string) string {
	switch step.Kind {
	case domain.ActionActivate:
		return strings.TrimSpace(fmt.Sprintf("Activated %s %s", step.Activate.Application, step.Activate.Window))
	case domain.ActionTerminal:
		return fmt.Sprintf("Executed iTerm command: %s in window: %s", step.Terminal.Command, step.Terminal.Window)
	case domain.ActionBrowserTab:
		if output != "" {
			return output
		}
		return "Chrome tab ready: " + step.BrowserTab.URLFragment
	}
	return "Done"
}

// SleepScheduler waits with a timer, returning early when the context is cancelled
type SleepScheduler struct{}

// Compile-time interface verification
var _ ports.Scheduler = SleepScheduler{}

// Wait implements ports.Scheduler.Wait
func (SleepScheduler) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
