package storage

import (
	"github.com/renato0307/autokey/internal/domain"
)

// reportToModel converts a domain.DispatchReport to DispatchModel (GORM)
func reportToModel(r *domain.DispatchReport) DispatchModel {
	steps := make([]DispatchStepModel, 0, len(r.Steps))
	for i, s := range r.Steps {
		steps = append(steps, DispatchStepModel{
			DispatchID: r.ID,
			Error:      s.Error,
			Kind:       string(s.Kind),
			Output:     s.Output,
			Position:   i,
			StepIndex:  s.Index,
			Undo:       s.Undo,
		})
	}

	return DispatchModel{
		Failures:    r.Failures(),
		FinishedAt:  r.FinishedAt.UTC(),
		ID:          r.ID,
		Source:      string(r.Resolution.Source),
		StartedAt:   r.StartedAt.UTC(),
		Steps:       steps,
		TriggerID:   r.Resolution.Trigger.ID,
		TriggerKind: string(r.Resolution.Trigger.Kind),
		WithUndo:    r.Resolution.WithUndo,
	}
}

// modelToReport converts a DispatchModel (GORM) to domain.DispatchReport.
// Action lists are not persisted; only the outcomes are.
func modelToReport(m DispatchModel) domain.DispatchReport {
	steps := make([]domain.StepOutcome, 0, len(m.Steps))
	for _, s := range m.Steps {
		steps = append(steps, domain.StepOutcome{
			Error:  s.Error,
			Index:  s.StepIndex,
			Kind:   domain.ActionKind(s.Kind),
			Output: s.Output,
			Undo:   s.Undo,
		})
	}

	return domain.DispatchReport{
		FinishedAt: m.FinishedAt,
		ID:         m.ID,
		Resolution: domain.Resolution{
			Source: domain.ResolutionSource(m.Source),
			Trigger: domain.Trigger{
				ID:   m.TriggerID,
				Kind: domain.TriggerKind(m.TriggerKind),
			},
			WithUndo: m.WithUndo,
		},
		StartedAt: m.StartedAt,
		Steps:     steps,
	}
}
