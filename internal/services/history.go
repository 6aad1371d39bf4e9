package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/ports"
	"github.com/renato0307/autokey/internal/theme"
)

// HistoryService reads back the dispatch journal
type HistoryService struct {
	journal ports.DispatchJournal
}

// NewHistoryService creates a new HistoryService. A nil journal renders as empty.
func NewHistoryService(journal ports.DispatchJournal) *HistoryService {
	return &HistoryService{journal: journal}
}

// Render writes the last limit dispatches to w, newest first
func (h *HistoryService) Render(ctx context.Context, w io.Writer, limit int) error {
	var reports []domain.DispatchReport
	if h.journal != nil {
		var err error
		if reports, err = h.journal.Recent(ctx, limit); err != nil {
			return err
		}
	}

	styles := theme.NewStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(styles.Section.Render(fmt.Sprintf("Last %d dispatches:", limit)) + "\n")
	b.WriteString(styles.Rule.Render(strings.Repeat("-", theme.SheetWidth)) + "\n")

	if len(reports) == 0 {
		b.WriteString(styles.Empty.Render("(none)") + "\n")
	}
	for _, r := range reports {
		b.WriteString(historyLine(styles, r) + "\n")
		for _, s := range r.Steps {
			if s.Failed() {
				b.WriteString(styles.Error.Render(fmt.Sprintf("    %s: %s", stepLabel(s), s.Error)) + "\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func historyLine(styles theme.Styles, r domain.DispatchReport) string {
	status := "ok"
	if n := r.Failures(); n > 0 {
		status = fmt.Sprintf("%d failed", n)
	}
	return fmt.Sprintf("%s %s %s %s",
		styles.Version.Render(r.StartedAt.Local().Format(time.DateTime)),
		styles.Triplet.Render(fmt.Sprintf("%-10s", r.Resolution.Trigger.ID)),
		styles.Desc.Render(fmt.Sprintf("%-8s %d steps in %s", r.Resolution.Source, len(r.Steps), r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))),
		status)
}

func stepLabel(s domain.StepOutcome) string {
	if s.Undo {
		return "undo"
	}
	return fmt.Sprintf("step %d (%s)", s.Index, s.Kind)
}
