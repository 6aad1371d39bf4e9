package ports

import (
	"context"

	"github.com/renato0307/autokey/internal/domain"
)

// DispatchJournal records completed dispatches
type DispatchJournal interface {
	Record(ctx context.Context, report *domain.DispatchReport) error
	Recent(ctx context.Context, limit int) ([]domain.DispatchReport, error)
	Close() error
}
