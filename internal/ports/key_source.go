package ports

import (
	"context"

	"github.com/renato0307/autokey/internal/domain"
)

// KeySource delivers raw key events from the host
type KeySource interface {
	// Run captures events and sends them on events until ctx is cancelled
	// (returns nil) or capture fails (returns the error). Sends must not
	// block past cancellation of ctx.
	Run(ctx context.Context, events chan<- domain.KeyEvent) error
}
