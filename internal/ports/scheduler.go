package ports

import (
	"context"
	"time"
)

// Scheduler waits between action steps
type Scheduler interface {
	// Wait blocks for d or until ctx is done
	Wait(ctx context.Context, d time.Duration) error
}
