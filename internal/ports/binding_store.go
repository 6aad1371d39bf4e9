package ports

import "github.com/renato0307/autokey/internal/domain"

// BindingStore loads the trigger to action list configuration
type BindingStore interface {
	// Load returns the bindings, creating and persisting defaults when none exist
	Load() (domain.Bindings, error)
	// Path is the location the bindings were read from, for diagnostics
	Path() string
}

// FallbackSource lists pinned applications in on-screen order
type FallbackSource interface {
	PinnedApplications() (domain.FallbackBindings, error)
}
