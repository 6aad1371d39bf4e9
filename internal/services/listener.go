package services

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/matcher"
	"github.com/renato0307/autokey/internal/ports"
)

// eventBuffer bounds how many key events queue up while a dispatch is running
const eventBuffer = 256

// Dispatcher runs the actions bound to a trigger
type Dispatcher interface {
	Dispatch(ctx context.Context, trigger domain.Trigger) (*domain.DispatchReport, error)
}

// ListenerStats counts what a listener has seen
type ListenerStats struct {
	Dispatches int64
	Events     int64
	Triggers   int64
}

// ListenerService feeds key events from a source through the matcher and
// dispatches each recognized trigger to completion before matching the next event
type ListenerService struct {
	dispatcher Dispatcher
	matcher    *matcher.Matcher
	source     ports.KeySource

	dispatches atomic.Int64
	events     atomic.Int64
	triggers   atomic.Int64
}

// NewListenerService creates a new ListenerService
func NewListenerService(source ports.KeySource, m *matcher.Matcher, dispatcher Dispatcher) *ListenerService {
	return &ListenerService{
		dispatcher: dispatcher,
		matcher:    m,
		source:     source,
	}
}

// Run blocks until ctx is cancelled (returns nil) or the key source fails
// Each run starts from an empty matcher, so keys held or typed before a
// source failure cannot complete a trigger in the next run.
func (l *ListenerService) Run(ctx context.Context) error {
	l.matcher.Reset()

	events := make(chan domain.KeyEvent, eventBuffer)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		return l.source.Run(gctx, events)
	})

	g.Go(func() error {
		for ev := range events {
			if err := l.handle(gctx, ev); err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		err = nil
	}

	stats := l.Stats()
	logging.Logger.Info("Listener stopped",
		"events", stats.Events,
		"triggers", stats.Triggers,
		"dispatches", stats.Dispatches,
		"error", err)
	return err
}

// handle matches one event and runs every trigger it completes, in order
func (l *ListenerService) handle(ctx context.Context, ev domain.KeyEvent) error {
	l.events.Add(1)
	triggers := l.matcher.Process(ev)

	for _, t := range triggers {
		l.triggers.Add(1)
		logging.Logger.Debug("Trigger recognized", "trigger", t.ID, "kind", t.Kind, "event", ev.String())

		report, err := l.dispatcher.Dispatch(ctx, t)
		if report != nil {
			l.dispatches.Add(1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Stats returns a snapshot of the counters
func (l *ListenerService) Stats() ListenerStats {
	return ListenerStats{
		Dispatches: l.dispatches.Load(),
		Events:     l.events.Load(),
		Triggers:   l.triggers.Load(),
	}
}
