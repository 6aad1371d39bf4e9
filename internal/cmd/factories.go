package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	adapterdock "github.com/renato0307/autokey/internal/adapters/dock"
	"github.com/renato0307/autokey/internal/adapters/instance"
	"github.com/renato0307/autokey/internal/adapters/keyboard"
	"github.com/renato0307/autokey/internal/adapters/osascript"
	adapterstorage "github.com/renato0307/autokey/internal/adapters/storage"
	"github.com/renato0307/autokey/internal/config"
	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/matcher"
	"github.com/renato0307/autokey/internal/paths"
	"github.com/renato0307/autokey/internal/ports"
	"github.com/renato0307/autokey/internal/services"
)

// ContainerOptions selects the adapters NewContainer wires
type ContainerOptions struct {
	ChordPolicy matcher.ChordPolicy
	ConfigPath  string
	DryRun      bool
	History     bool
	Out         io.Writer
	Source      string
}

// Container holds all dependencies for the application
type Container struct {
	// Loaded state
	Bindings domain.Bindings
	Fallback domain.FallbackBindings

	// Services
	CheatSheet      *services.CheatSheet
	DispatchService *services.DispatchService
	HistoryService  *services.HistoryService
	ListenerService *services.ListenerService

	// Internal - for cleanup only
	journal ports.DispatchJournal
	lock    *instance.Lock
}

// adapters are the ports a container is assembled from
type adapters struct {
	fallback ports.FallbackSource
	journal  ports.DispatchJournal
	runner   ports.ScriptRunner
	source   ports.KeySource
	store    ports.BindingStore
}

// NewContainer creates a new Container with all dependencies wired.
// It holds the single-instance lock until Close.
func NewContainer(opts ContainerOptions) (*Container, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	lock, err := instance.Acquire()
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRunning) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to acquire instance lock: %w", err)
	}

	deps := adapters{
		fallback: adapterdock.NewReader(),
		store:    config.NewFileStore(paths.ResolveConfigPath(opts.ConfigPath)),
	}

	if opts.DryRun {
		deps.runner = osascript.NewDryRunner(opts.Out)
	} else {
		deps.runner = osascript.NewRunner()
	}

	switch opts.Source {
	case config.SourceTerminal:
		deps.source = keyboard.NewTerminalSource(os.Stdin)
	default:
		deps.source = keyboard.NewHookSource()
	}

	if opts.History {
		journal, err := adapterstorage.NewSQLiteJournalForHome()
		if err != nil {
			lock.Release()
			return nil, fmt.Errorf("failed to open dispatch history: %w", err)
		}
		deps.journal = journal
	}

	container, err := buildContainer(opts, deps, os.Stderr)
	if err != nil {
		if deps.journal != nil {
			deps.journal.Close()
		}
		lock.Release()
		return nil, err
	}
	container.lock = lock
	return container, nil
}

// NewHistoryContainer wires only what reading the journal needs.
// A journal that was never written is not created.
func NewHistoryContainer() (*Container, error) {
	dbPath := paths.GetHistoryDBPath()
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		logging.Logger.Debug("No dispatch history yet", "path", dbPath)
		return &Container{HistoryService: services.NewHistoryService(nil)}, nil
	}

	journal, err := adapterstorage.NewSQLiteJournalForHome()
	if err != nil {
		return nil, err
	}
	return &Container{
		HistoryService: services.NewHistoryService(journal),
		journal:        journal,
	}, nil
}

// buildContainer loads bindings and fallback and assembles the services.
// Fallback errors are reported to diag and leave an empty fallback list.
func buildContainer(opts ContainerOptions, deps adapters, diag io.Writer) (*Container, error) {
	bindings, err := deps.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load bindings from %s: %w", deps.store.Path(), err)
	}
	logging.Logger.Info("Bindings loaded", "path", deps.store.Path(), "triggers", len(bindings))

	fallback, err := deps.fallback.PinnedApplications()
	if err != nil {
		logging.Logger.Warn("Dock fallback unavailable", "error", err)
		fmt.Fprintf(diag, "Warning: could not read Dock applications, function keys use config only: %v\n", err)
		fallback = domain.FallbackBindings{}
	}

	journal := deps.journal
	dispatcher := services.NewDispatchService(bindings, fallback, deps.runner, services.SleepScheduler{}, journal, opts.Out)
	listener := services.NewListenerService(deps.source, matcher.New(opts.ChordPolicy), dispatcher)

	c := &Container{
		Bindings:        bindings,
		CheatSheet:      services.NewCheatSheet(bindings, fallback),
		DispatchService: dispatcher,
		Fallback:        fallback,
		ListenerService: listener,
		journal:         journal,
	}
	if journal != nil {
		c.HistoryService = services.NewHistoryService(journal)
	}
	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.journal != nil {
		errs = append(errs, c.journal.Close())
	}
	if c.lock != nil {
		errs = append(errs, c.lock.Release())
	}
	return errors.Join(errs...)
}
