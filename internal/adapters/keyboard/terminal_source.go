package keyboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/ports"
)

// ErrInterrupted is returned when Ctrl-C is typed while the terminal is in raw mode
var ErrInterrupted = errors.New("interrupted")

// escTimeout is how long a lone ESC waits for the rest of a sequence
const escTimeout = 25 * time.Millisecond

// TerminalSource implements ports.KeySource by reading the controlling
// terminal in raw mode. Only keys typed into this terminal are seen.
type TerminalSource struct {
	fd int
	in io.Reader
}

// Compile-time interface verification
var _ ports.KeySource = (*TerminalSource)(nil)

// NewTerminalSource reads keys from f, switching it to raw mode when it is a terminal
func NewTerminalSource(f *os.File) *TerminalSource {
	return &TerminalSource{fd: int(f.Fd()), in: f}
}

// NewReaderSource reads keys from a plain stream, without touching terminal modes
func NewReaderSource(r io.Reader) *TerminalSource {
	return &TerminalSource{fd: -1, in: r}
}

// Run implements ports.KeySource.Run.
// Returns nil at end of input, ErrInterrupted on Ctrl-C.
func (s *TerminalSource) Run(ctx context.Context, events chan<- domain.KeyEvent) error {
	if s.fd >= 0 && term.IsTerminal(s.fd) {
		state, err := term.MakeRaw(s.fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(s.fd, state)
		logging.Logger.Info("Terminal switched to raw mode", "fd", s.fd)
	}

	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	go s.read(ctx, chunks, readErr)

	send := func(evs []domain.KeyEvent) bool {
		for _, ev := range evs {
			select {
			case events <- ev:
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	dec := NewDecoder()
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case chunk := <-chunks:
			if !send(dec.Feed(chunk)) {
				return nil
			}
			if dec.Interrupted() {
				return ErrInterrupted
			}
			flush = nil
			if dec.Pending() {
				flush = time.After(escTimeout)
			}

		case <-flush:
			flush = nil
			if !send(dec.Flush()) {
				return nil
			}

		case err := <-readErr:
			send(dec.Flush())
			if errors.Is(err, io.EOF) {
				logging.Logger.Info("Terminal input closed")
				return nil
			}
			return fmt.Errorf("failed to read terminal input: %w", err)
		}
	}
}

// read copies input into chunks until an error. A blocked read cannot be
// interrupted, so this goroutine exits on the next byte or error after ctx ends.
func (s *TerminalSource) read(ctx context.Context, chunks chan<- []byte, readErr chan<- error) {
	buf := make([]byte, 256)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			readErr <- err
			return
		}
	}
}
