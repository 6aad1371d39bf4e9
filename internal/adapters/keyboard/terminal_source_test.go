//go:build !windows

package keyboard

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/domain"
)

func collect(t *testing.T, events <-chan domain.KeyEvent, n int) []domain.KeyEvent {
	t.Helper()
	var got []domain.KeyEvent
	for len(got) < n {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d events: %v", len(got), n, got)
		}
	}
	return got
}

func TestTerminalSource_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	source := NewTerminalSource(tty)
	events := make(chan domain.KeyEvent, 32)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- source.Run(ctx, events) }()

	_, err = ptmx.Write([]byte("nnn\x1b[24~\x1b3"))
	require.NoError(t, err)

	want := chars("nnn")
	want = append(want, named("f12")...)
	want = append(want,
		domain.NamedPress(domain.KeyCmd),
		domain.CharPress('3'),
		domain.CharRelease('3'),
		domain.NamedRelease(domain.KeyCmd),
	)
	assert.Equal(t, want, collect(t, events, len(want)))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop")
	}
}

func TestTerminalSource_CtrlCInterrupts(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	source := NewTerminalSource(tty)
	events := make(chan domain.KeyEvent, 8)

	errCh := make(chan error, 1)
	go func() { errCh <- source.Run(context.Background(), events) }()

	// raw mode disables ISIG, so ^C arrives as a byte instead of a signal
	time.Sleep(50 * time.Millisecond)
	_, err = ptmx.Write([]byte{0x03})
	require.NoError(t, err)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop")
	}
}

func TestReaderSource_EOF(t *testing.T) {
	source := NewReaderSource(strings.NewReader("xx\x1b"))
	events := make(chan domain.KeyEvent, 16)

	err := source.Run(context.Background(), events)

	require.NoError(t, err)
	close(events)
	var got []domain.KeyEvent
	for ev := range events {
		got = append(got, ev)
	}
	assert.Equal(t, append(chars("xx"), named("esc")...), got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

var _ io.Reader = failingReader{}

func TestReaderSource_ReadError(t *testing.T) {
	err := NewReaderSource(failingReader{}).Run(context.Background(), make(chan domain.KeyEvent, 1))

	assert.ErrorContains(t, err, "device gone")
}
