//go:build !windows

package harness

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// PTYSession is an autokey process whose stdin and stdout are a pseudo-terminal
type PTYSession struct {
	cmd      *exec.Cmd
	done     chan struct{}
	exitCode int
	mu       sync.Mutex
	out      bytes.Buffer
	ptmx     *os.File
	tb       testing.TB
}

// StartInPTY launches the binary on a new pseudo-terminal.
// The process is killed on test cleanup if still running.
func StartInPTY(tb testing.TB, env *TestEnvironment, args ...string) *PTYSession {
	tb.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = env.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		tb.Fatalf("Failed to start in pty: %v", err)
	}

	s := &PTYSession{
		cmd:  cmd,
		done: make(chan struct{}),
		ptmx: ptmx,
		tb:   tb,
	}

	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	go func() {
		err := cmd.Wait()
		s.exitCode = 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			s.exitCode = exitErr.ExitCode()
		} else if err != nil {
			s.exitCode = -1
		}
		close(s.done)
	}()

	tb.Cleanup(func() {
		select {
		case <-s.done:
		default:
			cmd.Process.Kill()
			<-s.done
		}
		ptmx.Close()
	})

	return s
}

// Type writes keys to the terminal as if typed
func (s *PTYSession) Type(keys string) {
	s.tb.Helper()
	if _, err := io.WriteString(s.ptmx, keys); err != nil {
		s.tb.Fatalf("Failed to type %q: %v", keys, err)
	}
}

// Interrupt types Ctrl-C, which the listener reads as a key in raw mode
func (s *PTYSession) Interrupt() {
	s.Type("\x03")
}

// Output returns everything the process has written so far
func (s *PTYSession) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// WaitForOutput polls until the output contains expected or timeout elapses
func (s *PTYSession) WaitForOutput(expected string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.Output(), expected) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// Wait blocks until the process exits and returns its exit code, or -1 on timeout
func (s *PTYSession) Wait(timeout time.Duration) int {
	select {
	case <-s.done:
		return s.exitCode
	case <-time.After(timeout):
		return -1
	}
}
