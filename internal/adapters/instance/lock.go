package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/filelock"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/paths"
)

// Lock is a held single-instance lock. The lock file records the owner's PID.
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the lock at $AUTOKEY_HOME/autokey.lock
func Acquire() (*Lock, error) {
	return AcquireAt(paths.GetLockPath())
}

// AcquireAt takes the lock at path without blocking.
// Returns an error wrapping domain.ErrAlreadyRunning when another process holds it.
func AcquireAt(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := filelock.TryLock(f); err != nil {
		f.Close()
		if errors.Is(err, filelock.ErrLocked) {
			if pid := readPID(path); pid > 0 {
				return nil, fmt.Errorf("%w (pid %d)", domain.ErrAlreadyRunning, pid)
			}
			return nil, domain.ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if err := f.Truncate(0); err == nil {
		f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path, "pid", os.Getpid())
	return &Lock{file: f, path: path}, nil
}

// Release unlocks and closes the lock file. The file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	l.file.Truncate(0)
	if err := filelock.Unlock(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return l.file.Close()
}

func readPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
