// Package filelock provides advisory whole-file locks used for the bindings
// file and the single-instance guard.
package filelock

import (
	"errors"
	"os"
)

// ErrLocked is returned by TryLock when another process holds the lock
var ErrLocked = errors.New("file is locked by another process")

// Lock acquires an exclusive lock on the file, blocking until available
func Lock(file *os.File) error {
	return lockFile(file, true)
}

// TryLock acquires an exclusive lock without blocking
func TryLock(file *os.File) error {
	return lockFile(file, false)
}

// Unlock releases a lock taken with Lock or TryLock
func Unlock(file *os.File) error {
	return unlockFile(file)
}
