// Package lock provides advisory exclusive locks on open files so that
// cooperating editors do not modify the same tag at the same time.
package lock

import (
	"errors"
	"os"
)

// ErrLocked is returned by Acquire when another process or handle already
// holds the lock.
var ErrLocked = errors.New("file is locked")

// Lock is a held advisory lock.
type Lock struct {
	f *os.File
}

// Acquire takes a non-blocking exclusive lock on f. The lock lives until
// Release is called or f is closed.
func Acquire(f *os.File) (*Lock, error) {
	if err := lockFile(f); err != nil {
		return nil, err
	}
	return &Lock{f: f}, nil
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unlockFile(l.f)
	l.f = nil
	return err
}
