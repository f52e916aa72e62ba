// Package runlock serializes runs against a target directory.
//
// The pipeline assumes exclusive control of the directory it mutates; two
// interleaved invocations could race each other's renames. A flock-backed
// lock file inside the target directory makes that assumption explicit: the
// second invocation fails fast instead of corrupting the first one's plan.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileName is the reserved lock file name inside the target directory.
const FileName = ".subrename.lock"

// ErrHeld reports that another subrename run owns the directory.
var ErrHeld = errors.New("another subrename run is active in this directory")

// Lock is an acquired directory lock. Release it with Unlock.
type Lock struct {
	lock *flock.Flock
	path string
}

// Acquire takes the run lock for root without blocking.
func Acquire(root string) (*Lock, error) {
	path := filepath.Join(root, FileName)
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHeld, root)
	}
	return &Lock{lock: lock, path: path}, nil
}

// Unlock releases the lock and removes the lock file on a best-effort basis.
func (l *Lock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	err := l.lock.Unlock()
	_ = os.Remove(l.path)
	return err
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}
