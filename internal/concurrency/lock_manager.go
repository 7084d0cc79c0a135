package concurrency

import (
	"sync"
)

// ActionLocks tracks exclusive actions held by actors. A key is either free or
// held by exactly one caller; a second Begin on a held key fails until End.
type ActionLocks struct {
	held sync.Map
}

// NewActionLocks creates a new ActionLocks
func NewActionLocks() *ActionLocks {
	return &ActionLocks{}
}

// Begin claims key. It reports false when the key is already held.
func (l *ActionLocks) Begin(key string) bool {
	_, loaded := l.held.LoadOrStore(key, struct{}{})
	return !loaded
}

// End releases key. Releasing a free key is a no-op.
func (l *ActionLocks) End(key string) {
	l.held.Delete(key)
}

// Held reports whether key is currently claimed
func (l *ActionLocks) Held(key string) bool {
	_, ok := l.held.Load(key)
	return ok
}
