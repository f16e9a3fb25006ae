package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key, e.g. per session ID
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Remove forgets the lock for key. Callers holding it are unaffected.
func (lm *LockManager) Remove(key string) {
	lm.locks.Delete(key)
}
