package concurrency

import (
	"sync"
)

// Lock key prefixes
const (
	actorKeyPrefix    = "actor:"
	facilityKeyPrefix = "facility:"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockActor locks an actor's wallet and turn. Callers that also need a
// facility lock must take the actor lock first.
func (lm *LockManager) LockActor(actorID string) func() {
	return lm.lock(actorKeyPrefix + actorID)
}

// LockFacility locks one venture's state.
func (lm *LockManager) LockFacility(facilityID string) func() {
	return lm.lock(facilityKeyPrefix + facilityID)
}

func (lm *LockManager) lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
