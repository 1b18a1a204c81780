package service

import "sync"

// identityLocks hands out one mutex per caller identity. Entries are dropped
// when their last holder unlocks, so the map only holds identities with a
// command in flight.
type identityLocks struct {
	mu    sync.Mutex
	locks map[int64]*identityLock
}

type identityLock struct {
	sync.Mutex
	refs int
}

func newIdentityLocks() *identityLocks {
	return &identityLocks{locks: make(map[int64]*identityLock)}
}

// lock blocks until identity is free and returns the matching unlock.
func (l *identityLocks) lock(identity int64) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[identity]
	if !ok {
		entry = &identityLock{}
		l.locks[identity] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, identity)
		}
		l.mu.Unlock()
	}
}

func (l *identityLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
