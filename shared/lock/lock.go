// Package lock provides in-process keyed mutual exclusion. The booking flow
// holds a per-date lock across its read-validate-write window so two
// concurrent requests for the same day cannot both validate against the same
// snapshot; the database exclusion constraints remain the backstop across
// processes.
package lock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*entry)}
}

// Acquire blocks until the key's mutex is held and returns the release
// function. Entries are dropped once the last holder releases.
func (k *Keyed) Acquire(key string) func() {
	k.mu.Lock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()

		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}

		k.mu.Unlock()
	}
}
