package movegate

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when a lock could not be taken before the timeout.
var ErrBusy = errors.New("lock acquisition timed out")

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Gate is a registry of per-key mutual exclusion locks.
//
// Every caller that looks up a key holds a reference to its entry until it
// releases the lock or gives up waiting. The entry is removed from the
// registry only when the last reference is dropped, so a waiter can never
// end up on a lock that is no longer reachable through the registry.
type Gate struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Gate {
	return &Gate{
		entries: make(map[string]*entry),
	}
}

// Handle is an acquired lock. Release is safe to call more than once.
type Handle struct {
	gate  *Gate
	key   string
	entry *entry
	once  sync.Once
}

// Release - unlocks the key and drops this holder's reference.
func (that *Handle) Release() {
	that.once.Do(func() {
		that.entry.sem.Release(1)
		that.gate.unref(that.key, that.entry)
	})
}

// Acquire - takes the lock for key, waiting at most timeout.
// Returns ErrBusy on timeout and the context error if ctx ends first.
func (that *Gate) Acquire(ctx context.Context, key string, timeout time.Duration) (*Handle, error) {
	ent := that.ref(key)

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := ent.sem.Acquire(waitCtx, 1); err != nil {
		that.unref(key, ent)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, ErrBusy
	}

	return &Handle{gate: that, key: key, entry: ent}, nil
}

// Len - number of keys currently tracked.
func (that *Gate) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

func (that *Gate) ref(key string) *entry {
	that.mu.Lock()
	defer that.mu.Unlock()

	ent, ok := that.entries[key]
	if !ok {
		ent = &entry{sem: semaphore.NewWeighted(1)}
		that.entries[key] = ent
	}
	ent.refs++

	return ent
}

func (that *Gate) unref(key string, ent *entry) {
	that.mu.Lock()
	defer that.mu.Unlock()

	ent.refs--
	if ent.refs == 0 && that.entries[key] == ent {
		delete(that.entries, key)
	}
}
