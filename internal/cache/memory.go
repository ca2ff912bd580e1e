package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

func (that memoryItem) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

// Memory is a process-local Backend. Expired entries are dropped lazily on
// read, or in bulk by Sweep.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (that *Memory) Get(_ context.Context, key string) ([]byte, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	item, ok := that.items[key]
	if !ok {
		return nil, ErrMiss
	}

	if item.expired(that.now()) {
		delete(that.items, key)
		return nil, ErrMiss
	}

	return item.value, nil
}

// Set - stores value; a non-positive ttl keeps the entry until deleted.
func (that *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	item := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = that.now().Add(ttl)
	}
	that.items[key] = item

	return nil
}

func (that *Memory) Delete(_ context.Context, key string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.items, key)

	return nil
}

// Sweep - removes every expired entry and returns how many were dropped.
func (that *Memory) Sweep() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	removed := 0
	for key, item := range that.items {
		if item.expired(now) {
			delete(that.items, key)
			removed++
		}
	}

	return removed
}

// RunSweeper - calls Sweep every interval until ctx is done.
func (that *Memory) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.Sweep()
		}
	}
}

func (that *Memory) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.items)
}
