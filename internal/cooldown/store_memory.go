package cooldown

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore keeps expiries in a map. Expired keys are dropped lazily on
// the next Acquire for the same key and in bulk by Sweep.
type InMemoryStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *InMemoryStore) Acquire(_ context.Context, key string, window time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if end, ok := s.expires[key]; ok && now.Before(end) {
		return false, end.Sub(now), nil
	}
	s.expires[key] = now.Add(window)
	return true, 0, nil
}

// Sweep removes every expired key and returns how many were removed.
func (s *InMemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, end := range s.expires {
		if !now.Before(end) {
			delete(s.expires, key)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *InMemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
