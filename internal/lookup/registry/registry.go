// Package registry remembers account ids already classified as banned for
// the lifetime of the process.
package registry

import (
	"context"
	"sync"
)

// Registry is a monotonic id set. Once marked, an id stays marked until
// the process restarts; there is no unmark.
type Registry struct {
	mu     sync.RWMutex
	banned map[int64]struct{}
}

func New() *Registry {
	return &Registry{banned: make(map[int64]struct{})}
}

func (r *Registry) IsBanned(_ context.Context, userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.banned[userID]
	return ok
}

// MarkBanned records userID. Marking twice is a no-op.
func (r *Registry) MarkBanned(_ context.Context, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.banned[userID] = struct{}{}
}

// Len returns how many ids are marked.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.banned)
}
