// Package cooldown enforces a per-caller waiting period between lookups.
package cooldown

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultWindow is the waiting period applied when none is configured.
const DefaultWindow = 5 * time.Second

// Store atomically claims a key for window. When the key is already held it
// reports how long remains.
type Store interface {
	Acquire(ctx context.Context, key string, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// Limiter applies one window to every caller.
type Limiter struct {
	store  Store
	window time.Duration
	logger *slog.Logger
}

type Option func(*Limiter)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) {
		l.logger = logger
	}
}

func WithWindow(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.window = d
		}
	}
}

func New(store Store, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, errors.New("cooldown store is required")
	}
	l := &Limiter{
		store:  store,
		window: DefaultWindow,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow claims the window for callerID. Store failures let the call through.
func (l *Limiter) Allow(ctx context.Context, callerID string) (bool, time.Duration) {
	allowed, retryAfter, err := l.store.Acquire(ctx, "lookup:"+callerID, l.window)
	if err != nil {
		l.logger.WarnContext(ctx, "cooldown store failed, allowing request",
			"caller_id", callerID,
			"error", err,
		)
		return true, 0
	}
	return allowed, retryAfter
}
