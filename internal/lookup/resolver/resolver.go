// Package resolver turns a username into a canonical account identity using
// a fixed chain of fallbacks: keyword search, exact-name lookup, then a
// termination probe of the public profile page.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/ports"
	"lookout/pkg/platform/sentinel"
)

// DefaultCallTimeout bounds each upstream step.
const DefaultCallTimeout = 4 * time.Second

// ErrNotFound means every step completed without locating the account.
var ErrNotFound = fmt.Errorf("username not found: %w", sentinel.ErrNotFound)

// ResolutionError reports a hard failure of the termination probe, the only
// step whose failure is not absorbed.
type ResolutionError struct {
	Username string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: termination probe failed: %v", e.Username, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

type Resolver struct {
	directory   ports.Directory
	probe       ports.TerminationProbe
	logger      *slog.Logger
	callTimeout time.Duration
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithCallTimeout sets the deadline applied to each step.
func WithCallTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.callTimeout = d
		}
	}
}

func New(directory ports.Directory, probe ports.TerminationProbe, opts ...Option) (*Resolver, error) {
	if directory == nil {
		return nil, errors.New("directory is required")
	}
	if probe == nil {
		return nil, errors.New("termination probe is required")
	}
	r := &Resolver{
		directory:   directory,
		probe:       probe,
		logger:      slog.New(slog.DiscardHandler),
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the identity behind username. It returns ErrNotFound when
// nothing matched and a *ResolutionError when the final step failed.
func (r *Resolver) Resolve(ctx context.Context, username string) (models.Identity, error) {
	if id, ok := r.bySearch(ctx, username); ok {
		return id, nil
	}
	if id, ok := r.byLookup(ctx, username); ok {
		return id, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()
	terminated, err := r.probe.ProbeUsername(callCtx, username)
	if err != nil {
		r.logger.WarnContext(ctx, "termination probe failed",
			"endpoint", "profile_page",
			"username", username,
			"error", err,
		)
		return models.Identity{}, &ResolutionError{Username: username, Err: err}
	}
	if terminated {
		return models.TerminatedIdentity(username), nil
	}
	return models.Identity{}, ErrNotFound
}

func (r *Resolver) bySearch(ctx context.Context, username string) (models.Identity, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	candidates, err := r.directory.Search(callCtx, username)
	if err != nil {
		r.logger.WarnContext(ctx, "username search failed",
			"endpoint", "search",
			"username", username,
			"error", err,
		)
		return models.Identity{}, false
	}
	for _, c := range candidates {
		if strings.EqualFold(c.Name, username) {
			return toIdentity(c, models.ResolvedBySearch), true
		}
	}
	return models.Identity{}, false
}

func (r *Resolver) byLookup(ctx context.Context, username string) (models.Identity, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	candidates, err := r.directory.LookupUsername(callCtx, username)
	if err != nil {
		r.logger.WarnContext(ctx, "username lookup failed",
			"endpoint", "usernames",
			"username", username,
			"error", err,
		)
		return models.Identity{}, false
	}
	if len(candidates) == 0 {
		return models.Identity{}, false
	}
	return toIdentity(candidates[0], models.ResolvedByLookup), true
}

func toIdentity(c ports.Candidate, method models.ResolutionMethod) models.Identity {
	return models.Identity{
		ID:               c.ID,
		Name:             c.Name,
		DisplayName:      c.DisplayName,
		ResolutionMethod: method,
	}
}
