// Package aggregator gathers everything known about one account id from the
// upstream sources concurrently, tagging each answer instead of failing.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"lookout/internal/lookup/metrics"
	"lookout/internal/lookup/models"
	"lookout/internal/lookup/ports"
	"lookout/pkg/platform/circuit"
	"lookout/pkg/requestcontext"
)

// DefaultCallTimeout bounds each upstream call.
const DefaultCallTimeout = 4 * time.Second

// Source labels used for breakers, logs and metrics.
const (
	SourceToken       = "csrf"
	SourceProfile     = "profile"
	SourceAvatar      = "avatar"
	SourceValuation   = "valuation"
	SourcePresence    = "presence"
	SourceOwnership   = "ownership"
	SourceBadges      = "badges"
	SourceProfilePage = "profile_page"
)

const reasonCircuitOpen = "circuit open"

type Aggregator struct {
	profiles    ports.ProfileSource
	valuations  ports.ValuationSource
	probe       ports.TerminationProbe
	logger      *slog.Logger
	metrics     *metrics.Metrics
	callTimeout time.Duration
	breakers    map[string]*circuit.Breaker
}

type Option func(*Aggregator)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

// WithCallTimeout sets the deadline applied to every upstream call.
func WithCallTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.callTimeout = d
		}
	}
}

// WithBreakers puts a circuit breaker in front of every source. A source
// whose breaker is open is reported degraded without being called.
func WithBreakers(opts ...circuit.Option) Option {
	return func(a *Aggregator) {
		a.breakers = make(map[string]*circuit.Breaker)
		for _, src := range []string{
			SourceToken, SourceProfile, SourceAvatar, SourceValuation,
			SourcePresence, SourceOwnership, SourceBadges, SourceProfilePage,
		} {
			a.breakers[src] = circuit.New(src, opts...)
		}
	}
}

func New(profiles ports.ProfileSource, valuations ports.ValuationSource, probe ports.TerminationProbe, opts ...Option) (*Aggregator, error) {
	if profiles == nil {
		return nil, errors.New("profile source is required")
	}
	if valuations == nil {
		return nil, errors.New("valuation source is required")
	}
	if probe == nil {
		return nil, errors.New("termination probe is required")
	}
	a := &Aggregator{
		profiles:    profiles,
		valuations:  valuations,
		probe:       probe,
		logger:      slog.New(slog.DiscardHandler),
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Aggregate fetches the bundle for userID. It never fails: every source
// that could not answer is tagged degraded or unavailable in the bundle.
func (a *Aggregator) Aggregate(ctx context.Context, userID int64) *models.Bundle {
	bundle := &models.Bundle{
		UserID:    userID,
		FetchedAt: requestcontext.Now(ctx),
	}

	// No goroutine returns an error, so one failing source never cancels
	// its siblings.
	g, gctx := errgroup.WithContext(ctx)
	tokenCh := make(chan string, 1)

	g.Go(func() error {
		tok := fetch(gctx, a, SourceToken, userID, a.profiles.SessionToken)
		token, _ := tok.Get()
		tokenCh <- token
		return nil
	})
	g.Go(func() error {
		bundle.Profile = fetch(gctx, a, SourceProfile, userID, func(ctx context.Context) (models.Profile, error) {
			return a.profiles.Profile(ctx, userID)
		})
		return nil
	})
	g.Go(func() error {
		bundle.Avatar = fetch(gctx, a, SourceAvatar, userID, func(ctx context.Context) (models.Avatar, error) {
			return a.profiles.Avatar(ctx, userID)
		})
		return nil
	})
	g.Go(func() error {
		bundle.Valuation = fetch(gctx, a, SourceValuation, userID, func(ctx context.Context) (models.Valuation, error) {
			return a.valuations.Valuation(ctx, userID)
		})
		return nil
	})
	g.Go(func() error {
		var token string
		select {
		case token = <-tokenCh:
		case <-gctx.Done():
		}
		bundle.Presence = fetch(gctx, a, SourcePresence, userID, func(ctx context.Context) (models.Presence, error) {
			return a.profiles.Presence(ctx, token, userID)
		})
		return nil
	})
	g.Go(func() error {
		bundle.Ownership = fetch(gctx, a, SourceOwnership, userID, func(ctx context.Context) (models.Ownership, error) {
			return a.profiles.Ownership(ctx, userID)
		})
		return nil
	})
	g.Go(func() error {
		bundle.Badges = fetch(gctx, a, SourceBadges, userID, func(ctx context.Context) ([]models.Badge, error) {
			return a.profiles.Badges(ctx, userID)
		})
		return nil
	})
	_ = g.Wait()

	bundle.Reconfirm.Ownership = fetch(ctx, a, SourceOwnership, userID, func(ctx context.Context) (models.Ownership, error) {
		return a.profiles.Ownership(ctx, userID)
	})
	bundle.Reconfirm.PageTerminated = fetch(ctx, a, SourceProfilePage, userID, func(ctx context.Context) (bool, error) {
		return a.probe.ProbeUserID(ctx, userID)
	})
	return bundle
}

// fetch runs one bounded upstream call and tags its outcome.
func fetch[T any](ctx context.Context, a *Aggregator, source string, userID int64, call func(context.Context) (T, error)) models.Result[T] {
	breaker := a.breakers[source]
	if breaker != nil && !breaker.Allow() {
		a.metrics.ObserveFetch(source, string(models.ResultDegraded), 0)
		return models.Degraded[T](reasonCircuitOpen)
	}

	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	start := time.Now()
	value, err := call(callCtx)
	elapsed := time.Since(start)

	result := models.OK(value)
	if err != nil {
		result = models.FromError[T](err)
		a.logger.WarnContext(ctx, "upstream fetch failed",
			"source", source,
			"user_id", userID,
			"result", result.Status,
			"error", err,
		)
	}
	a.metrics.ObserveFetch(source, string(result.Status), elapsed)
	a.recordBreaker(ctx, breaker, result.IsDegraded())
	return result
}

func (a *Aggregator) recordBreaker(ctx context.Context, b *circuit.Breaker, failed bool) {
	if b == nil {
		return
	}
	var change circuit.StateChange
	if failed {
		_, change = b.RecordFailure()
	} else {
		_, change = b.RecordSuccess()
	}
	switch {
	case change.Opened:
		a.logger.WarnContext(ctx, "circuit opened", "source", b.Name())
		a.metrics.IncrementBreakerTransition(b.Name(), circuit.StateOpen.String())
	case change.Closed:
		a.logger.InfoContext(ctx, "circuit closed", "source", b.Name())
		a.metrics.IncrementBreakerTransition(b.Name(), circuit.StateClosed.String())
	}
}
