// Package service runs the lookup pipeline: resolve the username, gather the
// account bundle, classify it.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"lookout/internal/lookup/metrics"
	"lookout/internal/lookup/models"
	"lookout/internal/lookup/resolver"
	"lookout/pkg/requestcontext"
)

const tracerName = "lookout/internal/lookup/service"

// Outcome labels for lookups that did not produce a verdict.
const (
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type Service struct {
	resolver   Resolver
	aggregator Aggregator
	classifier Classifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	inflight   singleflight.Group
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func New(r Resolver, a Aggregator, c Classifier, opts ...Option) (*Service, error) {
	if r == nil {
		return nil, errors.New("resolver is required")
	}
	if a == nil {
		return nil, errors.New("aggregator is required")
	}
	if c == nil {
		return nil, errors.New("classifier is required")
	}
	svc := &Service{
		resolver:   r,
		aggregator: a,
		classifier: c,
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Lookup produces the report for username. Concurrent lookups of the same
// username (case-insensitive) share one pipeline run; that run is detached
// from the caller's cancellation, each upstream call being individually
// bounded. A caller that gives up gets its context error while the shared
// run completes for the others.
func (s *Service) Lookup(ctx context.Context, username string) (*models.Report, error) {
	key := strings.ToLower(username)
	detached := context.WithoutCancel(ctx)

	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.run(detached, username)
	})

	select {
	case res := <-ch:
		if res.Shared {
			s.metrics.IncrementShared()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Report), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) run(ctx context.Context, username string) (*models.Report, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "lookup", trace.WithAttributes(
		attribute.String("lookup.username", username),
		attribute.String("request.id", requestcontext.RequestID(ctx)),
	))
	defer span.End()
	defer func() { s.metrics.ObserveLookupLatency(time.Since(start)) }()

	identity, err := s.resolve(ctx, username)
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, resolver.ErrNotFound) {
			outcome = outcomeNotFound
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, "resolution failed")
		}
		s.metrics.IncrementLookupOutcome(outcome)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("lookup.user_id", identity.ID),
		attribute.String("lookup.resolution_method", string(identity.ResolutionMethod)),
	)

	if identity.IsTerminatedSentinel() {
		verdict := models.NewVerdict(models.StatusTerminated, []models.Signal{models.SignalTerminatedPage}, requestcontext.Now(ctx))
		s.finish(ctx, span, identity, verdict)
		return &models.Report{Identity: identity, Verdict: verdict}, nil
	}

	bundle := s.aggregate(ctx, identity.ID)
	verdict := s.classify(ctx, identity, username, bundle)
	s.finish(ctx, span, identity, verdict)
	return &models.Report{Identity: identity, Bundle: bundle, Verdict: verdict}, nil
}

func (s *Service) resolve(ctx context.Context, username string) (models.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "lookup.resolve")
	defer span.End()
	return s.resolver.Resolve(ctx, username)
}

func (s *Service) aggregate(ctx context.Context, userID int64) *models.Bundle {
	ctx, span := s.tracer.Start(ctx, "lookup.aggregate", trace.WithAttributes(
		attribute.Int64("lookup.user_id", userID),
	))
	defer span.End()
	return s.aggregator.Aggregate(ctx, userID)
}

func (s *Service) classify(ctx context.Context, identity models.Identity, username string, bundle *models.Bundle) models.Verdict {
	ctx, span := s.tracer.Start(ctx, "lookup.classify")
	defer span.End()
	return s.classifier.Classify(ctx, identity.ID, username, bundle)
}

func (s *Service) finish(ctx context.Context, span trace.Span, identity models.Identity, verdict models.Verdict) {
	span.SetAttributes(attribute.String("lookup.status", string(verdict.Status)))
	s.metrics.IncrementLookupOutcome(string(verdict.Status))
	s.logger.InfoContext(ctx, "lookup completed",
		"user_id", identity.ID,
		"username", identity.Name,
		"status", verdict.Status,
		"signals", verdict.Signals,
		"request_id", requestcontext.RequestID(ctx),
	)
}
