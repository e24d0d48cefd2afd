package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/resolver"
	"lookout/pkg/platform/httputil"
	"lookout/pkg/platform/sentinel"
	"lookout/pkg/requestcontext"
)

// Service runs a lookup.
type Service interface {
	Lookup(ctx context.Context, username string) (*models.Report, error)
}

// Handler serves the lookup endpoint.
type Handler struct {
	service  Service
	logger   *slog.Logger
	cooldown func(http.Handler) http.Handler
}

type Option func(*Handler)

// WithCooldown installs a per-caller limiter in front of the lookup route.
func WithCooldown(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.cooldown = mw
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the lookup routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/users", func(r chi.Router) {
		if h.cooldown != nil {
			r.Use(h.cooldown)
		}
		r.Get("/{username}", h.handleLookup)
	})
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	username := sanitizeUsername(chi.URLParam(r, "username"))
	if username == "" {
		httputil.WriteError(w, http.StatusBadRequest, "bad_request", "username is required")
		return
	}

	report, err := h.service.Lookup(ctx, username)
	if err != nil {
		var resErr *resolver.ResolutionError
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			httputil.WriteError(w, http.StatusNotFound, "not_found", "no account found for "+username)
		case errors.As(err, &resErr):
			h.logger.WarnContext(ctx, "lookup resolution failed",
				"request_id", requestID,
				"username", username,
				"error", err,
			)
			httputil.WriteError(w, http.StatusBadGateway, "upstream_error", "")
		case errors.Is(err, context.DeadlineExceeded):
			httputil.WriteError(w, http.StatusGatewayTimeout, "timeout", "")
		case errors.Is(err, context.Canceled):
			// client went away; nothing useful to send
		default:
			h.logger.ErrorContext(ctx, "lookup failed",
				"request_id", requestID,
				"username", username,
				"error", err,
			)
			httputil.WriteError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toReportResponse(report))
}
