package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"lookout/internal/cooldown"
	httpapi "lookout/internal/http"
	"lookout/internal/lookup/adapters"
	"lookout/internal/lookup/aggregator"
	"lookout/internal/lookup/classifier"
	"lookout/internal/lookup/handler"
	lookupmetrics "lookout/internal/lookup/metrics"
	"lookout/internal/lookup/probe"
	"lookout/internal/lookup/registry"
	"lookout/internal/lookup/resolver"
	"lookout/internal/lookup/service"
	"lookout/internal/platform/config"
	"lookout/internal/platform/httpserver"
	"lookout/internal/platform/logger"
	platformmetrics "lookout/internal/platform/metrics"
	redisclient "lookout/internal/platform/redis"
	"lookout/internal/platform/tracing"
	"lookout/internal/upstream/roblox"
	"lookout/internal/upstream/rolimons"
	"lookout/pkg/platform/circuit"
)

// main wires dependencies, serves the router and shuts down on SIGINT/SIGTERM.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var (
		store  cooldown.Store
		health httpapi.HealthChecker
	)
	if rdb != nil {
		defer rdb.Close()
		store = cooldown.NewRedisStore(rdb.Client)
		health = rdb
		log.Info("cooldowns shared through redis")
	} else {
		mem := cooldown.NewInMemoryStore()
		go mem.RunSweeper(ctx, time.Minute)
		store = mem
	}
	limiter, err := cooldown.New(store, cooldown.WithLogger(log), cooldown.WithWindow(cfg.Cooldown.Window))
	if err != nil {
		return err
	}

	reg := prometheus.DefaultRegisterer
	lookupMetrics := lookupmetrics.New(reg)

	outbound := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	robloxClient := roblox.New(roblox.Endpoints{
		Users:       cfg.Upstream.UsersURL,
		Thumbnails:  cfg.Upstream.ThumbnailsURL,
		Presence:    cfg.Upstream.PresenceURL,
		Inventory:   cfg.Upstream.InventoryURL,
		AccountInfo: cfg.Upstream.AccountURL,
		Auth:        cfg.Upstream.AuthURL,
		Web:         cfg.Upstream.WebURL,
	}, roblox.WithHTTPClient(outbound), roblox.WithSessionCookie(cfg.Upstream.SessionCookie))
	platform := adapters.NewRobloxAdapter(robloxClient, cfg.Lookup.ReferenceItemID)
	valuations := adapters.NewValuationAdapter(rolimons.New(cfg.Upstream.RolimonsURL, outbound))
	pageProbe := probe.New(robloxClient)

	res, err := resolver.New(platform, pageProbe,
		resolver.WithLogger(log),
		resolver.WithCallTimeout(cfg.Upstream.Timeout),
	)
	if err != nil {
		return err
	}

	aggOpts := []aggregator.Option{
		aggregator.WithLogger(log),
		aggregator.WithMetrics(lookupMetrics),
		aggregator.WithCallTimeout(cfg.Upstream.Timeout),
	}
	if cfg.Lookup.BreakersEnabled {
		aggOpts = append(aggOpts, aggregator.WithBreakers(
			circuit.WithFailureThreshold(cfg.Lookup.BreakerFailures),
			circuit.WithSuccessThreshold(cfg.Lookup.BreakerSuccesses),
			circuit.WithCoolOff(cfg.Lookup.BreakerCoolOff),
		))
	}
	agg, err := aggregator.New(platform, valuations, pageProbe, aggOpts...)
	if err != nil {
		return err
	}

	cls := classifier.New(registry.New(),
		classifier.WithLogger(log),
		classifier.WithDenylist(cfg.Lookup.Denylist...),
	)

	svc, err := service.New(res, agg, cls,
		service.WithLogger(log),
		service.WithMetrics(lookupMetrics),
		service.WithTracerProvider(otel.GetTracerProvider()),
	)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Metrics:  platformmetrics.New(reg),
		Gatherer: prometheus.DefaultGatherer,
		Health:   health,
		Routes: []httpapi.Registrar{
			handler.New(svc, log, handler.WithCooldown(limiter.Middleware)),
		},
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting lookout", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
