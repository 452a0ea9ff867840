// Command sync runs the campus data synchronization service: cron-scheduled
// jobs that fetch events, daily messages, and dining menus from the campus
// APIs and reconcile them into the document store.
//
// Run as a daemon (default), or run a single job once and exit:
//
//	go run ./cmd/sync
//	go run ./cmd/sync -job events
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	diningadapter "github.com/couchcryptid/campus-data-sync/internal/adapter/dining"
	httpadapter "github.com/couchcryptid/campus-data-sync/internal/adapter/http"
	redisadapter "github.com/couchcryptid/campus-data-sync/internal/adapter/redis"
	"github.com/couchcryptid/campus-data-sync/internal/adapter/wms"
	"github.com/couchcryptid/campus-data-sync/internal/config"
	"github.com/couchcryptid/campus-data-sync/internal/observability"
	"github.com/couchcryptid/campus-data-sync/internal/pipeline"
)

func main() {
	job := flag.String("job", "", "run one job (events|daily-messages|dining) once and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	zone, err := cfg.Location()
	if err != nil {
		logger.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	store := redisadapter.NewStore(cfg.RedisAddr, cfg.RedisDB)
	feed := wms.NewClient(cfg.EventsURL, cfg.DailyMessagesURL, cfg.FetchTimeout, cfg.FetchRetries)
	menus := diningadapter.NewClient(cfg.FetchTimeout, cfg.FetchRetries)

	locations := make([]pipeline.Location, len(cfg.DiningLocations))
	for i, loc := range cfg.DiningLocations {
		locations[i] = pipeline.Location{Name: loc.Name, URL: loc.URL, ExtraMeals: loc.ExtraMeals}
	}

	svc := pipeline.New(store, feed, menus, locations, zone, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Ping(ctx); err != nil {
		logger.Error("store unreachable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	if *job != "" {
		if err := runOnce(ctx, svc, *job); err != nil {
			logger.Error("job failed", "job", *job, "error", err)
			os.Exit(1)
		}
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	scheduler := cron.New(cron.WithLocation(zone))
	schedule := func(spec, name string, fn func(context.Context) error) {
		_, err := scheduler.AddFunc(spec, func() {
			// Job errors are logged and counted; the next scheduled run retries.
			fn(ctx) //nolint:errcheck
		})
		if err != nil {
			logger.Error("invalid schedule", "job", name, "spec", spec, "error", err)
			os.Exit(1)
		}
		logger.Info("job scheduled", "job", name, "spec", spec, "zone", zone.String())
	}
	schedule(cfg.EventsSchedule, "events", svc.SyncEvents)
	schedule(cfg.DailyMessagesSchedule, "daily_messages", svc.SyncDailyMessages)
	schedule(cfg.DiningSchedule, "dining", svc.SyncDining)
	scheduler.Start()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Stop returns a context that completes when in-flight jobs finish.
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout reached with jobs still running")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("shutdown complete")
}

func runOnce(ctx context.Context, svc *pipeline.Service, job string) error {
	switch job {
	case "events":
		return svc.SyncEvents(ctx)
	case "daily-messages":
		return svc.SyncDailyMessages(ctx)
	case "dining":
		return svc.SyncDining(ctx)
	default:
		return fmt.Errorf("unknown job %q", job)
	}
}
