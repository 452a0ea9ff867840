// Package pipeline orchestrates the three scheduled sync jobs: events,
// daily messages, and dining menus. Each job is one fetch → normalize →
// persist pass; jobs share nothing at runtime and may overlap safely
// because persistence is idempotent and convergent.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
	"github.com/couchcryptid/campus-data-sync/internal/observability"
)

// Job names used in logs and metric labels.
const (
	jobEvents        = "events"
	jobDailyMessages = "daily_messages"
	jobDining        = "dining"
)

// EventFeed fetches the upstream events and daily-messages payloads.
type EventFeed interface {
	Events(ctx context.Context) ([]domain.RawEventRecord, error)
	DailyMessages(ctx context.Context) (map[string][]domain.RawEventRecord, error)
}

// MenuFeed fetches one dining location's raw menu.
type MenuFeed interface {
	Menu(ctx context.Context, url string) ([]domain.RawMenuItem, error)
}

// Location is one configured dining location. ExtraMeals extends the
// standard meal allow-list for sites with non-standard service (snack bars).
type Location struct {
	Name       string
	URL        string
	ExtraMeals []string
}

// Service runs the sync jobs against injected collaborators.
type Service struct {
	store     domain.Store
	feed      EventFeed
	menus     MenuFeed
	locations []Location
	zone      *time.Location
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Service. zone is the deployment timezone used to key daily
// snapshot documents.
func New(store domain.Store, feed EventFeed, menus MenuFeed, locations []Location, zone *time.Location, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		store:     store,
		feed:      feed,
		menus:     menus,
		locations: locations,
		zone:      zone,
		logger:    logger,
		metrics:   metrics,
	}
}

// SyncEvents runs the events job: fetch, normalize, reconcile, index.
func (s *Service) SyncEvents(ctx context.Context) error {
	return s.run(ctx, jobEvents, s.syncEvents)
}

// SyncDailyMessages runs the daily-messages job: fetch, normalize, snapshot.
func (s *Service) SyncDailyMessages(ctx context.Context) error {
	return s.run(ctx, jobDailyMessages, s.syncDailyMessages)
}

// SyncDining runs the dining job: fan out per location, group, snapshot.
func (s *Service) SyncDining(ctx context.Context) error {
	return s.run(ctx, jobDining, s.syncDining)
}

// CheckReadiness returns nil once any job has completed successfully,
// or an error describing why the service is not yet ready.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no sync job has completed yet")
	}
	return nil
}

// run wraps a job with logging, metrics, and readiness tracking.
func (s *Service) run(ctx context.Context, job string, fn func(context.Context) error) error {
	start := time.Now()
	s.logger.Info("sync run starting", "job", job)
	s.metrics.SyncRunning.WithLabelValues(job).Set(1)
	defer s.metrics.SyncRunning.WithLabelValues(job).Set(0)

	err := fn(ctx)
	s.metrics.RunDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.RunsTotal.WithLabelValues(job, "error").Inc()
		s.logger.Error("sync run failed", "job", job, "duration", time.Since(start), "error", err)
		return err
	}

	s.metrics.RunsTotal.WithLabelValues(job, "success").Inc()
	s.metrics.LastSuccess.WithLabelValues(job).SetToCurrentTime()
	s.ready.Store(true)
	s.logger.Info("sync run complete", "job", job, "duration", time.Since(start))
	return nil
}
