package pipeline

import (
	"context"
	"fmt"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

// sortedIndex is the reserved metadata document in the events collection:
// all event keys ordered by start time, so readers get calendar order
// without sorting client-side.
type sortedIndex struct {
	Keys      []string `json:"keys"`
	UpdatedAt int64    `json:"updatedAt"`
}

func (s *Service) syncEvents(ctx context.Context) error {
	records, err := s.feed.Events(ctx)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	colors, err := domain.ReadCategoryColors(ctx, s.store)
	if err != nil {
		return err
	}

	events, err := domain.NormalizeEvents(records, colors)
	if err != nil {
		return fmt.Errorf("normalize events: %w", err)
	}
	s.metrics.RecordsSkipped.WithLabelValues(jobEvents, "no_time_range").
		Add(float64(len(records) - len(events)))

	col := s.store.Collection(domain.CollectionEvents)

	persisted, err := col.Keys(ctx)
	if err != nil {
		return fmt.Errorf("list persisted events: %w", err)
	}

	// Upsert every fetched event unconditionally: full replace per key, no
	// field-level diffing. Post-state is determined by the fetch alone.
	fetched := make(map[string]struct{}, len(events))
	for _, ev := range events {
		if err := col.Set(ctx, ev.Key, ev); err != nil {
			return fmt.Errorf("upsert event %s: %w", ev.Key, err)
		}
		fetched[ev.Key] = struct{}{}
	}

	// Sweep events that vanished upstream.
	stale := StaleKeys(persisted, fetched, domain.DocSortedIndex)
	for _, key := range stale {
		if err := col.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete stale event %s: %w", key, err)
		}
	}

	s.metrics.EventsUpserted.Add(float64(len(events)))
	s.metrics.EventsDeleted.Add(float64(len(stale)))

	if err := s.writeSortedIndex(ctx, col, events); err != nil {
		return err
	}

	s.logger.Info("events reconciled",
		"fetched", len(records),
		"upserted", len(events),
		"deleted", len(stale),
	)
	return nil
}

func (s *Service) writeSortedIndex(ctx context.Context, col domain.Collection, events []domain.Event) error {
	domain.SortEvents(events)
	keys := make([]string, len(events))
	for i, ev := range events {
		keys[i] = ev.Key
	}

	idx := sortedIndex{Keys: keys, UpdatedAt: domain.NowUnixMilli()}
	if err := col.Set(ctx, domain.DocSortedIndex, idx); err != nil {
		return fmt.Errorf("write sorted index: %w", err)
	}
	return nil
}
