package pipeline

import (
	"context"
	"fmt"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

func (s *Service) syncDailyMessages(ctx context.Context) error {
	payload, err := s.feed.DailyMessages(ctx)
	if err != nil {
		return fmt.Errorf("fetch daily messages: %w", err)
	}

	colors, err := domain.ReadCategoryColors(ctx, s.store)
	if err != nil {
		return err
	}

	announcements := domain.NormalizeAnnouncements(payload, colors)

	// One document per calendar day, fully replaced each run. No
	// reconciliation: yesterday's document stays untouched under its own key.
	date := domain.Today(s.zone)
	col := s.store.Collection(domain.CollectionDailyMessages)
	if err := col.Set(ctx, date, announcements); err != nil {
		return fmt.Errorf("persist daily messages for %s: %w", date, err)
	}

	s.logger.Info("daily messages snapshotted", "date", date, "count", len(announcements))
	return nil
}
