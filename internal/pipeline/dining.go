package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

// diningFetchConcurrency bounds the per-location fan-out.
const diningFetchConcurrency = 4

// locationResult is the tagged per-location outcome: a grouped menu or the
// fetch error, never both.
type locationResult struct {
	name string
	menu domain.Menu
	err  error
}

func (s *Service) syncDining(ctx context.Context) error {
	// Fan out per location. The join is all-settled: a location's failure is
	// captured in its result slot and must never abort the siblings, so the
	// goroutines always return nil.
	results := make([]locationResult, len(s.locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(diningFetchConcurrency)

	for i, loc := range s.locations {
		g.Go(func() error {
			items, err := s.menus.Menu(gctx, loc.URL)
			if err != nil {
				results[i] = locationResult{name: loc.Name, err: err}
				return nil
			}
			results[i] = locationResult{name: loc.Name, menu: domain.GroupMenu(items, loc.ExtraMeals)}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // goroutines never return errors

	day := domain.DiningDay{Menus: make(map[string]domain.Menu, len(s.locations))}
	var (
		fallbacks       map[string]domain.Menu
		fallbacksLoaded bool
	)

	for _, res := range results {
		if res.err == nil {
			day.Menus[res.name] = res.menu
			continue
		}

		s.logger.Warn("dining location fetch failed", "location", res.name, "error", res.err)
		s.metrics.DiningLocationFailures.Inc()
		if day.Errors == nil {
			day.Errors = make(map[string]string)
		}
		day.Errors[res.name] = res.err.Error()

		// Load the fallback document at most once per run, even when it is
		// absent and multiple locations failed.
		if !fallbacksLoaded {
			fallbacks = s.defaultMenus(ctx)
			fallbacksLoaded = true
		}
		if menu, ok := fallbacks[res.name]; ok {
			day.Menus[res.name] = menu
		}
	}

	// Best effort: whatever succeeded is persisted, with error markers for
	// the rest, rather than leaving the prior day's data stale with no signal.
	date := domain.Today(s.zone)
	col := s.store.Collection(domain.CollectionDiningMenus)
	if err := col.Set(ctx, date, day); err != nil {
		return fmt.Errorf("persist dining menus for %s: %w", date, err)
	}

	s.logger.Info("dining menus snapshotted",
		"date", date,
		"locations", len(day.Menus),
		"failed", len(day.Errors),
	)
	return nil
}

// defaultMenus loads externally maintained fallback menu content for
// locations whose fetch failed. Absence is normal and not an error.
func (s *Service) defaultMenus(ctx context.Context) map[string]domain.Menu {
	var menus map[string]domain.Menu
	err := s.store.Collection(domain.CollectionResources).Get(ctx, domain.DocDefaultMenus, &menus)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("read default menus failed", "error", err)
		}
		return nil
	}
	return menus
}
