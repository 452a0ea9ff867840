package domain

import (
	"html"
	"maps"
	"slices"
)

// NormalizeAnnouncements flattens a category-keyed daily-messages payload
// into a map keyed by record ID. Entries declared as events belong to the
// events pipeline and are never duplicated here. A duplicate ID across
// categories is the same upstream post cross-listed; categories are visited
// in sorted order so the last-write-wins outcome is stable run to run.
func NormalizeAnnouncements(payload map[string][]RawEventRecord, colors ColorTable) map[string]Announcement {
	out := make(map[string]Announcement)
	for _, category := range slices.Sorted(maps.Keys(payload)) {
		for _, rec := range payload[category] {
			if rec.Type == "event" {
				continue
			}
			key := rec.ID.String()
			out[key] = Announcement{
				Key:         key,
				Category:    rec.Category,
				Title:       html.UnescapeString(rec.Title),
				Information: html.UnescapeString(rec.PostContent),
				Location:    html.UnescapeString(rec.Venue),
				HeaderColor: colors.Resolve(rec.Category),
			}
		}
	}
	return out
}
