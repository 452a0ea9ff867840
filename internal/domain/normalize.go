package domain

import (
	"cmp"
	"fmt"
	"html"
	"slices"
	"strings"
	"time"
	"unicode"
)

// feedUTCOffset is the fixed offset the upstream feed's wall-clock times are
// interpreted at. The feed itself carries no zone information.
const feedUTCOffset = "-04:00"

const timeRangeSeparator = "-"

const (
	dateLayout      = "2006-01-02 -07:00"
	dateClockLayout = "2006-01-02 3:04 pm -07:00"
)

// NormalizeEvents converts raw feed records into canonical events, in source
// order. Records whose time range lacks the "-" separator (all-day or
// malformed entries) are dropped. A record that carries a separator but an
// unparseable date or clock time fails the whole batch: an event with an
// inconsistent timestamp corrupts sort order downstream, which is worse
// than retrying the run.
//
// FirstEventToday is set on the first record seen for each distinct date, so
// it is order-sensitive: callers must hand in the feed's original order.
func NormalizeEvents(records []RawEventRecord, colors ColorTable) ([]Event, error) {
	events := make([]Event, 0, len(records))
	seenDates := make(map[string]bool)

	for _, rec := range records {
		if !strings.Contains(rec.TimeFormatted, timeRangeSeparator) {
			continue
		}
		rangeParts := strings.SplitN(rec.TimeFormatted, timeRangeSeparator, 2)

		startTime, err := clockTimeUnixMillis(rec.StartDate, rangeParts[0])
		if err != nil {
			return nil, fmt.Errorf("event %s: start time: %w", rec.ID, err)
		}
		endTime, err := clockTimeUnixMillis(rec.StartDate, rangeParts[1])
		if err != nil {
			return nil, fmt.Errorf("event %s: end time: %w", rec.ID, err)
		}
		dateUnix, err := dateUnixMillis(rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", rec.ID, err)
		}

		events = append(events, Event{
			Key:             rec.ID.String(),
			Category:        rec.Category,
			Title:           html.UnescapeString(rec.Title),
			Information:     eventInformation(rec),
			Location:        html.UnescapeString(rec.Venue),
			Room:            html.UnescapeString(rec.VenueRoom),
			HeaderColor:     colors.Resolve(rec.Category),
			Times:           stripSpace(rec.TimeFormatted),
			Date:            rec.StartDate,
			DateUnix:        dateUnix,
			FirstEventToday: !seenDates[rec.StartDate],
			StartTime:       startTime,
			EndTime:         endTime,
		})
		seenDates[rec.StartDate] = true
	}

	return events, nil
}

// SortEvents orders events by start time, ascending. Normalization preserves
// feed order; callers that need calendar order apply this explicitly.
func SortEvents(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})
}

// eventInformation decodes the body and appends a rendered link snippet when
// the record carries an external URL.
func eventInformation(rec RawEventRecord) string {
	info := html.UnescapeString(rec.PostContent)
	if rec.URL != "" {
		info += fmt.Sprintf("<br><br><a href=%q>More Information</a>", rec.URL)
	}
	return info
}

// dateUnixMillis converts a "YYYY-MM-DD" date to epoch milliseconds at
// midnight, feed offset.
func dateUnixMillis(date string) (int64, error) {
	t, err := time.Parse(dateLayout, date+" "+feedUTCOffset)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t.UnixMilli(), nil
}

// clockTimeUnixMillis combines a feed date with one side of a time range
// ("9:00 am") into epoch milliseconds at the feed offset.
func clockTimeUnixMillis(date, clockTime string) (int64, error) {
	clockTime = strings.ToLower(strings.TrimSpace(clockTime))
	t, err := time.Parse(dateClockLayout, date+" "+clockTime+" "+feedUTCOffset)
	if err != nil {
		return 0, fmt.Errorf("parse time %q on %q: %w", clockTime, date, err)
	}
	return t.UnixMilli(), nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
