package domain

import "encoding/json"

// RawEventRecord is one record of the upstream WordPress events feed. The
// daily-messages feed serves the same shape, category-keyed, with Type
// distinguishing true events from announcements.
type RawEventRecord struct {
	ID            json.Number `json:"ID"`
	Category      string      `json:"category"`
	Title         string      `json:"title"`
	PostContent   string      `json:"post_content"`
	Venue         string      `json:"venue"`
	VenueRoom     string      `json:"venue_room"`
	StartDate     string      `json:"start_ts"`        // "YYYY-MM-DD"
	TimeFormatted string      `json:"time_formatted"`  // e.g. "9:00 am - 10:00 am", "All Day"
	URL           string      `json:"url"`             // optional external link
	Type          string      `json:"type"`            // "event" or an announcement type
}

// Event is the canonical calendar event persisted to the events collection,
// keyed by Key.
type Event struct {
	Key             string `json:"key"`
	Category        string `json:"category"`
	Title           string `json:"title"`
	Information     string `json:"information"`
	Location        string `json:"location"`
	Room            string `json:"room"`
	HeaderColor     string `json:"headerColor"`
	Times           string `json:"times"` // whitespace-stripped range, e.g. "9:00am-10:00am"
	Date            string `json:"date"`  // "YYYY-MM-DD"
	DateUnix        int64  `json:"dateUnix"`
	FirstEventToday bool   `json:"firstEventToday"`
	StartTime       int64  `json:"startTime"` // epoch ms
	EndTime         int64  `json:"endTime"`   // epoch ms
}

// Announcement is the canonical daily-message entry. A full day's batch is
// persisted as a single document keyed by date.
type Announcement struct {
	Key         string `json:"key"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Information string `json:"information"`
	Location    string `json:"location"`
	HeaderColor string `json:"headerColor"`
}
