package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// date keys.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Today returns the current date key ("YYYY-MM-DD") in the given zone.
// Daily-snapshot documents are keyed by this value.
func Today(loc *time.Location) string {
	return clock.Now().In(loc).Format("2006-01-02")
}

// NowUnixMilli returns the current time as epoch milliseconds.
func NowUnixMilli() int64 {
	return clock.Now().UnixMilli()
}
