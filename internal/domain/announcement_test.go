package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnnouncements(t *testing.T) {
	colors := ColorTable{"Dining": "#7a3b2e", "Default": "#888888"}

	t.Run("flattens categories keyed by ID", func(t *testing.T) {
		payload := map[string][]RawEventRecord{
			"Dining": {
				{ID: "101", Category: "Dining", Title: "Late night &amp; snacks", PostContent: "Open until 1am", Venue: "Lee Snack Bar", Type: "notice"},
			},
			"Facilities": {
				{ID: "102", Category: "Facilities", Title: "Water shutoff", Type: "notice"},
			},
		}

		out := NormalizeAnnouncements(payload, colors)
		require.Len(t, out, 2)

		a := out["101"]
		assert.Equal(t, "101", a.Key)
		assert.Equal(t, "Late night & snacks", a.Title)
		assert.Equal(t, "Open until 1am", a.Information)
		assert.Equal(t, "Lee Snack Bar", a.Location)
		assert.Equal(t, "#7a3b2e", a.HeaderColor)
		assert.Equal(t, "#888888", out["102"].HeaderColor)
	})

	t.Run("event-typed entries excluded", func(t *testing.T) {
		payload := map[string][]RawEventRecord{
			"Lectures": {
				{ID: "201", Type: "event", Title: "A talk"},
				{ID: "202", Type: "notice", Title: "A notice"},
			},
		}

		out := NormalizeAnnouncements(payload, colors)
		require.Len(t, out, 1)
		_, hasEvent := out["201"]
		assert.False(t, hasEvent)
		assert.Equal(t, "A notice", out["202"].Title)
	})

	t.Run("duplicate ID overwrites deterministically", func(t *testing.T) {
		payload := map[string][]RawEventRecord{
			"Music": {{ID: "301", Category: "Music", Title: "Cross-listed"}},
			"Arts":  {{ID: "301", Category: "Arts", Title: "Cross-listed"}},
		}

		// Sorted category order: the lexicographically last category wins,
		// every run.
		for range 5 {
			out := NormalizeAnnouncements(payload, colors)
			require.Len(t, out, 1)
			assert.Equal(t, "Music", out["301"].Category)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		out := NormalizeAnnouncements(nil, colors)
		assert.Empty(t, out)
	})
}
