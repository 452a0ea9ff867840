package domain

import (
	"html"
	"strings"
)

// DefaultCourse labels menu items whose upstream course is blank.
const DefaultCourse = "Entrees"

// standardMeals is the allow-list of recognized meal labels. Per-location
// extras (e.g. a snack bar) are configured, not hardcoded.
var standardMeals = map[string]bool{
	"breakfast": true,
	"brunch":    true,
	"lunch":     true,
	"dinner":    true,
}

// RawMenuItem is one row of a dining location's upstream menu feed.
type RawMenuItem struct {
	Meal        string `json:"meal"`
	Course      string `json:"course"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuItem is the canonical menu entry.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Menu groups a location's items two levels deep: meal → course → items.
// Meal keys are lowercased.
type Menu map[string]map[string][]MenuItem

// DiningDay is the per-date document persisted to the diningMenus
// collection: every location's menu plus an error marker for each location
// whose fetch failed that run.
type DiningDay struct {
	Menus  map[string]Menu   `json:"menus"`
	Errors map[string]string `json:"errors,omitempty"`
}

// GroupMenu buckets raw items into a Menu. Items whose meal label is neither
// a standard meal nor in extraMeals (both case-insensitive) are silently
// dropped; blank course labels are coerced to DefaultCourse before grouping.
func GroupMenu(items []RawMenuItem, extraMeals []string) Menu {
	extra := make(map[string]bool, len(extraMeals))
	for _, m := range extraMeals {
		extra[strings.ToLower(m)] = true
	}

	menu := make(Menu)
	for _, item := range items {
		meal := strings.ToLower(strings.TrimSpace(item.Meal))
		if !standardMeals[meal] && !extra[meal] {
			continue
		}
		course := strings.TrimSpace(html.UnescapeString(item.Course))
		if course == "" {
			course = DefaultCourse
		}
		if menu[meal] == nil {
			menu[meal] = make(map[string][]MenuItem)
		}
		menu[meal][course] = append(menu[meal][course], MenuItem{
			Name:        html.UnescapeString(item.Name),
			Description: html.UnescapeString(item.Description),
		})
	}
	return menu
}
