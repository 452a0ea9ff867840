package domain

import (
	"context"
	"fmt"
)

// DefaultColorKey is the fallback entry every color table carries.
const DefaultColorKey = "Default"

// ColorTable maps category names to color tokens. It is maintained outside
// this service and read-only here.
type ColorTable map[string]string

// Resolve returns the color for a category, falling back to the table's
// Default entry when the category is unmapped.
func (t ColorTable) Resolve(category string) string {
	if color, ok := t[category]; ok && color != "" {
		return color
	}
	return t[DefaultColorKey]
}

// ReadCategoryColors loads the shared color table from the resources
// collection. Reads are idempotent; one read per job run is enough.
func ReadCategoryColors(ctx context.Context, store Store) (ColorTable, error) {
	var table ColorTable
	if err := store.Collection(CollectionResources).Get(ctx, DocCategoryColors, &table); err != nil {
		return nil, fmt.Errorf("read category colors: %w", err)
	}
	return table, nil
}
