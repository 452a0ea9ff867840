package domain

import (
	"context"
	"errors"
)

// Collection names in the document store.
const (
	CollectionEvents        = "events"
	CollectionDailyMessages = "dailyMessages"
	CollectionDiningMenus   = "diningMenus"
	CollectionResources     = "resources"
)

// Well-known document keys.
const (
	DocCategoryColors = "categoryColors"
	DocDefaultMenus   = "defaultMenus"

	// DocSortedIndex lives alongside event documents in the events
	// collection. Reconciliation must treat it as reserved or it would be
	// swept every run.
	DocSortedIndex = "sortedIndex"
)

// ErrNotFound is returned by Collection.Get for a missing document.
var ErrNotFound = errors.New("document not found")

// Store is the document-store port: named collections of JSON documents
// with per-document atomic writes.
type Store interface {
	Collection(name string) Collection
}

// Collection reads and writes documents by key. Set is an unconditional
// full-document upsert.
type Collection interface {
	Keys(ctx context.Context) ([]string, error)
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, doc any) error
	Delete(ctx context.Context, key string) error
}
