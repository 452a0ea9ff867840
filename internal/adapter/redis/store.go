// Package redis backs the domain document-store port with a Redis database.
// Each document is one JSON value at key "<collection>:<docKey>"; per-key
// SET/DEL gives the atomic per-document writes reconciliation relies on.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

// Store implements domain.Store.
type Store struct {
	client *redis.Client
}

// NewStore connects a Store to the Redis instance at addr.
func NewStore(addr string, db int) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
	}
}

// NewStoreWithClient wraps an existing client; tests hand in a miniredis-backed one.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Collection returns a named document collection.
func (s *Store) Collection(name string) domain.Collection {
	return &collection{client: s.client, name: name}
}

type collection struct {
	client *redis.Client
	name   string
}

func (c *collection) docKey(key string) string {
	return c.name + ":" + key
}

// Keys lists all document keys in the collection via SCAN.
func (c *collection) Keys(ctx context.Context) ([]string, error) {
	prefix := c.name + ":"
	var keys []string

	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan collection %s: %w", c.name, err)
	}
	return keys, nil
}

func (c *collection) Get(ctx context.Context, key string, out any) error {
	data, err := c.client.Get(ctx, c.docKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s/%s: %w", c.name, key, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", c.name, key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) Set(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, key, err)
	}
	if err := c.client.Set(ctx, c.docKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("set %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.docKey(key)).Err(); err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, key, err)
	}
	return nil
}
