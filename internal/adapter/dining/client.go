// Package dining fetches per-location menu feeds. Each configured dining
// location has its own endpoint serving a flat item list.
package dining

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

// Client is the dining-feed client, shared across locations.
type Client struct {
	http *resty.Client
}

// NewClient creates a menu client with the same retry policy as the events
// feed client.
func NewClient(timeout time.Duration, retries int) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// Menu fetches one location's raw item list.
func (c *Client) Menu(ctx context.Context, url string) ([]domain.RawMenuItem, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode())
	}

	var items []domain.RawMenuItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return items, nil
}
