// Package wms fetches the campus WordPress events API (wp-json/wms/events/v1):
// the full events list and the category-keyed daily-messages payload.
package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

// Client is the upstream events-feed client. Transient failures are retried
// with exponential backoff before a run is failed.
type Client struct {
	http             *resty.Client
	eventsURL        string
	dailyMessagesURL string
}

// NewClient creates a feed client. retries is the number of re-attempts per
// request on transport errors and 5xx responses.
func NewClient(eventsURL, dailyMessagesURL string, timeout time.Duration, retries int) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:             httpClient,
		eventsURL:        eventsURL,
		dailyMessagesURL: dailyMessagesURL,
	}
}

// Events fetches the raw event list in feed order.
func (c *Client) Events(ctx context.Context) ([]domain.RawEventRecord, error) {
	var records []domain.RawEventRecord
	if err := c.getJSON(ctx, c.eventsURL, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DailyMessages fetches the category-keyed daily-messages payload.
func (c *Client) DailyMessages(ctx context.Context) (map[string][]domain.RawEventRecord, error) {
	var payload map[string][]domain.RawEventRecord
	if err := c.getJSON(ctx, c.dailyMessagesURL, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("get %s: status %d", url, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
