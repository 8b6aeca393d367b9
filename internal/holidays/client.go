// Package holidays fetches public holidays from the date.nager.at API with
// a 24-hour cache in the storage port. Failures degrade to the stale cache
// or an empty list; nothing here may ever block or break the timer.
package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stehauf/internal/clock"
	"stehauf/internal/storage"
)

const (
	defaultBaseURL = "https://date.nager.at/api/v3/publicholidays"
	cacheTTL       = 24 * time.Hour
	fetchTimeout   = 10 * time.Second
)

// Holiday is one public holiday as reported by the API.
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// cacheEntry is the persisted shape of one year's holiday list.
type cacheEntry struct {
	Holidays  []Holiday `json:"holidays"`
	FetchedAt int64     `json:"timestamp"`
}

// Client fetches and caches holiday lists for one country.
type Client struct {
	httpClient *http.Client
	kv         storage.Store
	log        *zap.SugaredLogger
	clock      clock.Clock
	country    string
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a holiday client for the given ISO country code.
func NewClient(kv storage.Store, log *zap.SugaredLogger, clk clock.Clock, country string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		kv:         kv,
		log:        log,
		clock:      clk,
		country:    country,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Holidays returns the public holidays for the given year. A cache entry
// younger than 24 hours is served directly; otherwise the API is queried
// and the cache refreshed. On any failure the stale cache is served if
// present, else an empty list.
func (c *Client) Holidays(ctx context.Context, year int) []Holiday {
	key := c.cacheKey(year)
	now := c.clock.Now()

	cached := storage.ReadJSON(c.kv, c.log, key, cacheEntry{})
	if cached.FetchedAt > 0 && now.Sub(time.UnixMilli(cached.FetchedAt)) < cacheTTL {
		return cached.Holidays
	}

	fetched, err := c.fetch(ctx, year)
	if err != nil {
		c.log.Warnw("holiday fetch failed", "year", year, "error", err)
		return cached.Holidays
	}

	storage.WriteJSON(c.kv, c.log, key, cacheEntry{Holidays: fetched, FetchedAt: now.UnixMilli()})
	return fetched
}

func (c *Client) fetch(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", c.baseURL, year, c.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return holidays, nil
}

func (c *Client) cacheKey(year int) string {
	return fmt.Sprintf("holidays_%d_%s", year, c.country)
}

// IsHoliday reports whether the given YYYY-MM-DD date appears in the list.
func IsHoliday(date string, holidays []Holiday) bool {
	for _, h := range holidays {
		if h.Date == date {
			return true
		}
	}
	return false
}
