// Package rest implements the record store against a Supabase/PostgREST
// endpoint.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vitadash/vitadash/internal/records"
	"github.com/vitadash/vitadash/internal/store"
)

// Collection names on the remote store.
const (
	tableProfiles  = "profiles"
	tableWeights   = "weights"
	tableMeals     = "meals"
	tableWorkouts  = "workouts"
	tableHydration = "hydration"
	tableSleep     = "sleep"
	tableSteps     = "steps"
)

// Client reads records over the PostgREST query protocol. The zero value is
// not usable; set at least BaseURL.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// New returns a Client with a default HTTP timeout.
func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 12 * time.Second},
	}
}

var _ store.Store = (*Client)(nil)

// Profile implements store.Store.
func (c *Client) Profile(ctx context.Context, id string) (records.Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("identifier", "eq."+id)
	q.Set("limit", "1")

	rows, err := c.get(ctx, tableProfiles, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrUserNotFound
	}
	return rows[0], nil
}

// LatestWeight implements store.Store.
func (c *Client) LatestWeight(ctx context.Context, id string) (records.Row, error) {
	q := url.Values{}
	q.Set("select", "weight,created_at")
	q.Set("identifier", "eq."+id)
	q.Set("order", "created_at.desc")
	q.Set("limit", "1")

	rows, err := c.get(ctx, tableWeights, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Meals implements store.Store.
func (c *Client) Meals(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return c.rangeRead(ctx, tableMeals, id, start, end)
}

// Workouts implements store.Store.
func (c *Client) Workouts(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return c.rangeRead(ctx, tableWorkouts, id, start, end)
}

// Hydration implements store.Store.
func (c *Client) Hydration(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return c.rangeRead(ctx, tableHydration, id, start, end)
}

// Sleep implements store.Store.
func (c *Client) Sleep(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return c.rangeRead(ctx, tableSleep, id, start, end)
}

// Steps implements store.Store.
func (c *Client) Steps(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return c.rangeRead(ctx, tableSteps, id, start, end)
}

// Close implements store.Store. The HTTP client holds no resources that
// outlive requests.
func (c *Client) Close() error { return nil }

// rangeRead issues a day-scoped read: identifier match plus a half-open
// created_at window [start, end).
func (c *Client) rangeRead(ctx context.Context, table, id string, start, end time.Time) ([]records.Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("identifier", "eq."+id)
	q.Set("order", "created_at.asc")
	// Both bounds go on the same column: gte start, lt end.
	q.Add("created_at", "gte."+start.UTC().Format(time.RFC3339))
	q.Add("created_at", "lt."+end.UTC().Format(time.RFC3339))

	return c.get(ctx, table, q)
}

func (c *Client) get(ctx context.Context, table string, q url.Values) ([]records.Row, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("record store URL is not configured")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", base, table, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", table, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("apikey", c.APIKey)
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s request failed with status %d", table, resp.StatusCode)
	}

	// UseNumber keeps numeric columns distinguishable from the strings some
	// writers store in them; the records package normalizes both.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows []records.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", table, err)
	}
	return rows, nil
}
