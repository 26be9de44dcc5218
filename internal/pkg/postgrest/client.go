package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the remote store's REST interface. Every call is an
// independent round-trip bounded by the configured timeout; the client holds
// no connection state across requests.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new store client for the given REST base URL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StoreError represents a failed round-trip to the store: either an error
// response or a transport failure. Message carries the store's raw error text.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("store error [%d]: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("store unreachable: %s", e.Message)
}

// Query builds the equality-filter and ordering parameters understood by the
// store, e.g. "employee_id=eq.EMP001&order=date.desc".
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Eq adds an equality filter on a column. Multiple filters combine with AND.
func (q *Query) Eq(column, value string) *Query {
	q.values.Set(column, "eq."+value)
	return q
}

// OrderDesc orders the result by a column, descending.
func (q *Query) OrderDesc(column string) *Query {
	q.values.Set("order", column+".desc")
	return q
}

func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}

// Select fetches rows from a table and decodes them into out.
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	return c.do(ctx, http.MethodGet, table, q, nil, out)
}

// Insert creates rows and decodes the returned representation into out.
func (c *Client) Insert(ctx context.Context, table string, payload any, out any) error {
	return c.do(ctx, http.MethodPost, table, nil, payload, out)
}

// Update patches the rows matched by q and decodes the returned
// representation into out. Only the fields present in patch are touched.
func (c *Client) Update(ctx context.Context, table string, q *Query, patch any, out any) error {
	return c.do(ctx, http.MethodPatch, table, q, patch, out)
}

// Delete removes the rows matched by q.
func (c *Client) Delete(ctx context.Context, table string, q *Query) error {
	return c.do(ctx, http.MethodDelete, table, q, nil, nil)
}

func (c *Client) do(ctx context.Context, method, table string, q *Query, payload any, out any) error {
	endpoint := c.baseURL + "/" + table
	if rawQuery := q.Encode(); rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode store payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build store request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &StoreError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StoreError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		return &StoreError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &StoreError{StatusCode: resp.StatusCode, Message: "unexpected store response: " + err.Error()}
		}
	}

	return nil
}
