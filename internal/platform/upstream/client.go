// Package upstream is the console's HTTP collaborator: a thin JSON client
// for the platform backend. It attaches the bearer token from the injected
// session store, translates status codes into the console's failure
// taxonomy, and hands raw, loosely-typed records to the per-resource
// normalization adapters.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/session"
)

// Query carries collection query parameters. Filters are passed through as
// extra query params untouched.
type Query struct {
	Page    int
	Limit   int
	Sort    string
	Order   string
	Filters map[string]string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Client issues requests against the upstream base URL.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	log      zerolog.Logger
}

// NewClient builds a client. The session store is consulted per request so
// a login or 401 mid-process takes effect immediately.
func NewClient(baseURL string, timeout time.Duration, sessions *session.Store, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log.With().Str("component", "upstream").Logger(),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := c.sessions.Current(); ok {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.log.Warn().Str("path", path).Msg("upstream returned 401, clearing session")
		if err := c.sessions.Clear(); err != nil {
			c.log.Error().Err(err).Msg("clearing session state")
		}
		return nil, ErrSessionExpired
	}
	return resp, nil
}

// collectionEnvelope tolerates backends that wrap arrays in a data field.
type collectionEnvelope struct {
	Data []map[string]any `json:"data"`
}

// GetCollection fetches a collection endpoint and returns the raw records.
// A 404 here means the endpoint itself is absent and yields
// ErrCollectionMissing; an empty 2xx array is returned as-is.
func (c *Client) GetCollection(ctx context.Context, resource, path string, q Query) ([]map[string]any, error) {
	resp, err := c.do(ctx, http.MethodGet, path, q.values(), nil)
	if err != nil {
		if err == ErrSessionExpired {
			return nil, err
		}
		return nil, &FetchFailure{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCollectionMissing
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchFailure{Resource: resource, Status: resp.StatusCode,
			Err: fmt.Errorf("upstream status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchFailure{Resource: resource, Err: err}
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}
	var env collectionEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data, nil
	}
	return nil, &FetchFailure{Resource: resource,
		Err: fmt.Errorf("unexpected collection payload for %s", path)}
}

// GetOne fetches a single record. A 404 is a NotFoundError whose message is
// the end-user one.
func (c *Client) GetOne(ctx context.Context, resource, path, id string) (map[string]any, error) {
	resp, err := c.do(ctx, http.MethodGet, path+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if err == ErrSessionExpired {
			return nil, err
		}
		return nil, &FetchFailure{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: resource, ID: id}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchFailure{Resource: resource, Status: resp.StatusCode,
			Err: fmt.Errorf("upstream status %d", resp.StatusCode)}
	}

	var record map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, &FetchFailure{Resource: resource, Err: err}
	}
	// Some endpoints wrap single records the same way as collections.
	if data, ok := record["data"].(map[string]any); ok && len(record) == 1 {
		return data, nil
	}
	return record, nil
}

// PostJSON posts a JSON body and decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, resource, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", resource, err)
	}
	resp, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload))
	if err != nil {
		if err == ErrSessionExpired {
			return err
		}
		return &FetchFailure{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchFailure{Resource: resource, Status: resp.StatusCode,
			Err: fmt.Errorf("upstream status %d", resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchFailure{Resource: resource, Err: err}
	}
	return nil
}
