package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// SearchCriteria is forwarded to the Yelp business search unmodified. Either
// Latitude+Longitude or Location is set, never both.
type SearchCriteria struct {
	Latitude  string
	Longitude string
	Location  string
}

// Client is a thin client for the Yelp Fusion API. Search results are relayed
// to our callers byte-for-byte; no transformation or filtering happens here.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SearchBusinesses calls GET {base}/businesses/search and returns the raw
// response body. Upstream failures surface with the upstream's own message.
func (c *Client) SearchBusinesses(ctx context.Context, crit SearchCriteria) ([]byte, error) {
	q := url.Values{}
	if crit.Location != "" {
		q.Set("location", crit.Location)
	} else {
		q.Set("latitude", crit.Latitude)
		q.Set("longitude", crit.Longitude)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/businesses/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("yelp search failed: %s", upstreamMessage(resp.StatusCode, body))
	}
	return body, nil
}

// upstreamMessage extracts Yelp's error description when present so clients
// see the upstream's message, falling back to the HTTP status.
func upstreamMessage(status int, body []byte) string {
	var parsed struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Description != "" {
		return parsed.Error.Description
	}
	return http.StatusText(status)
}
