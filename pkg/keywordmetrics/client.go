// Package keywordmetrics is a client for the KeywordMetrics keyword data API.
package keywordmetrics

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.keywordmetrics.io/v2"

// Client looks up search metrics and suggestions for a keyword.
type Client interface {
	Lookup(ctx context.Context, req LookupRequest) (*LookupResponse, error)
}

// LookupRequest is the request body for POST /keywords/lookup.
type LookupRequest struct {
	Keyword     string `json:"keyword"`
	Suggestions int    `json:"suggestions,omitempty"`
}

// LookupResponse is the response from POST /keywords/lookup.
type LookupResponse struct {
	Keyword      string   `json:"keyword"`
	SearchVolume int      `json:"search_volume"`
	CPC          float64  `json:"cpc"`
	Competition  float64  `json:"competition"`
	Suggestions  []string `json:"suggestions"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a KeywordMetrics API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Lookup(ctx context.Context, req LookupRequest) (*LookupResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/keywords/lookup", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("keywordmetrics: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result LookupResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: unmarshal response")
	}

	return &result, nil
}
