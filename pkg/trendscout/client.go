// Package trendscout is a client for the TrendScout search trends API.
package trendscout

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.trendscout.app/v1"

// Client fetches related and rising queries for a topic.
type Client interface {
	RelatedQueries(ctx context.Context, topic string) (*RelatedResponse, error)
}

// RelatedResponse is the response from GET /related.
type RelatedResponse struct {
	Topic  string       `json:"topic"`
	Top    []TrendQuery `json:"top"`
	Rising []TrendQuery `json:"rising"`
}

// TrendQuery is one related query with its relative interest score.
type TrendQuery struct {
	Query string `json:"query"`
	Score int    `json:"score"`
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

// NewClient creates a TrendScout API client.
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

func (c *httpClient) RelatedQueries(ctx context.Context, topic string) (*RelatedResponse, error) {
	endpoint := c.baseURL + "/related?topic=" + url.QueryEscape(topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "trendscout: create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "trendscout: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "trendscout: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("trendscout: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result RelatedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "trendscout: unmarshal response")
	}

	return &result, nil
}
