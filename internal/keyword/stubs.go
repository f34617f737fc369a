package keyword

import (
	"context"
	"time"

	"github.com/sells-group/blogforge/pkg/keywordmetrics"
	"github.com/sells-group/blogforge/pkg/serpwatch"
	"github.com/sells-group/blogforge/pkg/trendscout"
)

// Compile-time interface checks.
var (
	_ serpwatch.Client      = (*StubSerpWatchClient)(nil)
	_ keywordmetrics.Client = (*StubKeywordMetricsClient)(nil)
	_ trendscout.Client     = (*StubTrendScoutClient)(nil)
)

// simDelay approximates network latency in simulation mode.
const simDelay = 120 * time.Millisecond

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StubSerpWatchClient implements serpwatch.Client with canned SERP data.
type StubSerpWatchClient struct {
	Delay time.Duration
	Err   error
}

// Search implements serpwatch.Client.
func (s *StubSerpWatchClient) Search(ctx context.Context, query string) (*serpwatch.SearchResponse, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &serpwatch.SearchResponse{
		Query: query,
		Organic: []serpwatch.OrganicResult{
			{Position: 1, Title: "The Complete Guide to " + query, URL: "https://example.com/" + NormalizeTopic(query)},
			{Position: 2, Title: query + " Explained", URL: "https://example.org/articles/" + NormalizeTopic(query)},
			{Position: 3, Title: "Top Resources for " + query, URL: "https://example.net/resources/" + NormalizeTopic(query)},
		},
		RelatedSearches: []string{
			query + " basics",
			query + " vs alternatives",
			"best " + query + " tools",
			query + " cost",
			query + " reviews",
		},
	}, nil
}

// StubKeywordMetricsClient implements keywordmetrics.Client with canned data.
type StubKeywordMetricsClient struct {
	Delay time.Duration
	Err   error
}

// Lookup implements keywordmetrics.Client.
func (s *StubKeywordMetricsClient) Lookup(ctx context.Context, req keywordmetrics.LookupRequest) (*keywordmetrics.LookupResponse, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &keywordmetrics.LookupResponse{
		Keyword:      req.Keyword,
		SearchVolume: 12100,
		CPC:          1.84,
		Competition:  0.42,
		Suggestions: []string{
			req.Keyword + " for beginners",
			"how does " + req.Keyword + " work",
			req.Keyword + " pricing",
			"cheap " + req.Keyword,
			req.Keyword + " comparison",
		},
	}, nil
}

// StubTrendScoutClient implements trendscout.Client with canned trend data.
type StubTrendScoutClient struct {
	Delay time.Duration
	Err   error
}

// RelatedQueries implements trendscout.Client.
func (s *StubTrendScoutClient) RelatedQueries(ctx context.Context, topic string) (*trendscout.RelatedResponse, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &trendscout.RelatedResponse{
		Topic: topic,
		Top: []trendscout.TrendQuery{
			{Query: topic + " 101", Score: 100},
			{Query: "what is " + topic, Score: 87},
		},
		Rising: []trendscout.TrendQuery{
			{Query: topic + " this year", Score: 240},
		},
	}, nil
}
