package keyword

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/blogforge/internal/model"
	"github.com/sells-group/blogforge/pkg/keywordmetrics"
	"github.com/sells-group/blogforge/pkg/serpwatch"
	"github.com/sells-group/blogforge/pkg/trendscout"
)

// Provider identifiers, also used as KeywordResult.Source values.
const (
	ProviderSerpWatch      = "serpwatch"
	ProviderKeywordMetrics = "keywordmetrics"
	ProviderTrendScout     = "trendscout"
)

const suggestionCount = 10

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		rps = 5
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// serpWatchProvider maps SERP results onto keyword data: related searches
// become query variants and organic hits become top URLs.
type serpWatchProvider struct {
	client  serpwatch.Client
	limiter *rate.Limiter
}

// NewSerpWatchProvider wraps a SerpWatch client as a chain provider.
func NewSerpWatchProvider(client serpwatch.Client, rps float64) Provider {
	return &serpWatchProvider{client: client, limiter: newLimiter(rps)}
}

func (p *serpWatchProvider) Name() string { return ProviderSerpWatch }

func (p *serpWatchProvider) Fetch(ctx context.Context, topic string) (*model.KeywordResult, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "serpwatch: rate limit wait")
	}

	resp, err := p.client.Search(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(resp.RelatedSearches) == 0 && len(resp.Organic) == 0 {
		return nil, eris.New("serpwatch: empty result")
	}

	urls := make([]string, 0, len(resp.Organic))
	for _, o := range resp.Organic {
		urls = append(urls, o.URL)
	}

	return &model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: resp.RelatedSearches,
		TopURLs:        urls,
		Metrics:        model.UnknownMetrics(),
		Source:         ProviderSerpWatch,
	}, nil
}

// keywordMetricsProvider is the only source that supplies real metric
// numbers, which is why it sits high in the chain order.
type keywordMetricsProvider struct {
	client  keywordmetrics.Client
	limiter *rate.Limiter
}

// NewKeywordMetricsProvider wraps a KeywordMetrics client as a chain provider.
func NewKeywordMetricsProvider(client keywordmetrics.Client, rps float64) Provider {
	return &keywordMetricsProvider{client: client, limiter: newLimiter(rps)}
}

func (p *keywordMetricsProvider) Name() string { return ProviderKeywordMetrics }

func (p *keywordMetricsProvider) Fetch(ctx context.Context, topic string) (*model.KeywordResult, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "keywordmetrics: rate limit wait")
	}

	resp, err := p.client.Lookup(ctx, keywordmetrics.LookupRequest{
		Keyword:     topic,
		Suggestions: suggestionCount,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Suggestions) == 0 {
		return nil, eris.New("keywordmetrics: empty result")
	}

	return &model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: resp.Suggestions,
		TopURLs:        []string{},
		Metrics: map[string]any{
			model.MetricSearchVolume: resp.SearchVolume,
			model.MetricCPC:          resp.CPC,
			model.MetricCompetition:  resp.Competition,
		},
		Source: ProviderKeywordMetrics,
	}, nil
}

// trendScoutProvider supplies query variants only: top queries first (they
// reflect sustained interest), rising queries after.
type trendScoutProvider struct {
	client  trendscout.Client
	limiter *rate.Limiter
}

// NewTrendScoutProvider wraps a TrendScout client as a chain provider.
func NewTrendScoutProvider(client trendscout.Client, rps float64) Provider {
	return &trendScoutProvider{client: client, limiter: newLimiter(rps)}
}

func (p *trendScoutProvider) Name() string { return ProviderTrendScout }

func (p *trendScoutProvider) Fetch(ctx context.Context, topic string) (*model.KeywordResult, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "trendscout: rate limit wait")
	}

	resp, err := p.client.RelatedQueries(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(resp.Top) == 0 && len(resp.Rising) == 0 {
		return nil, eris.New("trendscout: empty result")
	}

	queries := make([]string, 0, len(resp.Top)+len(resp.Rising))
	for _, q := range resp.Top {
		queries = append(queries, q.Query)
	}
	for _, q := range resp.Rising {
		queries = append(queries, q.Query)
	}

	return &model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: queries,
		TopURLs:        []string{},
		Metrics:        model.UnknownMetrics(),
		Source:         ProviderTrendScout,
	}, nil
}
