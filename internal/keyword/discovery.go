// Package keyword implements the keyword discovery stage: an on-disk cache
// in front of a fallback chain of data providers, terminated by an offline
// generator so discovery always produces a result.
package keyword

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/config"
	"github.com/sells-group/blogforge/internal/model"
	"github.com/sells-group/blogforge/pkg/keywordmetrics"
	"github.com/sells-group/blogforge/pkg/serpwatch"
	"github.com/sells-group/blogforge/pkg/trendscout"
)

// Discoverer composes the cache and the fallback chain into the keyword
// discovery stage.
type Discoverer struct {
	cache *Cache
	chain *Chain
}

// NewDiscoverer creates a discoverer over an existing cache and chain.
func NewDiscoverer(cache *Cache, chain *Chain) *Discoverer {
	return &Discoverer{cache: cache, chain: chain}
}

// Discover returns keyword data for a topic, cache-aside: an existing cache
// entry is authoritative and short-circuits the chain with no freshness
// check. Exactly one result is produced per call.
func (d *Discoverer) Discover(ctx context.Context, topic string) model.KeywordResult {
	if cached, ok := d.cache.Get(topic); ok {
		zap.L().Debug("keyword cache hit",
			zap.String("topic", topic),
			zap.String("source", cached.Source),
		)
		return *cached
	}

	result := d.chain.Resolve(ctx, topic)
	d.cache.Put(topic, result)
	return result
}

// BuildDiscoverer constructs the discovery stage from configuration. In
// simulation mode the source clients are offline stubs with fixed delays;
// otherwise live HTTP clients are built from the configured keys and URLs.
func BuildDiscoverer(cfg config.KeywordDiscoveryConfig) (*Discoverer, error) {
	var chainCfg *ChainConfig
	if cfg.ChainConfig != "" {
		cc, err := LoadChainConfig(cfg.ChainConfig)
		if err != nil {
			return nil, err
		}
		chainCfg = cc
	}

	var (
		swClient serpwatch.Client
		kmClient keywordmetrics.Client
		tsClient trendscout.Client
	)
	if cfg.Simulate {
		swClient = &StubSerpWatchClient{Delay: simDelay}
		kmClient = &StubKeywordMetricsClient{Delay: simDelay}
		tsClient = &StubTrendScoutClient{Delay: simDelay}
	} else {
		swClient = serpwatch.NewClient(cfg.SerpWatch.Key, serpwatch.WithBaseURL(cfg.SerpWatch.BaseURL))
		kmClient = keywordmetrics.NewClient(cfg.KeywordMetrics.Key, keywordmetrics.WithBaseURL(cfg.KeywordMetrics.BaseURL))
		tsClient = trendscout.NewClient(cfg.TrendScout.Key, trendscout.WithBaseURL(cfg.TrendScout.BaseURL))
	}

	// Fixed priority order; the chain config can only disable entries.
	all := []Provider{
		NewSerpWatchProvider(swClient, cfg.RateLimit),
		NewKeywordMetricsProvider(kmClient, cfg.RateLimit),
		NewTrendScoutProvider(tsClient, cfg.RateLimit),
	}
	providers := make([]Provider, 0, len(all))
	for _, p := range all {
		if chainCfg.ProviderEnabled(p.Name()) {
			providers = append(providers, p)
		}
	}

	return NewDiscoverer(NewCache(cfg.CacheDir), NewChain(providers...)), nil
}
