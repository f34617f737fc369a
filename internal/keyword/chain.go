package keyword

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/model"
)

// Provider is one keyword data source attempted by the fallback chain.
type Provider interface {
	// Name returns the provider identifier recorded as KeywordResult.Source.
	Name() string
	// Fetch looks up keyword data for a topic. It may fail with any error.
	Fetch(ctx context.Context, topic string) (*model.KeywordResult, error)
}

// Chain tries providers in a fixed priority order: the first success wins
// outright, with no merging or comparison across providers, and no retry of
// a failed provider within one call. Ordering encodes a quality preference,
// so providers are never raced in parallel.
type Chain struct {
	providers []Provider
}

// NewChain creates a chain over the given providers, in priority order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Resolve produces a keyword result for the topic. It is total: when every
// provider fails, the offline generator supplies the result, so Resolve never
// returns an error.
func (c *Chain) Resolve(ctx context.Context, topic string) model.KeywordResult {
	log := zap.L().With(zap.String("topic", topic))

	for _, p := range c.providers {
		result, err := p.Fetch(ctx, topic)
		if err != nil {
			log.Warn("keyword provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}
		log.Info("keyword provider succeeded", zap.String("provider", p.Name()))
		return *result
	}

	log.Info("all keyword providers failed, using offline fallback")
	return Generate(topic)
}
