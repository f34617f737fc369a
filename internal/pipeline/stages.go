package pipeline

import (
	"context"

	"github.com/sells-group/blogforge/internal/model"
)

// Stage contracts. Each stage is constructed from its own configuration
// option group and consumed only by the orchestrator; all retry and fallback
// logic lives inside keyword discovery, every other stage is a plain
// transform.

// KeywordDiscoverer produces keyword data for a topic. Discovery is total:
// its internal fallback chain guarantees a result.
type KeywordDiscoverer interface {
	Discover(ctx context.Context, topic string) model.KeywordResult
}

// ContentCreator writes a draft article from keyword data.
type ContentCreator interface {
	Create(ctx context.Context, keywords model.KeywordResult) (model.Content, error)
}

// GrammarChecker proofreads content and may transform it.
type GrammarChecker interface {
	Check(ctx context.Context, content model.Content) (model.Content, error)
}

// VisualGenerator produces images for an article.
type VisualGenerator interface {
	Generate(ctx context.Context, content model.Content) ([]model.Image, error)
}

// Publisher uploads the article and returns its public URL.
type Publisher interface {
	Publish(ctx context.Context, content model.Content, images []model.Image) (string, error)
}

// Monetizer applies ad placements to published content.
type Monetizer interface {
	Apply(ctx context.Context, content model.Content, url string) (model.MonetizedContent, error)
}

// SocialPromoter writes promotional posts for a published article.
type SocialPromoter interface {
	Promote(ctx context.Context, url string, content model.Content) ([]model.SocialPost, error)
}

// EmailDrafter writes a newsletter draft for a published article.
type EmailDrafter interface {
	Draft(ctx context.Context, url string, content model.Content) (model.EmailDraft, error)
}

// AnalyticsConfigurator sets up tracking for a published URL.
type AnalyticsConfigurator interface {
	SetupTracking(ctx context.Context, url string) error
}
