// Package pipeline orchestrates the nine content stages from keyword
// discovery through analytics setup.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/config"
	"github.com/sells-group/blogforge/internal/keyword"
	"github.com/sells-group/blogforge/internal/model"
	"github.com/sells-group/blogforge/internal/store"
)

// Pipeline orchestrates stages 1-9 of the content pipeline. Stages run
// strictly in sequence; the first stage error aborts the run.
type Pipeline struct {
	keywords  KeywordDiscoverer
	content   ContentCreator
	grammar   GrammarChecker
	visual    VisualGenerator
	publisher Publisher
	monetizer Monetizer
	social    SocialPromoter
	email     EmailDrafter
	analytics AnalyticsConfigurator
	store     store.Store
}

// New creates a Pipeline with all stage dependencies. The store may be nil,
// in which case run history is not recorded.
func New(
	keywords KeywordDiscoverer,
	content ContentCreator,
	grammar GrammarChecker,
	visual VisualGenerator,
	publisher Publisher,
	monetizer Monetizer,
	social SocialPromoter,
	email EmailDrafter,
	analytics AnalyticsConfigurator,
	st store.Store,
) *Pipeline {
	return &Pipeline{
		keywords:  keywords,
		content:   content,
		grammar:   grammar,
		visual:    visual,
		publisher: publisher,
		monetizer: monetizer,
		social:    social,
		email:     email,
		analytics: analytics,
		store:     st,
	}
}

// Build constructs every stage from configuration. Construction is
// all-or-nothing: the first stage that rejects its options aborts the build,
// so a Pipeline either has all nine stages or does not exist.
func Build(cfg *config.Config, st store.Store) (*Pipeline, error) {
	keywords, err := keyword.BuildDiscoverer(cfg.KeywordDiscovery)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build keyword discovery")
	}
	content, err := NewStubContentCreator(cfg.ContentCreation)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build content creation")
	}
	grammar, err := NewStubGrammarChecker(cfg.GrammarCheck)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build grammar check")
	}
	visual, err := NewStubVisualGenerator(cfg.VisualGenerator)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build visual generator")
	}
	publisher, err := NewStubPublisher(cfg.Publisher)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build publisher")
	}
	monetizer, err := NewStubMonetizer(cfg.Monetization)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build monetizer")
	}
	social, err := NewStubSocialPromoter(cfg.SocialPromotion)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build social promoter")
	}
	email, err := NewStubEmailDrafter(cfg.EmailDrafter)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build email drafter")
	}
	analytics, err := NewStubAnalyticsConfigurator(cfg.Analytics)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build analytics")
	}

	return New(keywords, content, grammar, visual, publisher, monetizer, social, email, analytics, st), nil
}

// Run executes the full pipeline for one topic. It never returns an error:
// any stage failure is captured in the result with status "error" and the
// message of the failing stage.
func (p *Pipeline) Run(ctx context.Context, topic string) model.PipelineRunResult {
	log := zap.L().With(zap.String("topic", topic))
	log.Info("pipeline: starting run")

	runID := p.recordStart(ctx, topic, log)

	result := p.execute(ctx, topic, log)

	p.recordFinish(ctx, runID, &result, log)
	return result
}

func (p *Pipeline) execute(ctx context.Context, topic string, log *zap.Logger) model.PipelineRunResult {
	// Stage 1: keyword discovery. Total by construction; no error branch.
	keywords := p.keywords.Discover(ctx, topic)
	log.Info("pipeline: keywords discovered",
		zap.String("source", keywords.Source),
		zap.Int("related_queries", len(keywords.RelatedQueries)),
	)

	// Stage 2: content creation.
	content, err := p.content.Create(ctx, keywords)
	if err != nil {
		return stageError(log, "content_creation", err)
	}

	// Stage 3: grammar check.
	content, err = p.grammar.Check(ctx, content)
	if err != nil {
		return stageError(log, "grammar_check", err)
	}

	// Stage 4: visual generation.
	images, err := p.visual.Generate(ctx, content)
	if err != nil {
		return stageError(log, "visual_generation", err)
	}

	// Stage 5: publishing.
	url, err := p.publisher.Publish(ctx, content, images)
	if err != nil {
		return stageError(log, "publishing", err)
	}

	// Stage 6: monetization. Its output is a side effect on the published
	// post; downstream stages keep working from the un-monetized content.
	monetized, err := p.monetizer.Apply(ctx, content, url)
	if err != nil {
		return stageError(log, "monetization", err)
	}
	log.Info("pipeline: monetization complete",
		zap.Int("ad_slots", monetized.AdSlots),
		zap.String("network", monetized.Network),
	)

	// Stage 7: social promotion.
	posts, err := p.social.Promote(ctx, url, content)
	if err != nil {
		return stageError(log, "social_promotion", err)
	}

	// Stage 8: email drafting.
	draft, err := p.email.Draft(ctx, url, content)
	if err != nil {
		return stageError(log, "email_drafting", err)
	}

	// Stage 9: analytics setup.
	if err := p.analytics.SetupTracking(ctx, url); err != nil {
		return stageError(log, "analytics_setup", err)
	}

	log.Info("pipeline: run complete",
		zap.String("url", url),
		zap.Int("social_posts", len(posts)),
	)

	return model.PipelineRunResult{
		Status:      model.ResultStatusSuccess,
		URL:         url,
		SocialPosts: posts,
		EmailDraft:  &draft,
	}
}

func stageError(log *zap.Logger, stage string, err error) model.PipelineRunResult {
	log.Error("pipeline: stage failed", zap.String("stage", stage), zap.Error(err))
	return model.PipelineRunResult{
		Status:  model.ResultStatusError,
		Message: err.Error(),
	}
}

// recordStart creates the run row. Store failures are logged and otherwise
// ignored so history never blocks content production.
func (p *Pipeline) recordStart(ctx context.Context, topic string, log *zap.Logger) string {
	if p.store == nil {
		return ""
	}
	run, err := p.store.CreateRun(ctx, topic)
	if err != nil {
		log.Warn("pipeline: failed to create run record", zap.Error(err))
		return ""
	}
	return run.ID
}

func (p *Pipeline) recordFinish(ctx context.Context, runID string, result *model.PipelineRunResult, log *zap.Logger) {
	if p.store == nil || runID == "" {
		return
	}
	if err := p.store.CompleteRun(ctx, runID, result); err != nil {
		log.Warn("pipeline: failed to save run result", zap.Error(err))
	}
}
