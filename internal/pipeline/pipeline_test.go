package pipeline

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/blogforge/internal/config"
	"github.com/sells-group/blogforge/internal/model"
)

type pipelineMocks struct {
	keywords  *mockKeywordDiscoverer
	content   *mockContentCreator
	grammar   *mockGrammarChecker
	visual    *mockVisualGenerator
	publisher *mockPublisher
	monetizer *mockMonetizer
	social    *mockSocialPromoter
	email     *mockEmailDrafter
	analytics *mockAnalyticsConfigurator
}

func newPipelineMocks() *pipelineMocks {
	return &pipelineMocks{
		keywords:  &mockKeywordDiscoverer{},
		content:   &mockContentCreator{},
		grammar:   &mockGrammarChecker{},
		visual:    &mockVisualGenerator{},
		publisher: &mockPublisher{},
		monetizer: &mockMonetizer{},
		social:    &mockSocialPromoter{},
		email:     &mockEmailDrafter{},
		analytics: &mockAnalyticsConfigurator{},
	}
}

func (m *pipelineMocks) pipeline() *Pipeline {
	return New(m.keywords, m.content, m.grammar, m.visual, m.publisher,
		m.monetizer, m.social, m.email, m.analytics, nil)
}

func testKeywords(topic string) model.KeywordResult {
	return model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: []string{topic + " guide"},
		TopURLs:        []string{},
		Metrics:        model.UnknownMetrics(),
		Source:         "serpwatch",
	}
}

func TestPipeline_Run_Success(t *testing.T) {
	m := newPipelineMocks()
	ctx := context.Background()

	raw := model.Content{Title: "Remote Work", Body: "draft", WordCount: 1}
	checked := model.Content{Title: "Remote Work", Body: "clean", WordCount: 1}
	images := []model.Image{{URL: "https://cdn.example.com/images/remote-work-1.png"}}
	posts := []model.SocialPost{{Platform: "twitter", Text: "New post"}}
	draft := model.EmailDraft{Subject: "New on the blog: Remote Work", Sender: "The Blog Team"}

	m.keywords.On("Discover", ctx, "remote work").Return(testKeywords("remote work"))
	m.content.On("Create", ctx, testKeywords("remote work")).Return(raw, nil)
	m.grammar.On("Check", ctx, raw).Return(checked, nil)
	m.visual.On("Generate", ctx, checked).Return(images, nil)
	m.publisher.On("Publish", ctx, checked, images).Return("https://blog.example.com/posts/remote-work", nil)
	m.monetizer.On("Apply", ctx, checked, "https://blog.example.com/posts/remote-work").
		Return(model.MonetizedContent{Content: checked, AdSlots: 2, Network: "adsense"}, nil)
	m.social.On("Promote", ctx, "https://blog.example.com/posts/remote-work", checked).Return(posts, nil)
	m.email.On("Draft", ctx, "https://blog.example.com/posts/remote-work", checked).Return(draft, nil)
	m.analytics.On("SetupTracking", ctx, "https://blog.example.com/posts/remote-work").Return(nil)

	result := m.pipeline().Run(ctx, "remote work")

	assert.Equal(t, model.ResultStatusSuccess, result.Status)
	assert.Equal(t, "https://blog.example.com/posts/remote-work", result.URL)
	assert.Equal(t, posts, result.SocialPosts)
	require.NotNil(t, result.EmailDraft)
	assert.Equal(t, draft, *result.EmailDraft)
	assert.Empty(t, result.Message)

	m.keywords.AssertExpectations(t)
	m.analytics.AssertExpectations(t)
}

func TestPipeline_Run_AbortsOnFirstFailure(t *testing.T) {
	m := newPipelineMocks()
	ctx := context.Background()

	raw := model.Content{Title: "Topic", Body: "draft"}
	m.keywords.On("Discover", ctx, "topic").Return(testKeywords("topic"))
	m.content.On("Create", ctx, mock.Anything).Return(raw, nil)
	m.grammar.On("Check", ctx, raw).Return(model.Content{}, eris.New("checker unavailable"))

	result := m.pipeline().Run(ctx, "topic")

	assert.Equal(t, model.ResultStatusError, result.Status)
	assert.Contains(t, result.Message, "checker unavailable")
	assert.Empty(t, result.URL)
	assert.Nil(t, result.EmailDraft)

	// Nothing past the failing stage runs.
	m.visual.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	m.monetizer.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
	m.social.AssertNotCalled(t, "Promote", mock.Anything, mock.Anything, mock.Anything)
	m.email.AssertNotCalled(t, "Draft", mock.Anything, mock.Anything, mock.Anything)
	m.analytics.AssertNotCalled(t, "SetupTracking", mock.Anything, mock.Anything)
}

func TestPipeline_Run_ContentCreationFails(t *testing.T) {
	m := newPipelineMocks()
	ctx := context.Background()

	m.keywords.On("Discover", ctx, "topic").Return(testKeywords("topic"))
	m.content.On("Create", ctx, mock.Anything).Return(model.Content{}, eris.New("empty primary keyword"))

	result := m.pipeline().Run(ctx, "topic")

	assert.Equal(t, model.ResultStatusError, result.Status)
	assert.Contains(t, result.Message, "empty primary keyword")
	m.grammar.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestPipeline_Run_AnalyticsFails(t *testing.T) {
	m := newPipelineMocks()
	ctx := context.Background()

	content := model.Content{Title: "Topic", Body: "body"}
	m.keywords.On("Discover", ctx, "topic").Return(testKeywords("topic"))
	m.content.On("Create", ctx, mock.Anything).Return(content, nil)
	m.grammar.On("Check", ctx, content).Return(content, nil)
	m.visual.On("Generate", ctx, content).Return([]model.Image{}, nil)
	m.publisher.On("Publish", ctx, content, []model.Image{}).Return("https://blog.example.com/posts/topic", nil)
	m.monetizer.On("Apply", ctx, content, mock.Anything).Return(model.MonetizedContent{Content: content}, nil)
	m.social.On("Promote", ctx, mock.Anything, content).Return([]model.SocialPost{}, nil)
	m.email.On("Draft", ctx, mock.Anything, content).Return(model.EmailDraft{}, nil)
	m.analytics.On("SetupTracking", ctx, mock.Anything).Return(eris.New("tracking backend down"))

	result := m.pipeline().Run(ctx, "topic")

	// Even a last-stage failure yields an error result with no URL.
	assert.Equal(t, model.ResultStatusError, result.Status)
	assert.Contains(t, result.Message, "tracking backend down")
	assert.Empty(t, result.URL)
}

func TestPipeline_Run_RecordsHistory(t *testing.T) {
	m := newPipelineMocks()
	st := &mockStore{}
	ctx := context.Background()

	m.keywords.On("Discover", ctx, "topic").Return(testKeywords("topic"))
	m.content.On("Create", ctx, mock.Anything).Return(model.Content{}, eris.New("boom"))

	st.On("CreateRun", ctx, "topic").Return(&model.Run{ID: "run-1", Topic: "topic"}, nil)
	st.On("CompleteRun", ctx, "run-1", mock.MatchedBy(func(r *model.PipelineRunResult) bool {
		return r.Status == model.ResultStatusError
	})).Return(nil)

	p := New(m.keywords, m.content, m.grammar, m.visual, m.publisher,
		m.monetizer, m.social, m.email, m.analytics, st)
	result := p.Run(ctx, "topic")

	assert.Equal(t, model.ResultStatusError, result.Status)
	st.AssertExpectations(t)
}

func TestPipeline_Run_StoreFailureDoesNotAbort(t *testing.T) {
	m := newPipelineMocks()
	st := &mockStore{}
	ctx := context.Background()

	content := model.Content{Title: "Topic", Body: "body"}
	m.keywords.On("Discover", ctx, "topic").Return(testKeywords("topic"))
	m.content.On("Create", ctx, mock.Anything).Return(content, nil)
	m.grammar.On("Check", ctx, content).Return(content, nil)
	m.visual.On("Generate", ctx, content).Return([]model.Image{}, nil)
	m.publisher.On("Publish", ctx, content, []model.Image{}).Return("https://blog.example.com/posts/topic", nil)
	m.monetizer.On("Apply", ctx, content, mock.Anything).Return(model.MonetizedContent{Content: content}, nil)
	m.social.On("Promote", ctx, mock.Anything, content).Return([]model.SocialPost{}, nil)
	m.email.On("Draft", ctx, mock.Anything, content).Return(model.EmailDraft{}, nil)
	m.analytics.On("SetupTracking", ctx, mock.Anything).Return(nil)

	st.On("CreateRun", ctx, "topic").Return(nil, eris.New("db locked"))

	p := New(m.keywords, m.content, m.grammar, m.visual, m.publisher,
		m.monetizer, m.social, m.email, m.analytics, st)
	result := p.Run(ctx, "topic")

	// The run still succeeds; CompleteRun is skipped without a run row.
	assert.Equal(t, model.ResultStatusSuccess, result.Status)
	st.AssertNotCalled(t, "CompleteRun", mock.Anything, mock.Anything, mock.Anything)
}

// --- Build ---

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.KeywordDiscovery.CacheDir = t.TempDir()
	return cfg
}

func TestBuild_AllStages(t *testing.T) {
	p, err := Build(testConfig(t), nil)
	require.NoError(t, err)
	require.NotNil(t, p)

	result := p.Run(context.Background(), "remote work")
	assert.Equal(t, model.ResultStatusSuccess, result.Status)
	assert.NotEmpty(t, result.URL)
	assert.NotEmpty(t, result.SocialPosts)
	require.NotNil(t, result.EmailDraft)
}

func TestBuild_AllOrNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad strictness", func(c *config.Config) { c.GrammarCheck.Strictness = "pedantic" }},
		{"bad image count", func(c *config.Config) { c.VisualGenerator.ImageCount = 0 }},
		{"missing publisher base", func(c *config.Config) { c.Publisher.BaseURL = "" }},
		{"no platforms", func(c *config.Config) { c.SocialPromotion.Platforms = nil }},
		{"missing sender", func(c *config.Config) { c.EmailDrafter.SenderName = "" }},
		{"missing tracking prefix", func(c *config.Config) { c.Analytics.TrackingPrefix = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			p, err := Build(cfg, nil)
			require.Error(t, err)
			assert.Nil(t, p)
		})
	}
}
