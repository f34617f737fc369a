package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/blogforge/internal/model"
	"github.com/sells-group/blogforge/internal/store"
)

// --- Keyword Discovery Mock ---

type mockKeywordDiscoverer struct {
	mock.Mock
}

func (m *mockKeywordDiscoverer) Discover(ctx context.Context, topic string) model.KeywordResult {
	args := m.Called(ctx, topic)
	return args.Get(0).(model.KeywordResult)
}

// --- Content Creation Mock ---

type mockContentCreator struct {
	mock.Mock
}

func (m *mockContentCreator) Create(ctx context.Context, keywords model.KeywordResult) (model.Content, error) {
	args := m.Called(ctx, keywords)
	return args.Get(0).(model.Content), args.Error(1)
}

// --- Grammar Check Mock ---

type mockGrammarChecker struct {
	mock.Mock
}

func (m *mockGrammarChecker) Check(ctx context.Context, content model.Content) (model.Content, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(model.Content), args.Error(1)
}

// --- Visual Generation Mock ---

type mockVisualGenerator struct {
	mock.Mock
}

func (m *mockVisualGenerator) Generate(ctx context.Context, content model.Content) ([]model.Image, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

// --- Publisher Mock ---

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, content model.Content, images []model.Image) (string, error) {
	args := m.Called(ctx, content, images)
	return args.String(0), args.Error(1)
}

// --- Monetizer Mock ---

type mockMonetizer struct {
	mock.Mock
}

func (m *mockMonetizer) Apply(ctx context.Context, content model.Content, url string) (model.MonetizedContent, error) {
	args := m.Called(ctx, content, url)
	return args.Get(0).(model.MonetizedContent), args.Error(1)
}

// --- Social Promotion Mock ---

type mockSocialPromoter struct {
	mock.Mock
}

func (m *mockSocialPromoter) Promote(ctx context.Context, url string, content model.Content) ([]model.SocialPost, error) {
	args := m.Called(ctx, url, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SocialPost), args.Error(1)
}

// --- Email Drafting Mock ---

type mockEmailDrafter struct {
	mock.Mock
}

func (m *mockEmailDrafter) Draft(ctx context.Context, url string, content model.Content) (model.EmailDraft, error) {
	args := m.Called(ctx, url, content)
	return args.Get(0).(model.EmailDraft), args.Error(1)
}

// --- Analytics Mock ---

type mockAnalyticsConfigurator struct {
	mock.Mock
}

func (m *mockAnalyticsConfigurator) SetupTracking(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// --- Store Mock ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateRun(ctx context.Context, topic string) (*model.Run, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error {
	args := m.Called(ctx, runID, status)
	return args.Error(0)
}

func (m *mockStore) CompleteRun(ctx context.Context, runID string, result *model.PipelineRunResult) error {
	args := m.Called(ctx, runID, result)
	return args.Error(0)
}

func (m *mockStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) ListRuns(ctx context.Context, filter store.RunFilter) ([]model.Run, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Run), args.Error(1)
}

func (m *mockStore) Migrate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
