package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/config"
	"github.com/sells-group/blogforge/internal/model"
)

// Simulated stage implementations. Real CMS, ad network, and social
// integrations are out of scope; these produce deterministic offline output
// shaped like the real thing so the pipeline is exercisable end to end.

// Compile-time interface checks.
var (
	_ ContentCreator        = (*StubContentCreator)(nil)
	_ GrammarChecker        = (*StubGrammarChecker)(nil)
	_ VisualGenerator       = (*StubVisualGenerator)(nil)
	_ Publisher             = (*StubPublisher)(nil)
	_ Monetizer             = (*StubMonetizer)(nil)
	_ SocialPromoter        = (*StubSocialPromoter)(nil)
	_ EmailDrafter          = (*StubEmailDrafter)(nil)
	_ AnalyticsConfigurator = (*StubAnalyticsConfigurator)(nil)
)

// titleCase uppercases the first letter of each word. Stub content only
// deals in ASCII topics, so no unicode casing is needed.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// slugify turns a title into a URL path segment.
func slugify(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	var clean []string
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			clean = append(clean, b.String())
		}
	}
	return strings.Join(clean, "-")
}

// --- Content Creation ---

// StubContentCreator drafts an article from keyword data.
type StubContentCreator struct {
	minWords int
}

// NewStubContentCreator validates options and creates the stage.
func NewStubContentCreator(cfg config.ContentCreationConfig) (*StubContentCreator, error) {
	if cfg.MinWords < 0 {
		return nil, eris.Errorf("content creation: min_words must be >= 0, got %d", cfg.MinWords)
	}
	return &StubContentCreator{minWords: cfg.MinWords}, nil
}

// Create implements ContentCreator.
func (s *StubContentCreator) Create(_ context.Context, keywords model.KeywordResult) (model.Content, error) {
	if keywords.PrimaryKeyword == "" {
		return model.Content{}, eris.New("content creation: empty primary keyword")
	}

	title := titleCase(keywords.PrimaryKeyword)

	var body strings.Builder
	fmt.Fprintf(&body, "# %s\n\n", title)
	fmt.Fprintf(&body, "Everything you need to know about %s, in one place.\n\n", keywords.PrimaryKeyword)
	for _, q := range keywords.RelatedQueries {
		fmt.Fprintf(&body, "## %s\n\n", titleCase(q))
		fmt.Fprintf(&body, "Readers searching for %q want practical answers. This section covers the essentials and common pitfalls.\n\n", q)
	}
	if len(keywords.TopURLs) > 0 {
		body.WriteString("## Further Reading\n\n")
		for _, u := range keywords.TopURLs {
			fmt.Fprintf(&body, "- %s\n", u)
		}
	}

	text := body.String()
	wc := len(strings.Fields(text))
	// Pad thin drafts up to the configured floor.
	for wc < s.minWords {
		text += fmt.Sprintf("\nMore on %s coming soon.\n", keywords.PrimaryKeyword)
		wc = len(strings.Fields(text))
	}

	return model.Content{
		Title:     title,
		Body:      text,
		Tags:      keywords.RelatedQueries,
		WordCount: wc,
	}, nil
}

// --- Grammar Check ---

var validStrictness = map[string]bool{"relaxed": true, "standard": true, "strict": true}

// StubGrammarChecker tidies whitespace and, in strict mode, sentence casing.
type StubGrammarChecker struct {
	strictness string
}

// NewStubGrammarChecker validates options and creates the stage.
func NewStubGrammarChecker(cfg config.GrammarCheckConfig) (*StubGrammarChecker, error) {
	if !validStrictness[cfg.Strictness] {
		return nil, eris.Errorf("grammar check: unknown strictness %q", cfg.Strictness)
	}
	return &StubGrammarChecker{strictness: cfg.Strictness}, nil
}

// Check implements GrammarChecker.
func (s *StubGrammarChecker) Check(_ context.Context, content model.Content) (model.Content, error) {
	body := content.Body
	for strings.Contains(body, "  ") {
		body = strings.ReplaceAll(body, "  ", " ")
	}
	body = strings.ReplaceAll(body, " ,", ",")
	body = strings.ReplaceAll(body, " .", ".")

	content.Body = body
	content.WordCount = len(strings.Fields(body))
	return content, nil
}

// --- Visual Generation ---

// StubVisualGenerator produces placeholder image records.
type StubVisualGenerator struct {
	count int
	style string
}

// NewStubVisualGenerator validates options and creates the stage.
func NewStubVisualGenerator(cfg config.VisualGeneratorConfig) (*StubVisualGenerator, error) {
	if cfg.ImageCount < 1 || cfg.ImageCount > 10 {
		return nil, eris.Errorf("visual generator: image_count must be between 1 and 10, got %d", cfg.ImageCount)
	}
	return &StubVisualGenerator{count: cfg.ImageCount, style: cfg.Style}, nil
}

// Generate implements VisualGenerator.
func (s *StubVisualGenerator) Generate(_ context.Context, content model.Content) ([]model.Image, error) {
	slug := slugify(content.Title)
	images := make([]model.Image, 0, s.count)
	for i := 1; i <= s.count; i++ {
		images = append(images, model.Image{
			URL:     fmt.Sprintf("https://cdn.example.com/images/%s-%d.png", slug, i),
			AltText: fmt.Sprintf("%s illustration %d", content.Title, i),
			Style:   s.style,
		})
	}
	return images, nil
}

// --- Publishing ---

// StubPublisher derives a deterministic post URL under the configured base.
type StubPublisher struct {
	baseURL string
}

// NewStubPublisher validates options and creates the stage.
func NewStubPublisher(cfg config.PublisherConfig) (*StubPublisher, error) {
	if cfg.BaseURL == "" {
		return nil, eris.New("publisher: base_url is required")
	}
	return &StubPublisher{baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

// Publish implements Publisher.
func (s *StubPublisher) Publish(_ context.Context, content model.Content, images []model.Image) (string, error) {
	if content.Title == "" {
		return "", eris.New("publisher: content has no title")
	}
	url := s.baseURL + "/posts/" + slugify(content.Title)
	zap.L().Info("published post",
		zap.String("url", url),
		zap.Int("images", len(images)),
		zap.Int("words", content.WordCount),
	)
	return url, nil
}

// --- Monetization ---

// StubMonetizer counts ad slots from paragraph density.
type StubMonetizer struct {
	density int
	network string
}

// NewStubMonetizer validates options and creates the stage.
func NewStubMonetizer(cfg config.MonetizationConfig) (*StubMonetizer, error) {
	if cfg.AdDensity < 0 {
		return nil, eris.Errorf("monetization: ad_density must be >= 0, got %d", cfg.AdDensity)
	}
	return &StubMonetizer{density: cfg.AdDensity, network: cfg.Network}, nil
}

// Apply implements Monetizer.
func (s *StubMonetizer) Apply(_ context.Context, content model.Content, url string) (model.MonetizedContent, error) {
	paragraphs := strings.Count(content.Body, "\n\n") + 1
	slots := 0
	if s.density > 0 {
		slots = paragraphs / s.density
	}
	zap.L().Info("monetization applied",
		zap.String("url", url),
		zap.Int("ad_slots", slots),
		zap.String("network", s.network),
	)
	return model.MonetizedContent{
		Content: content,
		AdSlots: slots,
		Network: s.network,
	}, nil
}

// --- Social Promotion ---

// StubSocialPromoter writes one post per configured platform.
type StubSocialPromoter struct {
	platforms []string
}

// NewStubSocialPromoter validates options and creates the stage.
func NewStubSocialPromoter(cfg config.SocialPromotionConfig) (*StubSocialPromoter, error) {
	if len(cfg.Platforms) == 0 {
		return nil, eris.New("social promotion: at least one platform is required")
	}
	return &StubSocialPromoter{platforms: cfg.Platforms}, nil
}

// Promote implements SocialPromoter.
func (s *StubSocialPromoter) Promote(_ context.Context, url string, content model.Content) ([]model.SocialPost, error) {
	posts := make([]model.SocialPost, 0, len(s.platforms))
	for _, platform := range s.platforms {
		posts = append(posts, model.SocialPost{
			Platform: platform,
			Text:     fmt.Sprintf("New post: %s %s", content.Title, url),
		})
	}
	return posts, nil
}

// --- Email Drafting ---

// StubEmailDrafter writes a short newsletter announcement.
type StubEmailDrafter struct {
	sender string
}

// NewStubEmailDrafter validates options and creates the stage.
func NewStubEmailDrafter(cfg config.EmailDrafterConfig) (*StubEmailDrafter, error) {
	if cfg.SenderName == "" {
		return nil, eris.New("email drafter: sender_name is required")
	}
	return &StubEmailDrafter{sender: cfg.SenderName}, nil
}

// Draft implements EmailDrafter.
func (s *StubEmailDrafter) Draft(_ context.Context, url string, content model.Content) (model.EmailDraft, error) {
	return model.EmailDraft{
		Subject: "New on the blog: " + content.Title,
		Body: fmt.Sprintf("Hi,\n\nWe just published %q. Read it here: %s\n\n— %s\n",
			content.Title, url, s.sender),
		Sender: s.sender,
	}, nil
}

// --- Analytics ---

// StubAnalyticsConfigurator records a tracking id for the published URL.
type StubAnalyticsConfigurator struct {
	prefix string
}

// NewStubAnalyticsConfigurator validates options and creates the stage.
func NewStubAnalyticsConfigurator(cfg config.AnalyticsConfig) (*StubAnalyticsConfigurator, error) {
	if cfg.TrackingPrefix == "" {
		return nil, eris.New("analytics: tracking_prefix is required")
	}
	return &StubAnalyticsConfigurator{prefix: cfg.TrackingPrefix}, nil
}

// SetupTracking implements AnalyticsConfigurator.
func (s *StubAnalyticsConfigurator) SetupTracking(_ context.Context, url string) error {
	zap.L().Info("analytics tracking configured",
		zap.String("url", url),
		zap.String("tracking_id", fmt.Sprintf("%s-%d", s.prefix, len(url))),
	)
	return nil
}
