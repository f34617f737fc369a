package model

// Content is a generated blog article as it moves through the pipeline.
type Content struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Tags      []string `json:"tags,omitempty"`
	WordCount int      `json:"word_count"`
}

// Image is one generated visual attached to a post.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
	Style   string `json:"style,omitempty"`
}

// MonetizedContent is content with ad placements applied.
type MonetizedContent struct {
	Content Content `json:"content"`
	AdSlots int     `json:"ad_slots"`
	Network string  `json:"network,omitempty"`
}

// SocialPost is one promotional post for a single platform.
type SocialPost struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
}

// EmailDraft is a newsletter draft announcing a published post.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Sender  string `json:"sender,omitempty"`
}
