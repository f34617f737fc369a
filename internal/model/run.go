package model

import "time"

// RunStatus tracks a pipeline run through the store.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// PipelineRunResult status values. A run is strictly all-or-nothing: there is
// no partial-success representation.
const (
	ResultStatusSuccess = "success"
	ResultStatusError   = "error"
)

// PipelineRunResult is the user-visible outcome of one pipeline invocation,
// printed as JSON regardless of status.
type PipelineRunResult struct {
	Status      string       `json:"status"`
	URL         string       `json:"url,omitempty"`
	SocialPosts []SocialPost `json:"social_posts,omitempty"`
	EmailDraft  *EmailDraft  `json:"email_draft,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Run is a stored record of one pipeline invocation.
type Run struct {
	ID        string             `json:"id"`
	Topic     string             `json:"topic"`
	Status    RunStatus          `json:"status"`
	Result    *PipelineRunResult `json:"result,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
