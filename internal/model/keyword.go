package model

import "time"

// Metric map keys used in KeywordResult.Metrics.
const (
	MetricSearchVolume = "search_volume"
	MetricCPC          = "cpc"
	MetricCompetition  = "competition"
)

// MetricUnknown is the sentinel value for a metric no source could supply.
const MetricUnknown = "unknown"

// SourceFallback tags results synthesized by the offline fallback generator.
const SourceFallback = "fallback_method"

// KeywordResult is the immutable output of keyword discovery for one topic.
// RelatedQueries preserves the provider-assigned relevance ranking. Source
// always names the provider that actually produced the data; cache hits keep
// the originally cached source.
type KeywordResult struct {
	PrimaryKeyword string         `json:"primary_keyword"`
	RelatedQueries []string       `json:"related_queries"`
	TopURLs        []string       `json:"top_urls"`
	Metrics        map[string]any `json:"metrics"`
	Source         string         `json:"source"`
	GeneratedAt    *time.Time     `json:"generated_at,omitempty"`
}

// UnknownMetrics returns a metrics map with every key set to the sentinel.
func UnknownMetrics() map[string]any {
	return map[string]any{
		MetricSearchVolume: MetricUnknown,
		MetricCPC:          MetricUnknown,
		MetricCompetition:  MetricUnknown,
	}
}
