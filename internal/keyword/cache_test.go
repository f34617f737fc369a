package keyword

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/blogforge/internal/model"
)

func sampleResult(topic, source string) model.KeywordResult {
	return model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: []string{topic + " guide", "how to " + topic},
		TopURLs:        []string{"https://example.com/a"},
		Metrics: map[string]any{
			model.MetricSearchVolume: float64(1000),
			model.MetricCPC:          1.5,
			model.MetricCompetition:  0.3,
		},
		Source: source,
	}
}

func TestCache_GetMissing(t *testing.T) {
	c := NewCache(t.TempDir())

	got, ok := c.Get("never stored")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "keywords"))
	want := sampleResult("espresso machines", ProviderSerpWatch)

	c.Put("espresso machines", want)

	got, ok := c.Get("espresso machines")
	require.True(t, ok)
	assert.Equal(t, want, *got)
}

func TestCache_KeyIsNormalizedTopic(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	c.Put("Espresso  Machines", sampleResult("espresso machines", ProviderSerpWatch))

	_, err := os.Stat(filepath.Join(dir, "espresso_machines.json"))
	require.NoError(t, err)

	// Whitespace variants resolve to the same entry.
	got, ok := c.Get("espresso machines")
	require.True(t, ok)
	assert.Equal(t, "espresso machines", got.PrimaryKeyword)
}

func TestCache_PutOverwrites(t *testing.T) {
	c := NewCache(t.TempDir())

	c.Put("topic", sampleResult("topic", ProviderSerpWatch))
	c.Put("topic", sampleResult("topic", ProviderTrendScout))

	got, ok := c.Get("topic")
	require.True(t, ok)
	assert.Equal(t, ProviderTrendScout, got.Source)
}

func TestCache_HitPreservesSource(t *testing.T) {
	c := NewCache(t.TempDir())
	c.Put("topic", sampleResult("topic", ProviderKeywordMetrics))

	got, ok := c.Get("topic")
	require.True(t, ok)
	// Cache hits keep the originally cached source, never a "cache" tag.
	assert.Equal(t, ProviderKeywordMetrics, got.Source)
}

func TestCache_CorruptEntryIsAbsence(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad_topic.json"), []byte("{not json"), 0o644))

	got, ok := c.Get("bad topic")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCache_PutFailureIsSilent(t *testing.T) {
	// A file where the cache dir should be makes MkdirAll fail; Put must not panic.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	c := NewCache(blocker)
	c.Put("topic", sampleResult("topic", ProviderSerpWatch))

	_, ok := c.Get("topic")
	assert.False(t, ok)
}

func TestCache_FileIsVerbatimKeywordResult(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)
	c.Put("espresso machines", sampleResult("espresso machines", ProviderSerpWatch))

	data, err := os.ReadFile(filepath.Join(dir, "espresso_machines.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"primary_keyword": "espresso machines"`)
	assert.Contains(t, string(data), `"source": "serpwatch"`)
}
