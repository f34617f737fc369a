package keyword

import "strings"

// NormalizeTopic derives the canonical cache key for a topic: lowercase,
// trimmed, with every internal whitespace run collapsed to one underscore.
// "Machine Learning" and "machine  learning" intentionally map to the same
// key.
func NormalizeTopic(topic string) string {
	return strings.Join(strings.Fields(strings.ToLower(topic)), "_")
}
