package keyword

import (
	"fmt"
	"time"

	"github.com/sells-group/blogforge/internal/model"
)

// queryTemplates are the fixed variants the offline generator interpolates
// the topic into, in relevance order.
var queryTemplates = []string{
	"%s guide",
	"how to %s",
	"best %s",
	"%s for beginners",
	"%s tips",
	"%s tutorial",
	"%s examples",
	"why %s matters",
	"%s mistakes to avoid",
	"latest %s trends",
}

// Generate synthesizes a keyword result from the topic alone: no I/O, no
// external dependency, cannot fail. It is the terminal case of the fallback
// chain and guarantees that discovery always produces a result.
func Generate(topic string) model.KeywordResult {
	queries := make([]string, 0, len(queryTemplates))
	for _, tmpl := range queryTemplates {
		queries = append(queries, fmt.Sprintf(tmpl, topic))
	}

	now := time.Now().UTC()
	return model.KeywordResult{
		PrimaryKeyword: topic,
		RelatedQueries: queries,
		TopURLs:        []string{},
		Metrics:        model.UnknownMetrics(),
		Source:         model.SourceFallback,
		GeneratedAt:    &now,
	}
}
