package keyword

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/model"
)

// Cache persists keyword results as one JSON document per topic under a
// directory. Entries are never expired or evicted; keyword relevance moves
// slowly enough that staleness is acceptable.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir. The directory is created lazily on
// the first Put.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) path(topic string) string {
	return filepath.Join(c.dir, NormalizeTopic(topic)+".json")
}

// Get returns the cached result for a topic. A missing entry is absence, not
// an error; unreadable or corrupt entries are logged and treated as absent so
// the pipeline never depends on cache health.
func (c *Cache) Get(topic string) (*model.KeywordResult, bool) {
	path := c.path(topic)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("keyword cache: read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}

	var result model.KeywordResult
	if err := json.Unmarshal(data, &result); err != nil {
		zap.L().Warn("keyword cache: corrupt entry", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	return &result, true
}

// Put stores a result for a topic, fully overwriting any prior entry. It is
// fire-and-forget: persistence failures are logged, never propagated.
func (c *Cache) Put(topic string, result model.KeywordResult) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		zap.L().Warn("keyword cache: create dir failed", zap.String("dir", c.dir), zap.Error(err))
		return
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zap.L().Warn("keyword cache: marshal failed", zap.String("topic", topic), zap.Error(err))
		return
	}

	path := c.path(topic)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		zap.L().Warn("keyword cache: write failed", zap.String("path", path), zap.Error(err))
	}
}
