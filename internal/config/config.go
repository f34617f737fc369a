package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration: one option group per
// pipeline stage plus store, server, batch, and log settings.
type Config struct {
	KeywordDiscovery KeywordDiscoveryConfig `yaml:"keyword_discovery" mapstructure:"keyword_discovery"`
	ContentCreation  ContentCreationConfig  `yaml:"content_creation" mapstructure:"content_creation"`
	GrammarCheck     GrammarCheckConfig     `yaml:"grammar_check" mapstructure:"grammar_check"`
	VisualGenerator  VisualGeneratorConfig  `yaml:"visual_generator" mapstructure:"visual_generator"`
	Publisher        PublisherConfig        `yaml:"publisher" mapstructure:"publisher"`
	Monetization     MonetizationConfig     `yaml:"monetization" mapstructure:"monetization"`
	SocialPromotion  SocialPromotionConfig  `yaml:"social_promotion" mapstructure:"social_promotion"`
	EmailDrafter     EmailDrafterConfig     `yaml:"email_drafter" mapstructure:"email_drafter"`
	Analytics        AnalyticsConfig        `yaml:"analytics" mapstructure:"analytics"`
	Store            StoreConfig            `yaml:"store" mapstructure:"store"`
	Server           ServerConfig           `yaml:"server" mapstructure:"server"`
	Batch            BatchConfig            `yaml:"batch" mapstructure:"batch"`
	Log              LogConfig              `yaml:"log" mapstructure:"log"`
}

// SourceConfig holds credentials and endpoint for one keyword data source.
type SourceConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// KeywordDiscoveryConfig configures the keyword discovery stage.
type KeywordDiscoveryConfig struct {
	CacheDir       string       `yaml:"cache_dir" mapstructure:"cache_dir"`
	Simulate       bool         `yaml:"simulate" mapstructure:"simulate"`
	ChainConfig    string       `yaml:"chain_config" mapstructure:"chain_config"`
	RateLimit      float64      `yaml:"rate_limit" mapstructure:"rate_limit"`
	SerpWatch      SourceConfig `yaml:"serpwatch" mapstructure:"serpwatch"`
	KeywordMetrics SourceConfig `yaml:"keywordmetrics" mapstructure:"keywordmetrics"`
	TrendScout     SourceConfig `yaml:"trendscout" mapstructure:"trendscout"`
}

// ContentCreationConfig configures the content creation stage.
type ContentCreationConfig struct {
	MinWords int `yaml:"min_words" mapstructure:"min_words"`
}

// GrammarCheckConfig configures the grammar check stage.
type GrammarCheckConfig struct {
	Strictness string `yaml:"strictness" mapstructure:"strictness"`
}

// VisualGeneratorConfig configures the visual generation stage.
type VisualGeneratorConfig struct {
	ImageCount int    `yaml:"image_count" mapstructure:"image_count"`
	Style      string `yaml:"style" mapstructure:"style"`
}

// PublisherConfig configures the publishing stage.
type PublisherConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// MonetizationConfig configures the monetization stage.
type MonetizationConfig struct {
	AdDensity int    `yaml:"ad_density" mapstructure:"ad_density"`
	Network   string `yaml:"network" mapstructure:"network"`
}

// SocialPromotionConfig configures the social promotion stage.
type SocialPromotionConfig struct {
	Platforms []string `yaml:"platforms" mapstructure:"platforms"`
}

// EmailDrafterConfig configures the email drafting stage.
type EmailDrafterConfig struct {
	SenderName string `yaml:"sender_name" mapstructure:"sender_name"`
}

// AnalyticsConfig configures the analytics setup stage.
type AnalyticsConfig struct {
	TrackingPrefix string `yaml:"tracking_prefix" mapstructure:"tracking_prefix"`
}

// StoreConfig configures the run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentTopics int `yaml:"max_concurrent_topics" mapstructure:"max_concurrent_topics"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from the given file (or ./config.yaml when path
// is empty) and the environment. A missing default config file is fine; an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("BLOGFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("keyword_discovery.cache_dir", "cache/keywords")
	v.SetDefault("keyword_discovery.simulate", true)
	v.SetDefault("keyword_discovery.rate_limit", 5)
	v.SetDefault("keyword_discovery.serpwatch.base_url", "https://api.serpwatch.dev/v1")
	v.SetDefault("keyword_discovery.keywordmetrics.base_url", "https://api.keywordmetrics.io/v2")
	v.SetDefault("keyword_discovery.trendscout.base_url", "https://api.trendscout.app/v1")
	v.SetDefault("content_creation.min_words", 800)
	v.SetDefault("grammar_check.strictness", "standard")
	v.SetDefault("visual_generator.image_count", 3)
	v.SetDefault("visual_generator.style", "photo")
	v.SetDefault("publisher.base_url", "https://blog.example.com")
	v.SetDefault("monetization.ad_density", 2)
	v.SetDefault("monetization.network", "adsense")
	v.SetDefault("social_promotion.platforms", []string{"twitter", "linkedin", "facebook"})
	v.SetDefault("email_drafter.sender_name", "The Blog Team")
	v.SetDefault("analytics.tracking_prefix", "GA-TRK")
	v.SetDefault("store.path", "blogforge.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.max_concurrent_topics", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
