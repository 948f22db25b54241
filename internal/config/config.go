// Package config loads service configuration from environment
// variables, with optional .env files for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Token length bounds for model inference input.
const (
	DefaultMaxTokenLength = 128
	minTokenLength        = 1
	maxTokenLength        = 512
)

// Config holds all configuration for the comment sentiment service.
type Config struct {
	Service        ServiceConfig
	Backends       BackendsConfig
	Classification ClassificationConfig
	Fetch          FetchConfig
	Database       DatabaseConfig
	Elasticsearch  ElasticsearchConfig
	Cache          CacheConfig
	Logging        LoggingConfig
}

// ServiceConfig holds HTTP server settings.
type ServiceConfig struct {
	Name         string        `envconfig:"SERVICE_NAME" default:"comment-sentiment"`
	Version      string        `envconfig:"SERVICE_VERSION" default:"1.0.0"`
	Port         int           `envconfig:"SERVICE_PORT" default:"8090"`
	Debug        bool          `envconfig:"APP_DEBUG" default:"false"`
	ReadTimeout  time.Duration `envconfig:"SERVICE_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVICE_WRITE_TIMEOUT" default:"60s"`
}

// BackendsConfig holds the base URLs of the model scoring sidecars.
// The two Japanese backends form the primary-language ensemble; every
// other language routes to the multilingual backend.
type BackendsConfig struct {
	JAPrimaryURL    string `envconfig:"JA_MODEL_1_URL" default:"http://ja-sentiment:8081"`
	JAIronyURL      string `envconfig:"JA_MODEL_2_URL" default:"http://ja-irony:8082"`
	MultilingualURL string `envconfig:"MULTILINGUAL_MODEL_URL" default:"http://xlm-sentiment:8083"`
}

// ClassificationConfig holds pipeline settings.
type ClassificationConfig struct {
	// MaxTokenLength bounds the text length sent to scoring backends.
	// Values outside [1,512] revert to the default.
	MaxTokenLength int `envconfig:"MAX_TOKEN_LENGTH" default:"128"`

	// FallbackToRulesOnly controls what happens when every backend
	// fails to load: score the whole batch with rules alone, or fail.
	FallbackToRulesOnly bool `envconfig:"FALLBACK_TO_RULES_ONLY" default:"false"`

	// Concurrency is the classification worker count for batches.
	// 1 keeps processing strictly sequential.
	Concurrency int `envconfig:"CLASSIFIER_CONCURRENCY" default:"1"`
}

// FetchConfig holds YouTube Data API settings.
type FetchConfig struct {
	APIKey          string `envconfig:"YOUTUBE_API_KEY"`
	BaseURL         string `envconfig:"YOUTUBE_API_BASE_URL" default:"https://www.googleapis.com/youtube/v3"`
	CommentLimit    int    `envconfig:"COMMENT_LIMIT" default:"10"`
	MaxResults      int    `envconfig:"API_MAX_RESULTS" default:"100"`
	FetchMultiplier int    `envconfig:"COMMENT_FETCH_MULTIPLIER" default:"2"`
	RequestsPerSec  int    `envconfig:"YOUTUBE_API_RPS" default:"5"`
}

// DatabaseConfig holds PostgreSQL settings.
type DatabaseConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port            int           `envconfig:"POSTGRES_PORT" default:"5432"`
	User            string        `envconfig:"POSTGRES_USER" default:"postgres"`
	Password        string        `envconfig:"POSTGRES_PASSWORD"`
	Database        string        `envconfig:"POSTGRES_DB" default:"comment_sentiment"`
	SSLMode         string        `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConnections  int           `envconfig:"POSTGRES_MAX_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"1h"`
	MigrationsPath  string        `envconfig:"POSTGRES_MIGRATIONS_PATH" default:"migrations"`
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// ElasticsearchConfig holds optional comment indexing settings.
type ElasticsearchConfig struct {
	Enabled  bool   `envconfig:"ELASTICSEARCH_ENABLED" default:"false"`
	URL      string `envconfig:"ELASTICSEARCH_URL" default:"http://localhost:9200"`
	Username string `envconfig:"ELASTICSEARCH_USERNAME"`
	Password string `envconfig:"ELASTICSEARCH_PASSWORD"`
	Index    string `envconfig:"ELASTICSEARCH_INDEX" default:"analyzed_comments"`
}

// CacheConfig holds the JSON result cache settings.
type CacheConfig struct {
	Enabled bool   `envconfig:"JSON_CACHE_ENABLED" default:"true"`
	Dir     string `envconfig:"JSON_OUTPUT_DIR" default:"data/json"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env files (if present) and then the environment.
// Out-of-range values for bounded settings are reset to their
// defaults rather than failing startup.
func Load() (*Config, error) {
	// .env.local overrides .env; real environment wins over both.
	// godotenv.Load never overrides variables already set.
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Classification.MaxTokenLength < minTokenLength || c.Classification.MaxTokenLength > maxTokenLength {
		c.Classification.MaxTokenLength = DefaultMaxTokenLength
	}
	if c.Classification.Concurrency <= 0 {
		c.Classification.Concurrency = 1
	}
	if c.Fetch.FetchMultiplier <= 0 {
		c.Fetch.FetchMultiplier = 2
	}
	if c.Fetch.MaxResults <= 0 {
		c.Fetch.MaxResults = 100
	}
}
