package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Archive backends
const (
	ArchiveNone = "none"
	ArchiveFile = "file"
	ArchiveR2   = "r2"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`
	StaticDir       string        `json:"static_dir"`
	CorsOrigins     string        `json:"cors_origins"`

	// Outbound HTTP
	UpstreamTimeout time.Duration `json:"upstream_timeout"`
	RetryCount      int           `json:"retry_count"`
	RetryWait       time.Duration `json:"retry_wait"`
	RetryMaxWait    time.Duration `json:"retry_max_wait"`

	// SerpApi (Google Trends)
	SerpAPIKey     string `json:"-"`
	SerpAPIBaseURL string `json:"serpapi_base_url"`

	// NewsAPI
	NewsAPIKey     string `json:"-"`
	NewsAPIBaseURL string `json:"newsapi_base_url"`

	// Article fetching
	ArticleUserAgent string `json:"article_user_agent"`
	ArticleMaxChars  int    `json:"article_max_chars"`

	// Archive
	ArchiveBackend string        `json:"archive_backend"`
	ArchivePath    string        `json:"archive_path"`
	RedisURL       string        `json:"redis_url"`
	RedisPrefix    string        `json:"redis_prefix"`
	CacheTTL       time.Duration `json:"cache_ttl"`

	// CloudFlare R2 Configuration
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"-"`
	R2SecretKey string `json:"-"`
	R2Bucket    string `json:"r2_bucket"`
	R2AccountID string `json:"r2_account_id"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	LogPretty bool   `json:"log_pretty"`
}

// Load reads configuration from the environment (and an optional .env file) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 60*time.Second),
		StaticDir:       getEnv("STATIC_DIR", "./web/static"),
		CorsOrigins:     getEnv("CORS_ORIGINS", "*"),

		UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		RetryCount:      getEnvAsInt("UPSTREAM_RETRY_COUNT", 2),
		RetryWait:       getEnvAsDuration("UPSTREAM_RETRY_WAIT", 500*time.Millisecond),
		RetryMaxWait:    getEnvAsDuration("UPSTREAM_RETRY_MAX_WAIT", 5*time.Second),

		SerpAPIKey:     getEnv("SERPAPI_API_KEY", ""),
		SerpAPIBaseURL: getEnv("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),

		NewsAPIKey:     getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL: getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),

		ArticleUserAgent: getEnv("ARTICLE_USER_AGENT", "Mozilla/5.0"),
		ArticleMaxChars:  getEnvAsInt("ARTICLE_MAX_CHARS", 2000),

		ArchiveBackend: strings.ToLower(getEnv("ARCHIVE_BACKEND", ArchiveNone)),
		ArchivePath:    getEnv("ARCHIVE_PATH", "./data/articles"),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisPrefix:    getEnv("REDIS_PREFIX", "trendportal:archived:"),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", 720*time.Hour), // 30 days

		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", "articles"),
		R2AccountID: getEnv("CLOUDFLARE_ACCOUNT_ID", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", ""),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("UPSTREAM_RETRY_COUNT cannot be negative")
	}
	if c.ArticleMaxChars <= 0 {
		return fmt.Errorf("ARTICLE_MAX_CHARS must be positive")
	}

	switch c.ArchiveBackend {
	case ArchiveNone, ArchiveFile:
	case ArchiveR2:
		if c.R2Endpoint == "" && c.R2AccountID == "" {
			return fmt.Errorf("R2_ENDPOINT or CLOUDFLARE_ACCOUNT_ID is required for the r2 archive backend")
		}
		if c.R2AccessKey == "" || c.R2SecretKey == "" {
			return fmt.Errorf("R2_ACCESS_KEY and R2_SECRET_ACCESS_KEY are required for the r2 archive backend")
		}
	default:
		return fmt.Errorf("unknown ARCHIVE_BACKEND %q", c.ArchiveBackend)
	}

	return nil
}

// R2EndpointURL returns the S3-compatible endpoint, deriving it from the account id when unset.
func (c *Config) R2EndpointURL() string {
	if c.R2Endpoint != "" {
		return c.R2Endpoint
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.R2AccountID)
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
