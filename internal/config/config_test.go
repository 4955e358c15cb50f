package config_test

import (
	"testing"
	"time"

	"github.com/bilgisen/trendportal/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERPAPI_API_KEY", "")
	t.Setenv("ARCHIVE_BACKEND", "")
	t.Setenv("ARTICLE_MAX_CHARS", "")
	t.Setenv("UPSTREAM_RETRY_COUNT", "")
	t.Setenv("PORT", "5000")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "https://serpapi.com/search.json", cfg.SerpAPIBaseURL)
	require.Equal(t, "Mozilla/5.0", cfg.ArticleUserAgent)
	require.Equal(t, 2000, cfg.ArticleMaxChars)
	require.Equal(t, 2, cfg.RetryCount)
	require.Equal(t, config.ArchiveNone, cfg.ArchiveBackend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERPAPI_API_KEY", "secret")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_RETRY_COUNT", "0")
	t.Setenv("ARTICLE_MAX_CHARS", "500")
	t.Setenv("ARCHIVE_BACKEND", "FILE")
	t.Setenv("CACHE_TTL", "48h")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "secret", cfg.SerpAPIKey)
	require.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, 0, cfg.RetryCount)
	require.Equal(t, 500, cfg.ArticleMaxChars)
	require.Equal(t, config.ArchiveFile, cfg.ArchiveBackend)
	require.Equal(t, 48*time.Hour, cfg.CacheTTL)
	require.False(t, cfg.LogPretty)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ARCHIVE_BACKEND", "")
	t.Setenv("ARTICLE_MAX_CHARS", "lots")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.ArticleMaxChars)
	require.Equal(t, 20*time.Second, cfg.UpstreamTimeout)
}

func TestValidate(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			Port:            "5000",
			UpstreamTimeout: time.Second,
			ArticleMaxChars: 2000,
			ArchiveBackend:  config.ArchiveNone,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "empty port", mutate: func(c *config.Config) { c.Port = "" }, wantErr: "PORT"},
		{name: "zero timeout", mutate: func(c *config.Config) { c.UpstreamTimeout = 0 }, wantErr: "UPSTREAM_TIMEOUT"},
		{name: "negative retries", mutate: func(c *config.Config) { c.RetryCount = -1 }, wantErr: "UPSTREAM_RETRY_COUNT"},
		{name: "zero article limit", mutate: func(c *config.Config) { c.ArticleMaxChars = 0 }, wantErr: "ARTICLE_MAX_CHARS"},
		{name: "unknown backend", mutate: func(c *config.Config) { c.ArchiveBackend = "tape" }, wantErr: "ARCHIVE_BACKEND"},
		{name: "r2 without endpoint", mutate: func(c *config.Config) {
			c.ArchiveBackend = config.ArchiveR2
			c.R2AccessKey, c.R2SecretKey = "a", "b"
		}, wantErr: "R2_ENDPOINT"},
		{name: "r2 without keys", mutate: func(c *config.Config) {
			c.ArchiveBackend = config.ArchiveR2
			c.R2AccountID = "acct"
		}, wantErr: "R2_ACCESS_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestR2EndpointURL(t *testing.T) {
	cfg := &config.Config{R2AccountID: "abc"}
	require.Equal(t, "https://abc.r2.cloudflarestorage.com", cfg.R2EndpointURL())

	cfg.R2Endpoint = "http://localhost:9000"
	require.Equal(t, "http://localhost:9000", cfg.R2EndpointURL())
}
