package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/bilgisen/trendportal/internal/api"
    "github.com/bilgisen/trendportal/internal/archive"
    "github.com/bilgisen/trendportal/internal/article"
    "github.com/bilgisen/trendportal/internal/config"
    "github.com/bilgisen/trendportal/internal/logger"
    "github.com/bilgisen/trendportal/internal/middleware"
    "github.com/bilgisen/trendportal/internal/news"
    "github.com/bilgisen/trendportal/internal/trends"
    "github.com/bilgisen/trendportal/internal/upstream"
    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }

    output := "stdout"
    if cfg.LogFile != "" {
        output = cfg.LogFile
    }
    if err := logger.Init(logger.Config{
        Level:  cfg.LogLevel,
        Output: output,
        Pretty: cfg.LogPretty,
    }); err != nil {
        panic(err)
    }

    log := logger.Get()
    log.Info().Str("env", cfg.Env).Msg("Starting application...")

    if cfg.SerpAPIKey == "" {
        log.Warn().Msg("SERPAPI_API_KEY is not set, trend lookups will be rejected upstream")
    }
    if cfg.NewsAPIKey == "" {
        log.Warn().Msg("NEWS_API_KEY is not set, news search is disabled")
    }

    opts := upstream.Options{
        Timeout:      cfg.UpstreamTimeout,
        RetryCount:   cfg.RetryCount,
        RetryWait:    cfg.RetryWait,
        RetryMaxWait: cfg.RetryMaxWait,
    }
    apiClient := upstream.NewClient(opts)

    pageOpts := opts
    pageOpts.UserAgent = cfg.ArticleUserAgent
    pageClient := upstream.NewClient(pageOpts)

    // Optional article archive
    archiver, err := archive.FromConfig(context.Background(), cfg)
    if err != nil {
        log.Fatal().Err(err).Str("backend", cfg.ArchiveBackend).Msg("Failed to initialize article archive")
    }

    var articleArchiver article.Archiver
    if archiver != nil {
        articleArchiver = archiver
        defer func() {
            log.Info().Msg("Closing archive index...")
            if err := archiver.Close(); err != nil {
                log.Error().Err(err).Msg("Error closing archive index")
            }
        }()
        log.Info().Str("backend", cfg.ArchiveBackend).Msg("Article archive enabled")
    }

    handlers := api.NewHandlers(
        trends.NewClient(apiClient, cfg.SerpAPIBaseURL, cfg.SerpAPIKey),
        article.NewService(article.NewFetcher(pageClient), cfg.ArticleMaxChars, articleArchiver),
        news.NewClient(apiClient, cfg.NewsAPIBaseURL, cfg.NewsAPIKey),
    )

    // Create Fiber app with custom config
    app := fiber.New(fiber.Config{
        ReadTimeout:  cfg.HTTPTimeout,
        WriteTimeout: cfg.HTTPTimeout,
        IdleTimeout:  120 * time.Second,
        ErrorHandler: middleware.ErrorHandler,
    })

    app.Use(recover.New())
    app.Use(middleware.RequestLogger())

    api.SetupRoutes(app, handlers, cfg.StaticDir, cfg.CorsOrigins)

    go func() {
        log.Info().Str("port", cfg.Port).Msg("Starting server")
        if err := app.Listen(":" + cfg.Port); err != nil {
            log.Fatal().Err(err).Msg("Server error")
        }
    }()

    // Wait for interrupt signal to gracefully shut down the server
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
    <-quit

    log.Info().Msg("Shutting down server...")

    ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
    defer cancel()

    if err := app.ShutdownWithContext(ctx); err != nil {
        log.Error().Err(err).Msg("Server forced to shutdown")
    }

    log.Info().Msg("Server exited properly")
}
