package middleware

import (
    "time"

    "github.com/bilgisen/trendportal/internal/logger"
    "github.com/gofiber/fiber/v2"
    "github.com/rs/zerolog"
)

// LoggerConfig defines the config for the logger middleware
type LoggerConfig struct {
    // Skip defines a function to skip middleware.
    // Optional. Default: nil
    Next func(c *fiber.Ctx) bool

    // Logger is the zerolog logger instance to use.
    // If not provided, the default logger will be used.
    Logger *zerolog.Logger
}

// NewLogger logs one line per request. 5xx responses are logged at error
// level, 4xx at warn and everything else at info.
func NewLogger(config ...LoggerConfig) fiber.Handler {
    var cfg LoggerConfig
    if len(config) > 0 {
        cfg = config[0]
    }
    if cfg.Logger == nil {
        cfg.Logger = logger.Get()
    }

    return func(c *fiber.Ctx) error {
        if cfg.Next != nil && cfg.Next(c) {
            return c.Next()
        }

        start := time.Now()
        err := c.Next()
        latency := time.Since(start)

        status := c.Response().StatusCode()
        if err != nil {
            if e, ok := err.(*fiber.Error); ok {
                status = e.Code
            } else {
                status = fiber.StatusInternalServerError
            }
        }

        var event *zerolog.Event
        switch {
        case status >= fiber.StatusInternalServerError:
            event = cfg.Logger.Error()
        case status >= fiber.StatusBadRequest:
            event = cfg.Logger.Warn()
        default:
            event = cfg.Logger.Info()
        }

        event.
            Str("method", c.Method()).
            Str("path", c.Path()).
            Int("status", status).
            Str("ip", c.IP()).
            Dur("latency", latency).
            Err(err).
            Msg("request")

        return err
    }
}

// RequestLogger logs requests with the global logger
func RequestLogger() fiber.Handler {
    return NewLogger()
}
