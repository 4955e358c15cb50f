package upstream

import (
	"net/http"
	"time"

	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Options configures an outbound resty client
type Options struct {
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
	UserAgent    string
}

// NewClient builds a resty client with a timeout and a bounded retry on
// transport errors, 429 and 5xx responses.
func NewClient(opts Options) *resty.Client {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(opts.RetryMaxWait).
		AddRetryCondition(Retryable).
		SetLogger(restyLogger{log: logger.Component("upstream")})

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return client
}

// Retryable reports whether a response or error is worth another attempt.
func Retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
