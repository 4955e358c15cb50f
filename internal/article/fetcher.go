package article

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Page is a fetched web page
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

type Fetcher struct {
	client *resty.Client
	log    zerolog.Logger
}

// NewFetcher wraps a resty client; the client carries the User-Agent header.
func NewFetcher(client *resty.Client) *Fetcher {
	return &Fetcher{
		client: client,
		log:    logger.Component("article"),
	}
}

// FetchPage retrieves rawURL. Non-2xx pages are returned as well, since their
// body is still the document the caller asked for.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	if err := checkURL(rawURL); err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8").
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	if resp.IsError() {
		f.log.Warn().
			Str("url", rawURL).
			Int("status", resp.StatusCode()).
			Msg("Page returned a non-success status")
	}

	return &Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

func checkURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("invalid URL: empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: no http(s) scheme supplied", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: no host supplied", rawURL)
	}
	return nil
}
