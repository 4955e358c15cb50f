package trends

import (
	"context"
	"fmt"

	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/bilgisen/trendportal/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// SerpApi request constants
const (
	engineGoogleTrends = "google_trends"
	dataRelatedQueries = "RELATED_QUERIES"
	dataTimeseries     = "TIMESERIES"
)

// Client talks to the SerpApi Google Trends engine
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	log     zerolog.Logger
}

func NewClient(client *resty.Client, baseURL, apiKey string) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     logger.Component("trends"),
	}
}

// Lookup returns the related queries for p, or the single "No data found"
// placeholder when the upstream produced none.
func (c *Client) Lookup(ctx context.Context, p models.TrendQueryParams) ([]models.RelatedQueryResult, error) {
	results, err := c.RelatedQueries(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []models.RelatedQueryResult{models.NoDataResult}, nil
	}
	return results, nil
}

// RelatedQueries fetches the related queries for p in upstream order.
func (c *Client) RelatedQueries(ctx context.Context, p models.TrendQueryParams) ([]models.RelatedQueryResult, error) {
	body, err := c.search(ctx, map[string]string{
		"engine":    engineGoogleTrends,
		"q":         p.Keyword,
		"data_type": dataRelatedQueries,
		"geo":       p.Country,
		"cat":       p.Category,
		"time":      p.Timeframe,
	})
	if err != nil {
		return nil, err
	}

	parsed, err := parseRelatedQueries(body)
	if err != nil {
		return nil, err
	}
	if parsed.upstreamError != "" {
		c.log.Warn().
			Str("keyword", p.Keyword).
			Str("upstream_error", parsed.upstreamError).
			Msg("SerpApi reported an error")
	}

	c.log.Debug().
		Str("keyword", p.Keyword).
		Str("geo", p.Country).
		Int("results", len(parsed.results)).
		Msg("Related queries fetched")

	return parsed.results, nil
}

// Interest fetches the interest-over-time series for q and summarizes its latest movement.
func (c *Client) Interest(ctx context.Context, q models.InterestQuery) (*models.InterestSummary, error) {
	q = q.WithDefaults()
	body, err := c.search(ctx, map[string]string{
		"engine":    engineGoogleTrends,
		"q":         q.Keyword,
		"data_type": dataTimeseries,
		"geo":       q.Geo,
		"cat":       q.Category,
		"time":      q.Time,
	})
	if err != nil {
		return nil, err
	}

	points, err := parseTimeline(body)
	if err != nil {
		return nil, err
	}

	summary, err := summarize(q.Keyword, points)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Client) search(ctx context.Context, params map[string]string) ([]byte, error) {
	params["api_key"] = c.apiKey

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("serpapi request failed: %w", err)
	}

	if resp.IsError() {
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("data_type", params["data_type"]).
			Msg("SerpApi returned a non-success status")
	}

	return resp.Body(), nil
}
