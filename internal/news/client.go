package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bilgisen/trendportal/internal/models"
	"github.com/go-resty/resty/v2"
)

// ErrNoAPIKey is returned when no NewsAPI key is configured
var ErrNoAPIKey = errors.New("news api key is not configured")

const pageSize = "20"

type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

func NewClient(client *resty.Client, baseURL, apiKey string) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Search returns the latest English articles for keyword, grouped by source.
func (c *Client) Search(ctx context.Context, keyword string) ([]models.NewsGroup, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", c.apiKey).
		SetQueryParams(map[string]string{
			"q":        keyword,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": pageSize,
		}).
		Get(c.baseURL + "/everything")
	if err != nil {
		return nil, fmt.Errorf("news api request failed: %w", err)
	}

	var body everythingResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse news api response (status %d): %w", resp.StatusCode(), err)
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("news api error %s: %s", body.Code, body.Message)
	}

	var groups []models.NewsGroup
	index := make(map[string]int)
	for _, a := range body.Articles {
		snippet := a.Description
		if snippet == "" {
			snippet = a.Content
		}

		article := models.NewsArticle{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			Snippet:     snippet,
			PublishedAt: a.PublishedAt,
			Image:       a.URLToImage,
		}

		i, ok := index[a.Source.Name]
		if !ok {
			i = len(groups)
			index[a.Source.Name] = i
			groups = append(groups, models.NewsGroup{Source: a.Source.Name})
		}
		groups[i].Articles = append(groups[i].Articles, article)
	}

	return groups, nil
}
