package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/bilgisen/trendportal/internal/middleware"
	"github.com/bilgisen/trendportal/internal/models"
	"github.com/gofiber/fiber/v2"
)

const version = "1.0.0"

// TrendsService looks up Google Trends data
type TrendsService interface {
	Lookup(ctx context.Context, p models.TrendQueryParams) ([]models.RelatedQueryResult, error)
	Interest(ctx context.Context, q models.InterestQuery) (*models.InterestSummary, error)
}

// ArticleService reduces a web page to its paragraph text
type ArticleService interface {
	Fetch(ctx context.Context, rawURL string) (models.ArticleContent, error)
}

// NewsService searches news articles
type NewsService interface {
	Search(ctx context.Context, keyword string) ([]models.NewsGroup, error)
}

type Handlers struct {
	trends    TrendsService
	articles  ArticleService
	news      NewsService
	validator *middleware.Validator
}

func NewHandlers(trends TrendsService, articles ArticleService, news NewsService) *Handlers {
	return &Handlers{
		trends:    trends,
		articles:  articles,
		news:      news,
		validator: middleware.NewValidator(),
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  models.StatusOK,
		"version": version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Generate handles POST /generate. Every failure is reported in the body
// as {status: "error", message} with a 200 status.
func (h *Handlers) Generate(c *fiber.Ctx) error {
	var req models.TrendQueryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return h.respondError(c, fmt.Errorf("invalid request body: %w", err))
		}
	}

	params := req.Params()
	results, err := h.trends.Lookup(c.UserContext(), params)
	if err != nil {
		return h.respondError(c, err)
	}

	logger.Get().Info().
		Str("keyword", params.Keyword).
		Str("country", params.Country).
		Int("results", len(results)).
		Msg("Related queries served")

	return c.JSON(models.TrendsResponse{
		Status:  models.StatusOK,
		Results: results,
	})
}

// FetchArticle handles POST /fetch_article with the same error convention as Generate.
func (h *Handlers) FetchArticle(c *fiber.Ctx) error {
	var req models.ArticleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return h.respondError(c, fmt.Errorf("invalid request body: %w", err))
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		return h.respondError(c, err)
	}

	article, err := h.articles.Fetch(c.UserContext(), req.URL)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(models.ArticleResponse{
		Status:  models.StatusOK,
		Content: article.Content,
	})
}

// Interest handles GET /api/v1/interest
func (h *Handlers) Interest(c *fiber.Ctx) error {
	var q models.InterestQuery
	if err := h.validator.ParseQuery(c, &q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.trends.Interest(c.UserContext(), q)
	if err != nil {
		logger.Get().Error().Err(err).Str("keyword", q.Keyword).Msg("Error getting interest over time")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to fetch interest data",
			"message": err.Error(),
		})
	}

	return c.JSON(summary)
}

// News handles GET /api/v1/news
func (h *Handlers) News(c *fiber.Ctx) error {
	var q models.NewsQuery
	if err := h.validator.ParseQuery(c, &q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	groups, err := h.news.Search(c.UserContext(), q.Keyword)
	if err != nil {
		logger.Get().Error().Err(err).Str("keyword", q.Keyword).Msg("Error searching news")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to fetch news",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"keyword": q.Keyword,
		"groups":  groups,
	})
}

// Search handles GET /api/v1/search: interest, related queries and news are
// fetched concurrently and a failed part is returned as null.
func (h *Handlers) Search(c *fiber.Ctx) error {
	var q models.InterestQuery
	if err := h.validator.ParseQuery(c, &q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	q = q.WithDefaults()

	ctx := c.UserContext()
	log := logger.Get()
	resp := models.SearchResponse{Success: true, Keyword: q.Keyword}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		summary, err := h.trends.Interest(ctx, q)
		if err != nil {
			log.Warn().Err(err).Str("keyword", q.Keyword).Msg("Interest lookup failed")
			return
		}
		resp.Interest = summary
	}()

	go func() {
		defer wg.Done()
		related, err := h.trends.Lookup(ctx, q.RelatedParams())
		if err != nil {
			log.Warn().Err(err).Str("keyword", q.Keyword).Msg("Related queries lookup failed")
			return
		}
		resp.Related = related
	}()

	go func() {
		defer wg.Done()
		groups, err := h.news.Search(ctx, q.Keyword)
		if err != nil {
			log.Warn().Err(err).Str("keyword", q.Keyword).Msg("News search failed")
			return
		}
		resp.News = groups
	}()

	wg.Wait()
	return c.JSON(resp)
}

func (h *Handlers) respondError(c *fiber.Ctx, err error) error {
	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("Request failed")

	return c.JSON(models.NewErrorResponse(err))
}
