package article

import (
	"context"
	"time"

	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/bilgisen/trendportal/internal/models"
	"github.com/bilgisen/trendportal/internal/utils"
	"github.com/rs/zerolog"
)

// Archiver receives successfully extracted articles
type Archiver interface {
	Archive(ctx context.Context, article models.ArchivedArticle) error
}

// Service fetches pages and reduces them to their paragraph text
type Service struct {
	fetcher        *Fetcher
	maxChars       int
	archiver       Archiver
	archiveTimeout time.Duration
	log            zerolog.Logger
}

// NewService creates a Service. archiver may be nil.
func NewService(fetcher *Fetcher, maxChars int, archiver Archiver) *Service {
	return &Service{
		fetcher:        fetcher,
		maxChars:       maxChars,
		archiver:       archiver,
		archiveTimeout: 30 * time.Second,
		log:            logger.Component("article"),
	}
}

// Fetch returns the first maxChars characters of the page's paragraph text.
func (s *Service) Fetch(ctx context.Context, rawURL string) (models.ArticleContent, error) {
	page, err := s.fetcher.FetchPage(ctx, rawURL)
	if err != nil {
		return models.ArticleContent{}, err
	}

	text, err := ExtractPage(page)
	if err != nil {
		return models.ArticleContent{}, err
	}

	content := utils.TruncateRunes(text, s.maxChars)

	s.log.Debug().
		Str("url", rawURL).
		Int("status", page.StatusCode).
		Int("chars", len([]rune(text))).
		Msg("Article extracted")

	if s.archiver != nil && content != "" {
		s.archive(rawURL, content)
	}

	return models.ArticleContent{Content: content}, nil
}

// archive hands the article to the archiver in the background; the response never waits on it.
func (s *Service) archive(rawURL, content string) {
	item := models.ArchivedArticle{
		ID:        utils.URLKey(rawURL),
		URL:       rawURL,
		Content:   content,
		Length:    len([]rune(content)),
		FetchedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.archiveTimeout)
		defer cancel()

		if err := s.archiver.Archive(ctx, item); err != nil {
			s.log.Error().
				Err(err).
				Str("url", item.URL).
				Msg("Error archiving article")
		}
	}()
}
