package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/bilgisen/trendportal/internal/cache"
	"github.com/bilgisen/trendportal/internal/config"
	"github.com/bilgisen/trendportal/internal/logger"
	"github.com/bilgisen/trendportal/internal/models"
	"github.com/bilgisen/trendportal/internal/storage"
	"github.com/rs/zerolog"
)

// Archiver stores each fetched article once per TTL window
type Archiver struct {
	index cache.Index
	store storage.Store
	ttl   time.Duration
	log   zerolog.Logger
}

func New(index cache.Index, store storage.Store, ttl time.Duration) *Archiver {
	return &Archiver{
		index: index,
		store: store,
		ttl:   ttl,
		log:   logger.Component("archive"),
	}
}

// FromConfig builds the configured archiver. It returns nil when archiving is disabled.
func FromConfig(ctx context.Context, cfg *config.Config) (*Archiver, error) {
	var store storage.Store
	switch cfg.ArchiveBackend {
	case config.ArchiveNone:
		return nil, nil
	case config.ArchiveFile:
		fs, err := storage.NewFileStore(cfg.ArchivePath)
		if err != nil {
			return nil, err
		}
		store = fs
	case config.ArchiveR2:
		r2, err := storage.NewR2Store(ctx, cfg.R2EndpointURL(), cfg.R2AccessKey, cfg.R2SecretKey, cfg.R2Bucket)
		if err != nil {
			return nil, err
		}
		store = r2
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.ArchiveBackend)
	}

	var index cache.Index = cache.NewMemoryIndex()
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		index = redisClient
	}

	return New(index, store, cfg.CacheTTL), nil
}

// Archive saves item unless its URL was archived within the TTL.
func (a *Archiver) Archive(ctx context.Context, item models.ArchivedArticle) error {
	seen, err := a.index.IsProcessed(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("error checking archive index: %w", err)
	}
	if seen {
		a.log.Debug().
			Str("url", item.URL).
			Msg("Skipping already archived article")
		return nil
	}

	if err := a.store.Save(ctx, &item); err != nil {
		return fmt.Errorf("error saving article: %w", err)
	}

	if err := a.index.MarkProcessed(ctx, item.ID, a.ttl); err != nil {
		return fmt.Errorf("error marking %s as archived: %w", item.URL, err)
	}

	a.log.Info().
		Str("url", item.URL).
		Str("path", item.FilePath).
		Int("length", item.Length).
		Msg("Article archived")
	return nil
}

// Close releases the index connection
func (a *Archiver) Close() error {
	return a.index.Close()
}
