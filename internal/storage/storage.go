package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bilgisen/trendportal/internal/models"
)

// Store persists archived articles
type Store interface {
	Save(ctx context.Context, item *models.ArchivedArticle) error
}

// FileStore writes one JSON file per article under dated directories
type FileStore struct {
	basePath string
	mu       sync.Mutex
}

func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{
		basePath: basePath,
	}, nil
}

// Save writes item to basePath/YYYY/MM/DD/<unix>_<id>.json and records the path on item.
func (s *FileStore) Save(ctx context.Context, item *models.ArchivedArticle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	datePath := filepath.Join(s.basePath, item.FetchedAt.Format("2006/01/02"))
	if err := os.MkdirAll(datePath, 0755); err != nil {
		return fmt.Errorf("failed to create date directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s.json", item.FetchedAt.Unix(), item.ID)
	filePath := filepath.Join(datePath, filename)

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write article file: %w", err)
	}

	item.FilePath = filePath
	return nil
}
