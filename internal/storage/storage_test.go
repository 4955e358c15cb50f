package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bilgisen/trendportal/internal/models"
	"github.com/stretchr/testify/require"
)

func testArticle() *models.ArchivedArticle {
	return &models.ArchivedArticle{
		ID:        "abc123",
		URL:       "https://example.com/story",
		Content:   "Hello World",
		Length:    11,
		FetchedAt: time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
	}
}

func TestFileStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "articles"))
	require.NoError(t, err)

	item := testArticle()
	require.NoError(t, store.Save(context.Background(), item))

	want := filepath.Join(dir, "articles", "2026", "10", "19", "1792398600_abc123.json")
	require.Equal(t, want, item.FilePath)

	data, err := os.ReadFile(item.FilePath)
	require.NoError(t, err)

	var saved models.ArchivedArticle
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Equal(t, item.URL, saved.URL)
	require.Equal(t, item.Content, saved.Content)
}

func TestFileStoreSaveCancelled(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, store.Save(ctx, testArticle()), context.Canceled)
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestR2StoreSave(t *testing.T) {
	fake := &fakeS3{}
	store := &R2Store{client: fake, bucket: "articles-bucket", prefix: "articles"}

	item := testArticle()
	require.NoError(t, store.Save(context.Background(), item))

	require.Equal(t, "articles-bucket", aws.ToString(fake.input.Bucket))
	require.Equal(t, "articles/2026/10/19/abc123.json", aws.ToString(fake.input.Key))
	require.Equal(t, "application/json", aws.ToString(fake.input.ContentType))
	require.Equal(t, "r2://articles-bucket/articles/2026/10/19/abc123.json", item.FilePath)

	var saved models.ArchivedArticle
	require.NoError(t, json.Unmarshal(fake.body, &saved))
	require.Equal(t, "Hello World", saved.Content)
}

func TestR2StoreSaveError(t *testing.T) {
	store := &R2Store{client: &fakeS3{err: errors.New("access denied")}, bucket: "b", prefix: "articles"}

	err := store.Save(context.Background(), testArticle())
	require.ErrorContains(t, err, "access denied")
}

func TestNewR2Store(t *testing.T) {
	store, err := NewR2Store(context.Background(), "http://localhost:9000", "key", "secret", "bucket")
	require.NoError(t, err)
	require.Equal(t, "bucket", store.bucket)
}
