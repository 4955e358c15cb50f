package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bilgisen/trendportal/internal/models"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2Store archives articles into an S3-compatible bucket (Cloudflare R2)
type R2Store struct {
	client putObjectAPI
	bucket string
	prefix string
}

// NewR2Store builds an S3 client for the R2 endpoint using static credentials.
func NewR2Store(ctx context.Context, endpoint, accessKey, secretKey, bucket string) (*R2Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Store{client: client, bucket: bucket, prefix: "articles"}, nil
}

// Save uploads item as JSON under articles/YYYY/MM/DD/<id>.json.
func (s *R2Store) Save(ctx context.Context, item *models.ArchivedArticle) error {
	key := path.Join(s.prefix, item.FetchedAt.Format("2006/01/02"), item.ID+".json")

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", key, s.bucket, err)
	}

	item.FilePath = "r2://" + s.bucket + "/" + key
	return nil
}
