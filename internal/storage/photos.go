package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/outpost-ops/taskboard/backend/internal/config"
)

// PhotoStore keeps inspection and safety-event photos in one S3-compatible
// bucket (AWS S3 or MinIO). Database rows reference photos by object key
// only; the bytes never touch Postgres.
type PhotoStore struct {
	client *s3.Client
	bucket string
}

func NewPhotoStore(ctx context.Context, cfg *config.Config) (*PhotoStore, error) {
	if cfg.Photos.Bucket == "" {
		return nil, fmt.Errorf("photo bucket not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Photos.Region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Photos.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Photos.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Photos.Endpoint)
		}
	})

	return &PhotoStore{client: client, bucket: cfg.Photos.Bucket}, nil
}

// Put stores one photo and returns its generated object key. kind is the
// record type the photo belongs to ("inspection", "safety-event").
func (s *PhotoStore) Put(ctx context.Context, kind string, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s/%s", kind, time.Now().UTC().Format("2006-01"), uuid.NewString())

	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return key, nil
}

func (s *PhotoStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return nil, "", err
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return out.Body, contentType, nil
}

func (s *PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	return err
}
