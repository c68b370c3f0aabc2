// Package s3 implements the FileStorage port over the AWS SDK.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mernspace/catalog-service/internal/core/ports"
)

// Config captures the settings for the S3 storage backend.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Storage stores image assets in an S3 bucket.
type Storage struct {
	client *s3.Client
	bucket string
	region string
}

// NewStorage builds an S3-backed storage. Static credentials are used when
// provided; otherwise the SDK's default chain applies.
func NewStorage(ctx context.Context, cfg Config) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Upload writes the file under <folder>/<random uuid>.<ext>. The original
// filename contributes only its extension, so concurrent uploads of
// identically named files cannot collide.
func (s *Storage) Upload(ctx context.Context, file []byte, fileName, mimeType, folder string) (*ports.UploadResult, error) {
	key := buildKey(fileName, folder)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put: %w", err)
	}

	return &ports.UploadResult{
		URL: s.URL(key),
		Key: key,
	}, nil
}

// Delete removes the object under key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}

// URL returns the public virtual-hosted URL for key.
func (s *Storage) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func buildKey(fileName, folder string) string {
	name := uuid.NewString() + filepath.Ext(fileName)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
