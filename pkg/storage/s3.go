package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	appconfig "go-jobboard-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// FileStore uploads user files (resumes, company logos, profile photos) to an
// S3-compatible bucket and returns the stored object key.
type FileStore struct {
	client *s3.Client
	bucket string
}

// NewFileStore creates an S3-backed file store. A custom endpoint enables
// S3-compatible providers; path-style addressing is required for those.
func NewFileStore(ctx context.Context, cfg *appconfig.Config) (*FileStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.S3Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &FileStore{client: client, bucket: cfg.S3Bucket}, nil
}

// IsConfigured reports whether a bucket is set; uploads fail fast otherwise.
func (fs *FileStore) IsConfigured() bool {
	return fs != nil && fs.bucket != ""
}

// Upload stores data under prefix with a random object name and returns the key.
// The original extension is kept; the base name is discarded to avoid
// non-ASCII object keys.
func (fs *FileStore) Upload(ctx context.Context, prefix, filename, contentType string, data []byte) (string, error) {
	if !fs.IsConfigured() {
		return "", fmt.Errorf("file storage is not configured")
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))

	_, err := fs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(fs.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return key, nil
}

// Delete removes an object; missing objects are not an error.
func (fs *FileStore) Delete(ctx context.Context, key string) error {
	if !fs.IsConfigured() {
		return nil
	}
	_, err := fs.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	return err
}

// HealthCheck verifies the bucket is reachable.
func (fs *FileStore) HealthCheck(ctx context.Context) error {
	_, err := fs.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(fs.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", fs.bucket, err)
	}
	return nil
}
