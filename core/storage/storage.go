package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"event-portal/core/config"
	"event-portal/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores objects and reports where they were written.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Uploader struct {
	client ObjectPutter
	bucket string
}

// NewS3Client builds an S3 client from static credentials. A custom endpoint
// (MinIO and similar) switches to path-style addressing.
func NewS3Client(cfg config.S3Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func NewS3Uploader(client ObjectPutter, bucket string) Uploader {
	return &s3Uploader{client: client, bucket: bucket}
}

func (u *s3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		logger.Error("Storage:Upload:Error", "error", err, "bucket", u.bucket, "key", key)
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	location := fmt.Sprintf("s3://%s/%s", u.bucket, strings.TrimPrefix(key, "/"))
	logger.Info("Storage:Upload:Done", "location", location, "size", len(body))
	return location, nil
}
