package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type s3Uploader struct {
	uploader *manager.Uploader
	bucket   string
	region   string
}

func NewS3(ctx context.Context, bucket, region string) (Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &s3Uploader{uploader: manager.NewUploader(client), bucket: bucket, region: region}, nil
}

func (u *s3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("images/%s%s", uuid.NewString(), filepath.Ext(filename))
	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
