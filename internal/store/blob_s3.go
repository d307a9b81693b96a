package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
)

// s3PutAPI is the part of *s3.Client the blob store needs.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3BlobStore struct {
	client    s3PutAPI
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewS3BlobStore constructs a [BlobStore] that uploads to an S3-compatible
// bucket. A non-empty cfg.Endpoint points the client at MinIO or another
// compatible server and switches to path-style addressing.
func NewS3BlobStore(ctx context.Context, cfg config.S3, logger *logger.Logger) (BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3BlobStore").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Str("endpoint", cfg.Endpoint).Msg("creating s3 blob store")
	return newS3BlobStore(client, cfg, logger), nil
}

func newS3BlobStore(client s3PutAPI, cfg config.S3, logger *logger.Logger) *s3BlobStore {
	return &s3BlobStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: s3PublicURL(cfg),
		logger:    logger,
	}
}

// s3PublicURL picks the base URL uploaded objects are served from.
func s3PublicURL(cfg config.S3) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimSuffix(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *s3BlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3BlobStore.Put").Str("bucket", s.bucket).Str("key", key).Msg("error uploading object")
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return s.publicURL + "/" + key, nil
}
