package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	"go.uber.org/zap"
)

// SignedURLTTL is how long presigned QR download links stay valid
const SignedURLTTL = 60 * time.Second

// Store uploads, deletes and signs QR images in an S3-compatible bucket
type Store struct {
	client *s3.S3
	bucket string
	logger *zap.Logger
}

// New creates a Store from the storage configuration
func New(cfg config.StorageConfig, logger *zap.Logger) (*Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return &Store{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// KeyFor returns the deterministic object key for an individual's QR image
func KeyFor(individualID uuid.UUID) string {
	return fmt.Sprintf("qr/%s.png", individualID)
}

// Upload stores a PNG at key, overwriting any existing object
func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Uploaded QR image", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Delete removes the object at key
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// SignedURL returns a short-lived presigned download link for key
func (s *Store) SignedURL(key string) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(SignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return url, nil
}
