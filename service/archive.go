package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mrlhasang20/influencerFlow/config"
)

// ArchiveService stores generated contract documents in object storage
// so the editor UI can hand out download links. Optional: when archiving
// is disabled the handler simply skips it.
type ArchiveService struct {
	client *minio.Client
	bucket string
	config *config.ArchiveConfig
}

func NewArchiveService(cfg *config.ArchiveConfig) (*ArchiveService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ArchiveService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *ArchiveService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// StoreContract uploads the composed contract text and returns a
// presigned download URL.
func (s *ArchiveService) StoreContract(ctx context.Context, tenant, contractID, contractText string) (string, error) {
	objectName := objectNameFor(tenant, contractID)
	reader := strings.NewReader(contractText)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(contractText)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive contract: %w", err)
	}

	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// DeleteContract removes an archived contract document
func (s *ArchiveService) DeleteContract(ctx context.Context, tenant, contractID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectNameFor(tenant, contractID), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete archived contract: %w", err)
	}

	return nil
}

func objectNameFor(tenant, contractID string) string {
	return fmt.Sprintf("%s/%s.txt", tenant, contractID)
}
