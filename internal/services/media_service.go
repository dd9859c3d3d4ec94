package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/lawsa-dev/portal-api/internal/config"
	"github.com/lawsa-dev/portal-api/internal/models"
)

// Upload folders recognized by the signing endpoint.
const (
	FolderIDCards   = "id-cards"
	FolderMaterials = "materials"
)

// UploadAuthorization is a short-lived permission to PUT one object into
// the media store. The store's API secret never leaves the server.
type UploadAuthorization struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MediaService fronts the S3-compatible media store: presigned upload
// authorizations for the browser and server-side deletion of stored assets.
type MediaService struct {
	cfg    config.MediaConfig
	logger *slog.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(cfg config.MediaConfig, logger *slog.Logger) *MediaService {
	return &MediaService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *MediaService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load media store config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// SignUpload mints a presigned PUT URL for a fresh object key under the
// given folder. Keys are random so concurrent uploads never collide.
func (s *MediaService) SignUpload(ctx context.Context, folder, fileName string) (*UploadAuthorization, error) {
	if folder != FolderIDCards && folder != FolderMaterials {
		return nil, models.ErrBadRequest
	}

	client, err := s.client(ctx)
	if err != nil {
		s.logger.Error("failed to build media client", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New(), path.Ext(fileName))

	presignClient := s3.NewPresignClient(client)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		s.logger.Error("failed to presign upload", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return &UploadAuthorization{
		URL:       req.URL,
		Key:       key,
		ExpiresAt: time.Now().Add(s.cfg.PresignExpiry),
	}, nil
}

// Delete removes a stored asset, e.g. an id-card image once an account is
// purged by an operator.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	client, err := s.client(ctx)
	if err != nil {
		s.logger.Error("failed to build media client", slog.Any("error", err))
		return models.ErrInternalServer
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("failed to delete media object", slog.String("key", key), slog.Any("error", err))
		return models.ErrInternalServer
	}

	return nil
}
