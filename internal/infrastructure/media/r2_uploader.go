package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/vitrinalocal/services/api/internal/application"
	"github.com/vitrinalocal/services/api/internal/domain"
)

// Config holds the credentials and addressing for the R2 bucket that
// hosts store photos.
type Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	PublicBaseURL   string
	Folder          string
	ImageTransform  string
}

// R2Uploader implements application.PhotoUploader against an
// S3-compatible bucket. Delivery URLs go through the CDN image
// transformer so every photo is served at the same fixed size.
type R2Uploader struct {
	client *s3.Client
	cfg    Config
	logger zerolog.Logger
}

// NewR2Uploader builds the S3 client pointed at the account's R2 endpoint.
func NewR2Uploader(cfg Config, logger zerolog.Logger) *R2Uploader {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Uploader{client: client, cfg: cfg, logger: logger}
}

// Upload stores one image under the generated identifier and returns
// its public URL plus the object key acting as storage identifier.
func (u *R2Uploader) Upload(ctx context.Context, upload application.PhotoUpload) (domain.Photo, error) {
	key := u.objectKey(upload.PublicID, upload.ContentType)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(upload.Data),
		ContentType: aws.String(upload.ContentType),
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("subida de %s: %w", key, err)
	}

	u.logger.Debug().Str("key", key).Int("bytes", len(upload.Data)).Msg("foto subida")

	return domain.Photo{
		URL:       u.publicURL(key),
		StorageID: key,
	}, nil
}

func (u *R2Uploader) objectKey(publicID, contentType string) string {
	folder := strings.Trim(u.cfg.Folder, "/")
	if folder == "" {
		return publicID + extensionFor(contentType)
	}
	return fmt.Sprintf("%s/%s%s", folder, publicID, extensionFor(contentType))
}

func (u *R2Uploader) publicURL(key string) string {
	base := strings.TrimRight(u.cfg.PublicBaseURL, "/")
	if u.cfg.ImageTransform == "" {
		return fmt.Sprintf("%s/%s", base, key)
	}
	return fmt.Sprintf("%s/cdn-cgi/image/%s/%s", base, u.cfg.ImageTransform, key)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
