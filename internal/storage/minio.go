package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/projects-tool/project-management-api/internal/config"
)

// StoredImage describes an uploaded project image.
type StoredImage struct {
	ObjectName  string `json:"object_name"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// ImageStore persists project images as opaque blobs and hands back the
// object key the schema stores.
type ImageStore interface {
	Save(file *multipart.FileHeader) (*StoredImage, error)
	Remove(objectName string) error
}

// MinioImageStore is a MinIO-backed ImageStore.
type MinioImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *zap.Logger
}

func NewMinioImageStore(cfg *config.Config, logger *zap.Logger) (*MinioImageStore, error) {
	minioURL := cfg.MinioURL
	if !strings.HasPrefix(minioURL, "http://") && !strings.HasPrefix(minioURL, "https://") {
		minioURL = "http://" + minioURL
	}

	u, err := url.Parse(minioURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse minio URL: %w", err)
	}
	secure := u.Scheme == "https"

	client, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioUser, cfg.MinioPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.MinioPublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", minioURL, cfg.MinioBucket)
	}

	store := &MinioImageStore{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: publicURL,
		logger:    logger,
	}

	if err := store.ensureBucket(); err != nil {
		return nil, err
	}

	return store, nil
}

func (m *MinioImageStore) ensureBucket() error {
	ctx := context.Background()

	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		m.logger.Info("Created MinIO bucket", zap.String("bucket", m.bucket))
	}

	return nil
}

// Save uploads a project image under media/<date>/<uuid><ext>.
func (m *MinioImageStore) Save(file *multipart.FileHeader) (*StoredImage, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	contentType := detectContentType(ext)
	objectName := fmt.Sprintf("media/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String(), ext)

	_, err = m.client.PutObject(context.Background(), m.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	m.logger.Info("Image uploaded",
		zap.String("filename", file.Filename),
		zap.String("object_name", objectName),
		zap.Int64("size", file.Size),
	)

	return &StoredImage{
		ObjectName:  objectName,
		URL:         m.publicURL + "/" + objectName,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}

// Remove deletes a previously stored image.
func (m *MinioImageStore) Remove(objectName string) error {
	err := m.client.RemoveObject(context.Background(), m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func detectContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
