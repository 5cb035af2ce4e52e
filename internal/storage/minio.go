package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/apaudel/folio/internal/config"
)

// MinIOStorage holds uploaded portfolio images. Objects are written
// under uploads/<kind>/ and referenced from the content document by
// URL only; deleting or replacing an image never touches the document.
type MinIOStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIOStorage creates the client and ensures the bucket exists.
func NewMinIOStorage(cfg *config.MinIOConfig) (*MinIOStorage, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStorage{client: mc, bucket: cfg.Bucket, publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/")}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// UploadImage streams one image into the bucket and returns its object
// key and a browser-reachable URL. kind groups objects by what they
// illustrate (profile, project, book...), filename only contributes
// its extension.
func (s *MinIOStorage) UploadImage(ctx context.Context, kind, filename string, reader io.Reader, size int64, contentType string) (objectPath, publicURL string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	key := path.Join("uploads", kind, uuid.NewString()+ext)
	_, err = s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", fmt.Errorf("minio put: %w", err)
	}
	u, err := s.URLFor(ctx, key)
	if err != nil {
		return "", "", err
	}
	return key, u, nil
}

// URLFor returns the public URL for an object key: joined onto the
// configured base URL when one is set, otherwise a presigned GET link
// valid for seven days.
func (s *MinIOStorage) URLFor(ctx context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + s.bucket + "/" + key, nil
	}
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, 7*24*time.Hour, url.Values{})
	if err != nil {
		return "", fmt.Errorf("minio presign: %w", err)
	}
	return presigned.String(), nil
}
