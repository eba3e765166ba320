package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"petregistry-backend/internal/config"
	"petregistry-backend/internal/domains/pet/model"
)

// MinIOStorage is the photo-storage gateway over an S3-compatible store.
type MinIOStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewMinIOStorage(cfg config.MinIOConfig, publicBaseURL string) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false for local, true for production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Create the bucket on first run.
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinIOStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// extensionFor maps a content type to the stored file extension.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	default:
		return "bin"
	}
}

// GeneratePresignedURL issues a presigned PUT URL under the key
// pets/{userID}/{petID}/{random}.{ext}. The client uploads directly to
// the store; nothing is written here.
func (s *MinIOStorage) GeneratePresignedURL(ctx context.Context, userID, petID, contentType string, expiry time.Duration) (*model.PresignedUploadURL, error) {
	key := fmt.Sprintf("pets/%s/%s/%s.%s", userID, petID, uuid.NewString(), extensionFor(contentType))

	uploadURL, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return &model.PresignedUploadURL{
		UploadURL: uploadURL.String(),
		Key:       key,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// VerifyPhotoExists checks the object is actually present in the bucket.
func (s *MinIOStorage) VerifyPhotoExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return true, nil
}

// BuildPhotoURL computes the public URL for a confirmed key.
// Format: http://localhost:9000/petregistry/pets/user-1/pet-1/xyz.jpg
func (s *MinIOStorage) BuildPhotoURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicBaseURL, key)
}

// DeletePhoto removes a single object. Used by the housekeeping worker.
func (s *MinIOStorage) DeletePhoto(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// ListPhotosOlderThan returns keys under prefix last modified before
// cutoff. Used by the orphan sweep, never on the request path.
func (s *MinIOStorage) ListPhotosOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]string, error) {
	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var keys []string
	for object := range objectsCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		if object.LastModified.Before(cutoff) {
			keys = append(keys, object.Key)
		}
	}

	return keys, nil
}
