package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"webpconv/internal/config"
	"webpconv/internal/domain"
	"webpconv/internal/port"
)

type minioClient struct {
	client *minio.Client
}

// NewMinioClient creates an ObjectStorage backed by an S3-compatible server
// such as MinIO. cfg.Endpoint is host[:port]; a scheme prefix is tolerated
// and overrides UseSSL.
func NewMinioClient(cfg *config.S3Config) (port.ObjectStorage, error) {
	endpoint, secure := splitEndpoint(cfg.Endpoint, cfg.UseSSL)
	if endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &minioClient{client: client}, nil
}

func (c *minioClient) Download(ctx context.Context, bucket, key string) (*domain.StoredObject, error) {
	obj, err := c.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(fmt.Sprintf("minio get %s/%s", bucket, key), err)
	}
	defer obj.Close()

	// GetObject is lazy; Stat performs the request and surfaces NoSuchKey.
	info, err := obj.Stat()
	if err != nil {
		return nil, classify(fmt.Sprintf("minio stat %s/%s", bucket, key), err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("minio read %s/%s: %w: %w", bucket, key, domain.ErrStorage, err)
	}
	return &domain.StoredObject{
		Body:        data,
		ContentType: info.ContentType,
	}, nil
}

func (c *minioClient) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	size := input.Size
	if size <= 0 {
		size = -1
	}
	info, err := c.client.PutObject(ctx, input.Bucket, input.Key, input.Body, size, minio.PutObjectOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("minio put %s/%s: %w: %w", input.Bucket, input.Key, domain.ErrStorage, err)
	}
	return &port.UploadOutput{
		Location: info.Location,
		ETag:     info.ETag,
	}, nil
}

func (c *minioClient) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := c.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		err = classify(fmt.Sprintf("minio stat %s/%s", bucket, key), err)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *minioClient) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucket, key, time.Duration(expirySeconds)*time.Second, nil)
	if err != nil {
		return "", fmt.Errorf("minio presign: %w", err)
	}
	return u.String(), nil
}

func (c *minioClient) PresignPost(ctx context.Context, input port.PresignPostInput) (*port.PresignedPost, error) {
	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(input.Bucket); err != nil {
		return nil, fmt.Errorf("minio post policy: %w", err)
	}
	if err := policy.SetKey(input.Key); err != nil {
		return nil, fmt.Errorf("minio post policy: %w", err)
	}
	if err := policy.SetExpires(time.Now().UTC().Add(input.Expiry)); err != nil {
		return nil, fmt.Errorf("minio post policy: %w", err)
	}
	if err := policy.SetContentLengthRange(0, input.MaxBytes); err != nil {
		return nil, fmt.Errorf("minio post policy: %w", err)
	}
	if err := policy.SetContentTypeStartsWith(input.ContentTypePrefix); err != nil {
		return nil, fmt.Errorf("minio post policy: %w", err)
	}

	u, fields, err := c.client.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return nil, fmt.Errorf("minio presign post: %w", err)
	}
	if input.ContentType != "" {
		fields["Content-Type"] = input.ContentType
	}
	return &port.PresignedPost{URL: u.String(), Fields: fields}, nil
}

func classify(op string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

func splitEndpoint(endpoint string, useSSL bool) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "https://"), "/"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), false
	default:
		return strings.TrimSuffix(endpoint, "/"), useSSL
	}
}
