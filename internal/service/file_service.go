package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"webpconv/internal/config"
	"webpconv/internal/domain"
	"webpconv/internal/port"
)

// FileService hands out presigned URLs so browsers talk to the bucket directly.
type FileService interface {
	CreateUpload(ctx context.Context, filename, contentType string) (*port.PresignedPost, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
}

type fileService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewFileService creates a new FileService implementation.
func NewFileService(storage port.ObjectStorage, cfg *config.S3Config) FileService {
	return &fileService{
		storage: storage,
		cfg:     cfg,
	}
}

// CreateUpload presigns a form POST that stores the file under filename. The
// policy caps the body at the configured upload size and only admits image
// content types.
func (s *fileService) CreateUpload(ctx context.Context, filename, contentType string) (*port.PresignedPost, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("filename is required: %w", domain.ErrInvalidRequest)
	}
	if !strings.HasPrefix(contentType, domain.UploadContentTypePrefix) {
		return nil, fmt.Errorf("content type %q: %w", contentType, domain.ErrUnsupportedFileType)
	}

	post, err := s.storage.PresignPost(ctx, port.PresignPostInput{
		Bucket:            s.cfg.Bucket,
		Key:               filename,
		ContentType:       contentType,
		ContentTypePrefix: domain.UploadContentTypePrefix,
		MaxBytes:          s.cfg.MaxUploadMB * 1024 * 1024,
		Expiry:            time.Duration(s.cfg.PresignExpiry) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("presigning upload for %s: %w", filename, err)
	}

	post.URL, err = s.publicURL(post.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("fileService.CreateUpload: presigned upload for %s (%s)", filename, contentType)
	return post, nil
}

// GetDownloadURL presigns a GET for the WebP derivative of key when it exists,
// and for key itself otherwise.
func (s *fileService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is required: %w", domain.ErrInvalidRequest)
	}

	target := key
	derived := DerivedKey(key)
	ok, err := s.storage.Exists(ctx, s.cfg.Bucket, derived)
	switch {
	case err != nil:
		log.Printf("fileService.GetDownloadURL: checking %s failed, serving original: %v", derived, err)
	case ok:
		target = derived
	}

	signed, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, target, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("presigning download for %s: %w", target, err)
	}
	return s.publicURL(signed)
}

// publicURL swaps the scheme and host of a presigned URL for the configured
// public endpoint. The signature covers the host, so the public endpoint must
// reach the same server under the name it was signed for or proxy to it.
func (s *fileService) publicURL(raw string) (string, error) {
	if s.cfg.PublicEndpoint == "" {
		return raw, nil
	}
	public, err := url.Parse(s.cfg.PublicEndpoint)
	if err != nil {
		return "", fmt.Errorf("parsing public endpoint: %w", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing presigned url: %w", err)
	}
	u.Scheme = public.Scheme
	u.Host = public.Host
	return u.String(), nil
}
