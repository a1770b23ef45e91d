package storage

import (
	"fmt"

	"webpconv/internal/config"
	"webpconv/internal/domain"
	"webpconv/internal/port"
	miniostorage "webpconv/internal/storage/minio"
	s3storage "webpconv/internal/storage/s3"
)

// ProviderFactory creates an ObjectStorage from S3 settings.
type ProviderFactory func(cfg *config.S3Config) (port.ObjectStorage, error)

var providers = map[string]ProviderFactory{
	"s3":    s3storage.NewS3Client,
	"minio": miniostorage.NewMinioClient,
}

// RegisterProvider registers a storage provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates the ObjectStorage named by cfg.Storage.Provider.
func New(cfg *config.Config) (port.ObjectStorage, error) {
	factory, ok := providers[cfg.Storage.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStorageProvider, cfg.Storage.Provider)
	}
	return factory(&cfg.S3)
}
