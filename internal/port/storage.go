package port

import (
	"context"
	"io"
	"time"

	"webpconv/internal/domain"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// PresignPostInput describes a browser form upload to presign. The policy
// limits the body to MaxBytes and requires a Content-Type starting with
// ContentTypePrefix.
type PresignPostInput struct {
	Bucket            string
	Key               string
	ContentType       string
	ContentTypePrefix string
	MaxBytes          int64
	Expiry            time.Duration
}

// PresignedPost is the form target and the fields the browser must send with the file.
type PresignedPost struct {
	URL    string            `json:"signedUrl"`
	Fields map[string]string `json:"fields"`
}

// ObjectStorage abstracts the object store.
// Download returns an error wrapping domain.ErrNotFound when the object does not
// exist and domain.ErrStorage for any other failure. The whole body is read into
// memory; objects are bounded by the upload policy. Upload overwrites silently.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) (*domain.StoredObject, error)
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Exists(ctx context.Context, bucket, key string) (bool, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	PresignPost(ctx context.Context, input PresignPostInput) (*PresignedPost, error)
}
