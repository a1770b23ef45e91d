package handler

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"webpconv/internal/domain"
	"webpconv/internal/service"
)

// S3EventHandler receives object-created notifications and converts the
// referenced objects.
type S3EventHandler struct {
	converter service.ConverterService
}

// NewS3EventHandler creates a new S3EventHandler.
func NewS3EventHandler(converter service.ConverterService) *S3EventHandler {
	return &S3EventHandler{converter: converter}
}

// Handle processes a notification. The trigger is expected to deliver one
// record per event; if more arrive, each is converted independently and the
// failures are joined. A single failure is returned unchanged.
func (h *S3EventHandler) Handle(ctx context.Context, event events.S3Event) error {
	requestID := invocationID(ctx)

	if len(event.Records) == 0 {
		log.Printf("[%s] s3EventHandler.Handle: %v", requestID, domain.ErrEmptyEvent)
		return domain.ErrEmptyEvent
	}
	if len(event.Records) > 1 {
		log.Printf("[%s] s3EventHandler.Handle: event carries %d records, processing each", requestID, len(event.Records))
	}

	var errs []error
	for _, record := range event.Records {
		ref := RefFromRecord(record)
		result, err := h.converter.Convert(ctx, ref)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("[%s] s3EventHandler.Handle: %s s3://%s/%s", requestID, result.Outcome, ref.Bucket, result.SourceKey)
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// RefFromRecord extracts the bucket and still-encoded key from a record.
func RefFromRecord(record events.S3EventRecord) domain.ObjectRef {
	return domain.ObjectRef{
		Bucket: record.S3.Bucket.Name,
		Key:    record.S3.Object.Key,
	}
}

func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}
