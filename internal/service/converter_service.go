package service

import (
	"bytes"
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"webpconv/internal/domain"
	"webpconv/internal/imageproc"
	"webpconv/internal/port"
)

// ConverterService turns a stored JPEG/PNG into a fixed-width WebP derivative.
type ConverterService interface {
	Convert(ctx context.Context, ref domain.ObjectRef) (*domain.ConversionResult, error)
}

type converterService struct {
	storage   port.ObjectStorage
	processor *imageproc.Processor
}

// NewConverterService creates a new ConverterService implementation.
func NewConverterService(storage port.ObjectStorage, processor *imageproc.Processor) ConverterService {
	if processor == nil {
		processor = imageproc.NewProcessor()
	}
	return &converterService{
		storage:   storage,
		processor: processor,
	}
}

// NormalizeKey decodes an object key as delivered in storage notifications:
// '+' becomes a space first, then percent-escapes are decoded. A '%' not
// followed by two hex digits is kept literally, and bytes that do not form
// valid UTF-8 after decoding become U+FFFD.
func NormalizeKey(raw string) string {
	s := strings.ReplaceAll(raw, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	decoded := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			decoded = append(decoded, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		decoded = append(decoded, s[i])
	}

	var b strings.Builder
	b.Grow(len(decoded))
	for len(decoded) > 0 {
		r, size := utf8.DecodeRune(decoded)
		b.WriteRune(r) // RuneError for each invalid byte
		decoded = decoded[size:]
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// DerivedKey returns the key the WebP derivative of key is stored under.
func DerivedKey(key string) string {
	return key + domain.DerivedKeySuffix
}

// Convert fetches ref, and if it is a JPEG or PNG, writes a resized WebP copy
// next to it. Non-image objects are skipped without error. Errors are logged
// with the source key and returned unchanged.
func (s *converterService) Convert(ctx context.Context, ref domain.ObjectRef) (*domain.ConversionResult, error) {
	key := NormalizeKey(ref.Key)

	result, err := s.convert(ctx, ref.Bucket, key)
	if err != nil {
		log.Printf("converterService.Convert: Error processing file %s: %v", key, err)
		return nil, err
	}
	return result, nil
}

func (s *converterService) convert(ctx context.Context, bucket, key string) (*domain.ConversionResult, error) {
	result := &domain.ConversionResult{
		Bucket:    bucket,
		SourceKey: key,
		TargetKey: DerivedKey(key),
	}

	// The body is read before the type gate, so skipped objects are fetched in full too.
	obj, err := s.storage.Download(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	result.ContentType = obj.ContentType

	if !domain.IsConvertible(obj.ContentType) {
		log.Printf("converterService.Convert: File %s is not an image (%q). Skipping.", key, obj.ContentType)
		result.Outcome = domain.OutcomeSkipped
		return result, nil
	}

	img, format, err := s.processor.Decode(obj.Body)
	if err != nil {
		return nil, err
	}
	result.SourceFormat = format
	result.Source = domain.Dimensions{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}

	resized := s.processor.Resize(img)
	result.Target = domain.Dimensions{Width: resized.Bounds().Dx(), Height: resized.Bounds().Dy()}

	data, err := s.processor.EncodeWebP(resized)
	if err != nil {
		return nil, err
	}
	result.Bytes = len(data)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      bucket,
		Key:         result.TargetKey,
		Body:        bytes.NewReader(data),
		ContentType: domain.ContentTypeWebP,
		Size:        int64(len(data)),
	}); err != nil {
		return nil, err
	}

	log.Printf("converterService.Convert: Successfully converted and uploaded image as WebP: %s (%s %dx%d -> %dx%d, %d bytes)",
		result.TargetKey, result.SourceFormat, result.Source.Width, result.Source.Height,
		result.Target.Width, result.Target.Height, result.Bytes)
	result.Outcome = domain.OutcomeConverted
	return result, nil
}
