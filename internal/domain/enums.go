package domain

const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeWebP = "image/webp"
)

// ConvertibleContentTypes lists the declared content types the converter accepts.
// Matching is exact; parameters such as "; charset=" are not stripped.
var ConvertibleContentTypes = map[string]struct{}{
	ContentTypeJPEG: {},
	ContentTypePNG:  {},
}

// IsConvertible reports whether an object with the given content type should be converted.
func IsConvertible(contentType string) bool {
	_, ok := ConvertibleContentTypes[contentType]
	return ok
}

const (
	// TargetWidth is the width in pixels of every derivative.
	TargetWidth = 800
	// WebPQuality is the lossy encoder quality, 0-100.
	WebPQuality = 85
	// DerivedKeySuffix is appended to the source key; the source extension is kept.
	DerivedKeySuffix = ".webp"
	// UploadContentTypePrefix is the content type prefix browser uploads must carry.
	UploadContentTypePrefix = "image/"
)

// Outcome describes how a conversion attempt finished without error.
type Outcome string

const (
	OutcomeConverted Outcome = "converted"
	OutcomeSkipped   Outcome = "skipped"
)
