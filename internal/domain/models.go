package domain

// ObjectRef identifies a stored object by bucket and key.
type ObjectRef struct {
	Bucket string
	Key    string
}

// StoredObject is a fetched object body with its declared content type.
type StoredObject struct {
	Body        []byte
	ContentType string
}

// Dimensions is a pixel width/height pair.
type Dimensions struct {
	Width  int
	Height int
}

// ConversionResult reports what a single conversion did.
type ConversionResult struct {
	Outcome      Outcome
	Bucket       string
	SourceKey    string
	TargetKey    string
	ContentType  string
	SourceFormat string
	Source       Dimensions
	Target       Dimensions
	Bytes        int
}
