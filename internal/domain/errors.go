package domain

import "errors"

var (
	ErrNotFound               = errors.New("object not found")
	ErrStorage                = errors.New("object storage request failed")
	ErrDecode                 = errors.New("cannot decode image")
	ErrEncode                 = errors.New("cannot encode webp")
	ErrEmptyEvent             = errors.New("event contains no records")
	ErrUnknownStorageProvider = errors.New("unknown storage provider")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
)
