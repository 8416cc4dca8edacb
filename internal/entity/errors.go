package entity

import "errors"

// Domain errors
var (
	// Storage errors
	ErrStorageUnavailable = errors.New("storage backend unavailable")
	ErrFileTooLarge       = errors.New("file too large")

	// Extraction errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("text extraction failed")

	// Model errors
	ErrModelUnavailable = errors.New("model backend unavailable")
	ErrNoCandidate      = errors.New("model returned no usable candidate")

	// Validation errors
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidBody  = errors.New("invalid request body")
)
