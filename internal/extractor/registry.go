// Package extractor turns raw document bytes into plain text.
//
// Dispatch is a closed lookup table keyed by MIME type. Every extractor is a
// pure function; malformed input is reported as an error, never a panic.
package extractor

import (
	"fmt"

	"github.com/futig/drive-consult/internal/entity"
)

// Func converts the raw content of one document into plain text
type Func func(data []byte) (string, error)

// Format describes how a MIME type is fetched and extracted
type Format struct {
	MimeType string
	// ExportAs is set for native cloud documents that must be exported
	// (converted server-side) instead of downloaded.
	ExportAs string
	// Skip marks types that are recognized but never extracted.
	Skip    bool
	Extract Func
}

// Run executes the extractor, converting library panics into errors
func (f Format) Run(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s: %v", entity.ErrExtractionFailed, f.MimeType, r)
		}
	}()

	text, err = f.Extract(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entity.ErrExtractionFailed, f.MimeType, err)
	}
	return text, nil
}

type Registry struct {
	formats map[string]Format
	order   []string
}

// NewRegistry creates a registry with every supported format
func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]Format)}

	r.Register(Format{MimeType: entity.MimeTypePlainText, Extract: PlainText})
	r.Register(Format{MimeType: entity.MimeTypeGoogleDoc, ExportAs: entity.MimeTypePlainText, Extract: Passthrough})
	r.Register(Format{MimeType: entity.MimeTypeDOCX, Extract: DOCX})
	r.Register(Format{MimeType: entity.MimeTypePPTX, Extract: PPTX})
	r.Register(Format{MimeType: entity.MimeTypePDF, Extract: PDF})
	r.Register(Format{MimeType: entity.MimeTypeLegacyWord, Skip: true, Extract: LegacyWord})

	return r
}

// Register adds or replaces a format, keeping the original position on replace
func (r *Registry) Register(f Format) {
	if _, exists := r.formats[f.MimeType]; !exists {
		r.order = append(r.order, f.MimeType)
	}
	r.formats[f.MimeType] = f
}

// Lookup returns the format registered for mimeType
func (r *Registry) Lookup(mimeType string) (Format, error) {
	f, ok := r.formats[mimeType]
	if !ok {
		return Format{}, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, mimeType)
	}
	return f, nil
}

// SupportedMimeTypes returns the allowlist used when listing a folder for consultation
func (r *Registry) SupportedMimeTypes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
