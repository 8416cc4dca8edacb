package formatter

import (
	"fmt"
	"path/filepath"
	"strings"
)

const reportTitle = "Consultation"

// Report is a finished consultation rendered for export
type Report struct {
	FolderID string
	Question string
	Answer   string
	Warnings []string
}

type Formatter interface {
	Format(report Report) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// ForPath picks the formatter matching the file extension of path
func (f *Factory) ForPath(path string) (Formatter, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case markdownFileExtension, ".markdown":
		return NewMarkdownFormatter(), nil
	case docxFileExtension:
		return NewDOCXFormatter(), nil
	case pdfFileExtension:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", ext)
	}
}
