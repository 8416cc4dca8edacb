package extractor

import (
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/presentation"
)

// licensed is set once a unioffice key has been accepted. unioffice refuses to
// read documents without one, so DOCX and PPTX fall back to the XML readers.
var licensed atomic.Bool

// SetLicenseKey registers a metered unioffice key. An empty key is a no-op.
func SetLicenseKey(key string) error {
	if key == "" {
		return nil
	}
	if err := license.SetMeteredKey(key); err != nil {
		return fmt.Errorf("set unioffice license: %w", err)
	}
	licensed.Store(true)
	return nil
}

// DOCX extracts the raw text of a word-processing document, one line per paragraph.
// Table contents follow the body paragraphs.
func DOCX(data []byte) (string, error) {
	if !licensed.Load() {
		return docxFromXML(data)
	}
	return docxFromUnioffice(data)
}

// PPTX extracts the text of every slide, slide order preserved
func PPTX(data []byte) (string, error) {
	if !licensed.Load() {
		return pptxFromXML(data)
	}
	return pptxFromUnioffice(data)
}

func docxFromUnioffice(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	var lines []string
	for _, p := range doc.Paragraphs() {
		lines = append(lines, paragraphText(p))
	}

	for _, tbl := range doc.Tables() {
		for _, row := range tbl.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					lines = append(lines, paragraphText(p))
				}
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

func paragraphText(p document.Paragraph) string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

func pptxFromUnioffice(data []byte) (string, error) {
	pres, err := presentation.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pptx: %w", err)
	}
	defer pres.Close()

	slides := pres.Slides()
	texts := make([]string, 0, len(slides))
	for i := range slides {
		texts = append(texts, slides[i].ExtractText().Text())
	}

	return strings.Join(texts, "\n"), nil
}
