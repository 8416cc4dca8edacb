package formatter

import (
	"bytes"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Looked up relative to the working directory.
	pdfFontPath = "ttf/DejaVuSans.ttf"
)

type PDFFormatter struct {
	fontPath string
}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{fontPath: pdfFontPath}
}

func (mf *PDFFormatter) Format(report Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Without the bundled font, fall back to Arial with cp1252 translation.
	fontName := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if _, err := os.Stat(mf.fontPath); err == nil {
		pdf.AddUTF8Font(pdfFontName, "", mf.fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", mf.fontPath)
		fontName = pdfFontName
		tr = func(s string) string { return s }
	}

	heading := func(size float64, text string) {
		pdf.SetFont(fontName, "B", size)
		pdf.Cell(0, 10, tr(text))
		pdf.Ln(12)
	}
	body := func(text string) {
		pdf.SetFont(fontName, "", 12)
		_, lineHeight := pdf.GetFontSize()
		pdf.MultiCell(0, lineHeight*1.5, tr(text), "", "", false)
		pdf.Ln(4)
	}

	heading(20, reportTitle)
	body("Folder: " + report.FolderID)
	heading(14, "Question")
	body(report.Question)
	heading(14, "Answer")
	body(report.Answer)

	if len(report.Warnings) > 0 {
		heading(14, "Unreadable files")
		for _, w := range report.Warnings {
			body("- " + w)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (mf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
