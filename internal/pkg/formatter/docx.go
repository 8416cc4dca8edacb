package formatter

import (
	"bytes"
	"strings"

	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(report Report) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	addHeading(doc, "Heading1", reportTitle)
	addText(doc, "Folder: "+report.FolderID)

	addHeading(doc, "Heading2", "Question")
	addText(doc, report.Question)

	addHeading(doc, "Heading2", "Answer")
	for _, line := range strings.Split(report.Answer, "\n") {
		addText(doc, line)
	}

	if len(report.Warnings) > 0 {
		addHeading(doc, "Heading2", "Unreadable files")
		for _, w := range report.Warnings {
			addText(doc, "- "+w)
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addHeading(doc *document.Document, style, text string) {
	par := doc.AddParagraph()
	par.SetStyle(style)
	par.AddRun().AddText(text)
}

func addText(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
