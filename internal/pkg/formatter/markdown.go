package formatter

import (
	"bytes"
	"fmt"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", reportTitle)
	fmt.Fprintf(&buf, "**Folder:** `%s`\n\n", report.FolderID)
	fmt.Fprintf(&buf, "## Question\n\n%s\n\n", report.Question)
	fmt.Fprintf(&buf, "## Answer\n\n%s\n", report.Answer)

	if len(report.Warnings) > 0 {
		buf.WriteString("\n## Unreadable files\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&buf, "- %s\n", w)
		}
	}
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
