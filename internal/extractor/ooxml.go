package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Unlicensed readers for Office Open XML packages. They walk the part XML
// directly and are used when no unioffice key is configured.

const docxBodyPart = "word/document.xml"

var slidePart = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func openPackage(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}
	return zr, nil
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	return data, nil
}

// docxFromXML returns one line per paragraph. Paragraphs inside tables follow
// the body paragraphs, matching the unioffice reader.
func docxFromXML(data []byte) (string, error) {
	zr, err := openPackage(data)
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != docxBodyPart {
			continue
		}
		part, err := readPart(f)
		if err != nil {
			return "", err
		}

		body, tables, err := wordParagraphs(part)
		if err != nil {
			return "", err
		}
		return strings.Join(append(body, tables...), "\n"), nil
	}

	return "", fmt.Errorf("missing %s", docxBodyPart)
}

func wordParagraphs(part []byte) (body, tables []string, err error) {
	dec := xml.NewDecoder(bytes.NewReader(part))

	var (
		sb       strings.Builder
		tblDepth int
		inRun    bool
		inText   bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return body, tables, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", docxBodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "p":
				sb.Reset()
			case "r":
				inRun = true
			case "t":
				inText = true
			case "tab":
				// w:tab also appears in paragraph tab stop definitions
				if inRun {
					sb.WriteByte('\t')
				}
			case "br", "cr":
				if inRun {
					sb.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth--
			case "r":
				inRun = false
			case "t":
				inText = false
			case "p":
				if tblDepth > 0 {
					tables = append(tables, sb.String())
				} else {
					body = append(body, sb.String())
				}
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}

// pptxFromXML returns the text of every slide in slide number order
func pptxFromXML(data []byte) (string, error) {
	zr, err := openPackage(data)
	if err != nil {
		return "", err
	}

	type slide struct {
		num  int
		file *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		m := slidePart.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slide{num: n, file: f})
	}
	if len(slides) == 0 && !hasPart(zr, "ppt/presentation.xml") {
		return "", errors.New("missing ppt/presentation.xml")
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	texts := make([]string, 0, len(slides))
	for _, s := range slides {
		part, err := readPart(s.file)
		if err != nil {
			return "", err
		}
		text, err := slideText(part)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", s.num, err)
		}
		texts = append(texts, text)
	}

	return strings.Join(texts, "\n"), nil
}

// slideText joins the drawing paragraphs of one slide with newlines
func slideText(part []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(part))

	var (
		paras  []string
		sb     strings.Builder
		inText bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return strings.Join(paras, "\n"), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				sb.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if sb.Len() > 0 {
					paras = append(paras, sb.String())
				}
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}

func hasPart(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}
