package utils

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentExtractor extracts text from various document formats
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from a file based on its extension
func (e *DocumentExtractor) ExtractText(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(content), nil
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDocx(content)
	case ".doc":
		// Legacy binary format: keep whatever printable text survives.
		return printable(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripXML(doc.Editable().GetContent()), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:tab\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
	blankRun     = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n\s*\n+`)
)

// stripXML turns WordprocessingML into plain text, one line per paragraph.
func stripXML(raw string) string {
	text := paragraphEnd.ReplaceAllString(raw, "\n")
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = blankRun.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

func printable(content []byte) string {
	var sb strings.Builder
	for _, b := range content {
		if b >= 32 && b <= 126 || b == '\n' || b == '\r' || b == '\t' {
			sb.WriteByte(b)
		}
	}
	return strings.TrimSpace(blankRun.ReplaceAllString(sb.String(), " "))
}

// IsSupportedFormat reports whether filename is an accepted resume format
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}
