package pdfextract

import (
	"bytes"
	"strings"

	"quizgen/internal/domain"

	"github.com/ledongthuc/pdf"
)

// maxPages caps how much of a document feeds the prompt.
const maxPages = 30

// PDFExtractor implements domain.ContentExtractor for PDF uploads.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() domain.ContentExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the plain text of at most the first 30 pages in page
// order. A page with no extractable text contributes nothing. A byte stream
// that is not a well-formed PDF yields an invalid-input error.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewInvalidInputError("file is not a valid PDF")
	}

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

var _ domain.ContentExtractor = (*PDFExtractor)(nil)
