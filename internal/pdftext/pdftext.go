// Package pdftext extracts per-page plain text from PDF documents. It is the
// only component that touches the PDF format; everything downstream works on
// page strings.
package pdftext

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/NirmitD9/credit-card-statement-parser/internal/statement"
)

// scannedThreshold is the chars-per-page floor below which a PDF is treated as
// a scanned image with no extractable text.
const scannedThreshold = 50

// Extractor yields the ordered page texts of a document. Implementations must
// return one entry per page (empty string for pages without text) and an
// UNREADABLE_DOCUMENT ParseError for documents that cannot be decoded.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// PDFExtractor is the ledongthuc/pdf-backed Extractor.
type PDFExtractor struct{}

func New() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages reads the document at path and returns its page texts in order.
// The pdf library panics on some malformed inputs, so the whole read is
// wrapped in recover and reported as an unreadable document instead.
func (e *PDFExtractor) ExtractPages(path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = statement.Unreadable(path, fmt.Errorf("panic during PDF read: %v", r))
		}
	}()

	f, reader, openErr := pdf.Open(path)
	if openErr != nil {
		return nil, statement.Unreadable(path, openErr)
	}
	defer f.Close()

	n := reader.NumPage()
	if n < 1 {
		return nil, statement.Unreadable(path, fmt.Errorf("document has no pages"))
	}

	pages = make([]string, 0, n)
	total := 0
	for i := 1; i <= n; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, textErr := p.GetPlainText(nil)
		if textErr != nil {
			// A single undecodable page yields an empty entry, not a failure.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
		total += len(text)
	}

	if isLikelyScanned(total, n) {
		return nil, statement.Unreadable(path, fmt.Errorf("no extractable text (scanned or image-only document)"))
	}

	return pages, nil
}

// isLikelyScanned returns true when the document carries too little text per
// page to be a text-layer statement.
func isLikelyScanned(totalChars, pageCount int) bool {
	if pageCount <= 0 {
		pageCount = 1
	}
	return totalChars/pageCount < scannedThreshold
}
