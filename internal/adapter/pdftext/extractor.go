// Package pdftext implements the TextExtractor port on top of the dslipak
// PDF reader.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dslipak/pdf"

	"github.com/iho/tbrecon/internal/domain"
)

// Extractor extracts plain text from PDF documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the full text of the document, pages in order.
func (e *Extractor) ExtractText(ctx context.Context, r io.Reader) (_ string, err error) {
	// The underlying reader panics on some malformed documents.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", domain.ErrExtractionFailure, p)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}

	var buf bytes.Buffer
	for pageNo := 1; pageNo <= doc.NumPage(); pageNo++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := doc.Page(pageNo)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailure, pageNo, err)
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(word.S)
			}
			buf.WriteByte('\n')
		}
	}

	return buf.String(), nil
}
