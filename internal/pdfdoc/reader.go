// Package pdfdoc reads procurement attachments in PDF form. It wraps the
// ledongthuc/pdf parser with panic recovery and exposes the two views the
// extraction layer needs: plain page text and reconstructed cell tables.
package pdfdoc

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxTextSize caps the amount of text collected from a single document.
const maxTextSize = 10 * 1024 * 1024

// Reader extracts content from PDF files.
type Reader struct{}

// NewReader creates a new PDF reader.
func NewReader() *Reader {
	return &Reader{}
}

// Text extracts the plain text of every page, joined by newlines.
// Pages that fail to decode are skipped.
func (r *Reader) Text(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := pageText(page)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if builder.Len()+len(content) > maxTextSize {
			remaining := maxTextSize - builder.Len()
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Tables reconstructs the cell tables of every page, in document order.
// Pages that fail to decode are skipped.
func (r *Reader) Tables(path string) ([][][]string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var tables [][][]string
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		texts, err := pageTexts(page)
		if err != nil {
			continue
		}

		tables = append(tables, tablesFromTexts(texts)...)
	}

	return tables, nil
}

// pageText extracts plain text from a single page, recovering from
// parser panics on malformed content streams.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during text extraction: %v", r)
		}
	}()

	return page.GetPlainText(nil)
}

// pageTexts extracts positioned text from a single page, recovering from
// parser panics on malformed content streams.
func pageTexts(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during content extraction: %v", r)
		}
	}()

	return page.Content().Text, nil
}
