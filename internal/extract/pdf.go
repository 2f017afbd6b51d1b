package extract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/licitatools/licitaparse/internal/licitacao"
	"github.com/licitatools/licitaparse/internal/pdfdoc"
)

// itemListingTag marks the portal export that always carries its item
// listing as flowing text, whatever the table pass finds.
const itemListingTag = "-relacaoitens"

// PDFExtractor extracts line items from PDF attachments: a table pass
// first, then the plain-text fallback when tables yield nothing or the
// file is a known item-listing export.
type PDFExtractor struct {
	validator *pdfdoc.Validator
	reader    *pdfdoc.Reader
}

// NewPDFExtractor creates a PDF extractor enforcing the given file size
// limit.
func NewPDFExtractor(maxFileSize int64) *PDFExtractor {
	return &PDFExtractor{
		validator: pdfdoc.NewValidator(maxFileSize),
		reader:    pdfdoc.NewReader(),
	}
}

// Extract runs both passes over one attachment. Lot and numbering state is
// shared by every table of the document; the text fallback keeps its own
// numbering. A fallback failure returns the table items collected so far.
func (e *PDFExtractor) Extract(path string) ([]licitacao.Item, error) {
	if err := e.validator.Validate(path); err != nil {
		return nil, err
	}

	tables, err := e.reader.Tables(path)
	if err != nil {
		return nil, err
	}

	st := NewState()
	items := collectTableItems(tables, st)

	if len(items) == 0 || isItemListing(path) {
		slog.Debug("scanning plain text", "file", filepath.Base(path), "table_items", len(items))

		text, err := e.reader.Text(path)
		if err != nil {
			slog.Warn("text fallback failed", "file", filepath.Base(path), "error", err)
			return items, nil
		}
		items = append(items, TextItems(text)...)
	}

	return items, nil
}

// isItemListing reports whether the file name marks a portal item-listing
// export.
func isItemListing(path string) bool {
	return strings.Contains(strings.ToLower(filepath.Base(path)), itemListingTag)
}
