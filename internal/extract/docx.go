package extract

import (
	"github.com/licitatools/licitaparse/internal/docx"
	"github.com/licitatools/licitaparse/internal/licitacao"
)

// DOCXExtractor extracts line items from DOCX attachments. DOCX item
// listings are always tabular, so there is no text fallback.
type DOCXExtractor struct {
	reader *docx.Reader
}

// NewDOCXExtractor creates a DOCX extractor enforcing the given file size
// limit.
func NewDOCXExtractor(maxFileSize int64) *DOCXExtractor {
	return &DOCXExtractor{
		reader: docx.NewReader(maxFileSize),
	}
}

// Extract parses every table of the document under one shared lot and
// numbering state.
func (e *DOCXExtractor) Extract(path string) ([]licitacao.Item, error) {
	tables, err := e.reader.Tables(path)
	if err != nil {
		return nil, err
	}

	st := NewState()
	return collectTableItems(tables, st), nil
}
