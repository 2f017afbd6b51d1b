package extract

import (
	"path/filepath"
	"strings"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

// Extractor turns one attachment file into line items.
type Extractor interface {
	Extract(path string) ([]licitacao.Item, error)
}

// Registry maps attachment extensions to their extractors.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry wires the extractors for every supported attachment format.
func NewRegistry(maxFileSize int64) *Registry {
	return &Registry{
		byExt: map[string]Extractor{
			".pdf":  NewPDFExtractor(maxFileSize),
			".docx": NewDOCXExtractor(maxFileSize),
		},
	}
}

// ForPath returns the extractor handling the file's extension, or nil for
// unsupported formats.
func (r *Registry) ForPath(path string) Extractor {
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}
