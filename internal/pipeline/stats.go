package pipeline

import "github.com/licitatools/licitaparse/internal/licitacao"

// RunStats aggregates what one pipeline run touched.
type RunStats struct {
	Documents          int `json:"documents"`
	DocumentsWithItems int `json:"documents_with_items"`
	DocumentsFailed    int `json:"documents_failed"`
	Attachments        int `json:"attachments"`
	Items              int `json:"items"`
}

func (s *RunStats) record(rec *licitacao.Licitacao) {
	s.Documents++
	s.Attachments += len(rec.AnexosProcessados)
	s.Items += len(rec.ItensExtraidos)
	if len(rec.ItensExtraidos) > 0 {
		s.DocumentsWithItems++
	}
}
