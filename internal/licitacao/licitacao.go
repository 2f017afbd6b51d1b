package licitacao

import (
	"errors"
	"fmt"
	"regexp"
)

// ufPattern matches a Brazilian federative unit code ("GO", "SP", ...).
var ufPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ErrEstado reports a non-empty estado field that is not a two-letter UF
// code. It marks the whole procurement record as malformed.
var ErrEstado = errors.New("estado must be a two-letter UF code")

// Licitacao is the per-procurement result record: the sidecar metadata, the
// names of the attachments that produced items, and the deduplicated items.
type Licitacao struct {
	ArquivoJSON       string   `json:"arquivo_json"`
	NumeroPregao      string   `json:"numero_pregao"`
	Orgao             string   `json:"orgao"`
	Cidade            string   `json:"cidade"`
	Estado            string   `json:"estado"`
	AnexosProcessados []string `json:"anexos_processados"`
	ItensExtraidos    []Item   `json:"itens_extraidos"`
}

// NewLicitacao assembles the result record for one procurement. Slice
// fields are never nil so the serialized form always carries arrays.
// Metadata is pass-through except for estado, which must look like a UF
// code when present.
func NewLicitacao(arquivoJSON string, meta Metadata, anexos []string, itens []Item) (Licitacao, error) {
	if meta.Estado != "" && !ufPattern.MatchString(meta.Estado) {
		return Licitacao{}, fmt.Errorf("%w: %q", ErrEstado, meta.Estado)
	}
	if anexos == nil {
		anexos = []string{}
	}
	if itens == nil {
		itens = []Item{}
	}
	return Licitacao{
		ArquivoJSON:       arquivoJSON,
		NumeroPregao:      meta.NumeroPregao,
		Orgao:             meta.Orgao,
		Cidade:            meta.Cidade,
		Estado:            meta.Estado,
		AnexosProcessados: anexos,
		ItensExtraidos:    itens,
	}, nil
}
