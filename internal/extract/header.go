package extract

import (
	"strings"

	"github.com/licitatools/licitaparse/internal/textutil"
)

// Header synonym sets. Issuing agencies name the same columns in many ways;
// matching is by substring on the canonical (accent-stripped, lowercased)
// cell text.
var (
	itemSynonyms     = []string{"item", "it"}
	quantitySynonyms = []string{"quantidade", "quant", "qtd", "qtdd", "qtde", "qte", "unidades"}
	objectSynonyms   = []string{"objeto", "descricao", "especificacao", "discriminacao", "servico", "natureza"}
	unitSynonyms     = []string{"unidade", "unid", "und", "undd", "u.m.", "emb"}
	lotSynonyms      = []string{"lote", "grupo"}
)

// ColumnMap records which column holds each schema field after header
// identification. Unbound fields are -1.
type ColumnMap struct {
	Item       int
	Quantidade int
	Objeto     int
	Unidade    int
	Lote       int
}

// IdentifyColumns decides whether row is a usable table header. Each field
// binds independently to the leftmost cell containing one of its synonyms;
// a cell may serve several fields. The row is only accepted when both the
// description and the quantity columns were found; without those two no
// item can be built.
func IdentifyColumns(row []string) (ColumnMap, bool) {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = textutil.Canonical(c)
	}

	cols := ColumnMap{Item: -1, Quantidade: -1, Objeto: -1, Unidade: -1, Lote: -1}
	bindColumn(cells, itemSynonyms, &cols.Item)
	bindColumn(cells, quantitySynonyms, &cols.Quantidade)
	bindColumn(cells, objectSynonyms, &cols.Objeto)
	bindColumn(cells, unitSynonyms, &cols.Unidade)
	bindColumn(cells, lotSynonyms, &cols.Lote)

	if cols.Objeto < 0 || cols.Quantidade < 0 {
		return ColumnMap{}, false
	}
	return cols, true
}

func bindColumn(cells []string, synonyms []string, target *int) {
	for i, cell := range cells {
		for _, syn := range synonyms {
			if strings.Contains(cell, syn) {
				*target = i
				return
			}
		}
	}
}
