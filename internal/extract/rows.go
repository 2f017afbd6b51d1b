package extract

import (
	"strings"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

// State carries lot and numbering context across every table of one
// document. It is created once per attachment, not per table or page, so
// a lot declared on page 1 still applies to a continuation table on page 3.
type State struct {
	// LastLote is the most recently observed lot label, "" when none was
	// seen yet. Rows without an explicit lot inherit it.
	LastLote string

	// ItemCounter is the next item number handed to a row that carries no
	// explicit one. Explicit numbers resynchronize it to number+1.
	ItemCounter int
}

// NewState returns the initial per-document extraction state.
func NewState() *State {
	return &State{ItemCounter: 1}
}

// cellValue resolves a mapped column against a data row: "" for unbound
// columns and rows too short to reach the index. Embedded newlines from
// wrapped table cells become spaces.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(row[idx], "\n", " "))
}

// ParseRow converts one data row into a validated item, updating st in
// place. ok is false for rows that do not describe an item (sub-headers,
// separators, rows with unparseable quantities); the caller just moves on.
func ParseRow(row []string, cols ColumnMap, st *State) (licitacao.Item, bool) {
	desc := cellValue(row, cols.Objeto)
	qtdText := cellValue(row, cols.Quantidade)
	if desc == "" || qtdText == "" {
		return licitacao.Item{}, false
	}

	qtd, ok := ParseNumber(qtdText)
	if !ok {
		return licitacao.Item{}, false
	}

	var numero int
	if n, ok := ParseNumber(cellValue(row, cols.Item)); ok {
		numero = int(n)
		st.ItemCounter = numero + 1
	} else {
		numero = st.ItemCounter
		st.ItemCounter++
	}

	lote := cellValue(row, cols.Lote)
	if lote != "" {
		st.LastLote = lote
	} else {
		lote = st.LastLote
	}

	item, err := licitacao.NewItem(lote, numero, desc, int(qtd), cellValue(row, cols.Unidade))
	if err != nil {
		return licitacao.Item{}, false
	}
	return item, true
}

// collectTableItems drives header identification and row parsing over a
// sequence of table matrices sharing one state. Tables whose first row is
// not a recognizable header are skipped entirely.
func collectTableItems(tables [][][]string, st *State) []licitacao.Item {
	var items []licitacao.Item
	for _, table := range tables {
		if len(table) == 0 {
			continue
		}
		cols, ok := IdentifyColumns(table[0])
		if !ok {
			continue
		}
		for _, row := range table[1:] {
			if item, ok := ParseRow(row, cols, st); ok {
				items = append(items, item)
			}
		}
	}
	return items
}
