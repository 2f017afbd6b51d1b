// Package licitacao defines the validated domain model shared by the
// extraction engine and the output sinks: the line item, the per-procurement
// result envelope and the metadata sidecar.
package licitacao

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinDescriptionLen is the minimum description length for a valid item.
	// Shorter descriptions are almost always table noise.
	MinDescriptionLen = 3

	// DefaultUnit is the sentinel unit of measure used when none was
	// extracted.
	DefaultUnit = "UN"
)

var (
	ErrItemNumber  = errors.New("item number must be greater than zero")
	ErrDescription = errors.New("description shorter than minimum length")
	ErrQuantity    = errors.New("quantity must be greater than zero")
)

// Item is a single procurement line item. Instances are only built through
// NewItem, so an Item in hand always satisfies the field constraints.
type Item struct {
	Lote                *string `json:"lote"`
	Numero              int     `json:"item"`
	Objeto              string  `json:"objeto"`
	Quantidade          int     `json:"quantidade"`
	UnidadeFornecimento string  `json:"unidade_fornecimento"`
}

// NewItem validates and builds an Item. Construction is the validation
// gate: callers treat an error as "this row is not an item", never as a
// fault. A blank lote normalizes to absent and a blank unidade falls back
// to DefaultUnit.
func NewItem(lote string, numero int, objeto string, quantidade int, unidade string) (Item, error) {
	objeto = strings.TrimSpace(objeto)

	if numero <= 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrItemNumber, numero)
	}
	if utf8.RuneCountInString(objeto) < MinDescriptionLen {
		return Item{}, fmt.Errorf("%w: %q", ErrDescription, objeto)
	}
	if quantidade <= 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrQuantity, quantidade)
	}

	item := Item{
		Numero:              numero,
		Objeto:              objeto,
		Quantidade:          quantidade,
		UnidadeFornecimento: strings.TrimSpace(unidade),
	}
	if item.UnidadeFornecimento == "" {
		item.UnidadeFornecimento = DefaultUnit
	}
	if l := strings.TrimSpace(lote); l != "" {
		item.Lote = &l
	}
	return item, nil
}

// LoteValue returns the lot label, or "" when the item has none.
func (i Item) LoteValue() string {
	if i.Lote == nil {
		return ""
	}
	return *i.Lote
}
