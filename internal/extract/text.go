package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

// Markers recognized by the free-text scanner. Comprasnet-style item
// listings print one "label: value" block per item; the labels below are
// matched as substrings of the lowercased line. Note that "descrição" is
// matched with its accents: the form layouts this scanner targets emit
// well-encoded text, and the accented form avoids false hits on words like
// "descricao" inside file paths.
const (
	descriptionMarker = "descrição"
	objectMarker      = "objeto:"
	quantityMarker    = "quantidade"
	unitMarker        = "unidade"
	deliveryMarker    = "local de entrega"
	boilerplatePrefix = "Detalhada:"
)

// groupKeywords mark section headers such as "1 - GRUPO ÚNICO" or
// "2 - Itens da Licitação".
var groupKeywords = []string{"grupo", "lote", "itens da licitação"}

// textBuffer accumulates one item's fields between markers.
type textBuffer struct {
	objeto        string
	quantidade    int
	hasQuantidade bool
	unidade       string
}

func (b *textBuffer) complete() bool {
	return b.objeto != "" && b.hasQuantidade
}

// textScanner is the line state machine behind TextItems.
type textScanner struct {
	lines []string
	buf   textBuffer
	lote  string
	items []licitacao.Item
}

// TextItems reconstructs items from "label: value" form layouts. It is the
// fallback used when a PDF carries its item listing as flowing text rather
// than as a detectable table.
func TextItems(text string) []licitacao.Item {
	sc := &textScanner{lines: strings.Split(text, "\n")}

	for i, raw := range sc.lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if isLotHeader(line, lower) {
			// The previous item, if any, ended with the old lot still
			// active.
			sc.flush()
			before, _, _ := strings.Cut(line, "-")
			sc.lote = strings.TrimSpace(before)
			continue
		}

		sc.scanLine(line, lower, i)
	}

	// Trailing item without a closing marker.
	sc.flush()
	return sc.items
}

// isLotHeader reports whether a line opens a new lot/group section: it
// starts with a digit, contains a hyphen and names one of the grouping
// keywords.
func isLotHeader(line, lower string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsDigit(r) || !strings.Contains(line, "-") {
		return false
	}
	for _, kw := range groupKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// scanLine dispatches one content line. The delivery label excludes a line
// from the quantity rule: "Local de Entrega (Quantidade): Goiânia" names a
// place, not a count, and such a line still ends the item below.
func (sc *textScanner) scanLine(line, lower string, idx int) {
	switch {
	case strings.Contains(lower, descriptionMarker) || strings.Contains(lower, objectMarker):
		sc.scanDescription(line, idx)

	case strings.Contains(lower, quantityMarker) && strings.Contains(line, ":") &&
		!strings.Contains(lower, deliveryMarker):
		if v, ok := ParseNumber(sc.colonValue(line, idx)); ok {
			sc.buf.quantidade = int(v)
			sc.buf.hasQuantidade = true
		}

	case strings.Contains(lower, unitMarker) && strings.Contains(line, ":"):
		if v := sc.colonValue(line, idx); v != "" {
			sc.buf.unidade = v
		}

	case strings.Contains(lower, deliveryMarker):
		sc.flush()
	}
}

// scanDescription starts a new item: a complete buffer is flushed first,
// then the description value replaces whatever partial state remains.
func (sc *textScanner) scanDescription(line string, idx int) {
	sc.flush()
	if v := sc.colonValue(line, idx); v != "" {
		sc.buf.objeto = v
	}
}

// colonValue returns the text after the first ":". When nothing follows
// the colon on this line, the value is the next line verbatim. The
// lookahead does not consume the next line; it is still scanned on its
// own turn.
func (sc *textScanner) colonValue(line string, idx int) string {
	if _, after, found := strings.Cut(line, ":"); found && strings.TrimSpace(after) != "" {
		return strings.TrimSpace(after)
	}
	if idx+1 < len(sc.lines) {
		return strings.TrimSpace(sc.lines[idx+1])
	}
	return ""
}

// flush emits the buffered item when it has both a description and a
// quantity. Item numbers are a running 1-based count of flushed items,
// independent of any numbering printed in the source text. An incomplete
// buffer is left untouched so late-arriving fields can still complete it;
// a complete buffer is always cleared, even when validation drops it.
func (sc *textScanner) flush() {
	if !sc.buf.complete() {
		return
	}

	desc := strings.TrimSpace(strings.ReplaceAll(sc.buf.objeto, boilerplatePrefix, ""))
	numero := len(sc.items) + 1

	if item, err := licitacao.NewItem(sc.lote, numero, desc, sc.buf.quantidade, sc.buf.unidade); err == nil {
		sc.items = append(sc.items, item)
	}
	sc.buf = textBuffer{}
}
