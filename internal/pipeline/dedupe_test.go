package pipeline

import (
	"strings"
	"testing"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

func makeItem(t *testing.T, lote string, numero int, objeto string, qtd int) licitacao.Item {
	t.Helper()
	item, err := licitacao.NewItem(lote, numero, objeto, qtd, "UN")
	if err != nil {
		t.Fatalf("failed to build item: %v", err)
	}
	return item
}

func TestDeduplicateLotPreference(t *testing.T) {
	objeto := "Notebook Dell Core i7 16GB RAM 512GB SSD"
	items := []licitacao.Item{
		makeItem(t, "", 1, objeto, 10),
		makeItem(t, "G1", 1, objeto, 10),
	}

	result := Deduplicate(items)
	if len(result) != 1 {
		t.Fatalf("expected 1 item but got %d", len(result))
	}
	if result[0].LoteValue() != "G1" {
		t.Errorf("expected the duplicate with a lot to win, got %q", result[0].LoteValue())
	}
}

func TestDeduplicateFirstWins(t *testing.T) {
	objeto := "Cadeira giratória com apoio lombar"
	items := []licitacao.Item{
		makeItem(t, "G1", 1, objeto, 10),
		makeItem(t, "G2", 1, objeto, 99),
	}

	result := Deduplicate(items)
	if len(result) != 1 {
		t.Fatalf("expected 1 item but got %d", len(result))
	}
	if result[0].LoteValue() != "G1" || result[0].Quantidade != 10 {
		t.Errorf("expected the first occurrence to win, got %+v", result[0])
	}
}

func TestDeduplicatePrefixKey(t *testing.T) {
	// Identical for the first 30 characters, diverging after.
	a := "Notebook profissional com processador i7"
	b := "Notebook profissional com processador i9"

	merged := Deduplicate([]licitacao.Item{
		makeItem(t, "", 1, a, 5),
		makeItem(t, "", 1, b, 5),
	})
	if len(merged) != 1 {
		t.Errorf("expected matching prefixes to merge, got %d items", len(merged))
	}

	separate := Deduplicate([]licitacao.Item{
		makeItem(t, "", 1, "Mesa de reunião oval", 5),
		makeItem(t, "", 1, "Cadeira giratória", 5),
	})
	if len(separate) != 2 {
		t.Errorf("expected distinct descriptions to survive, got %d items", len(separate))
	}
}

func TestDeduplicatePrefixIsRuneSafe(t *testing.T) {
	base := strings.Repeat("ç", 29) + "a"
	items := []licitacao.Item{
		makeItem(t, "", 1, base+"1", 5),
		makeItem(t, "", 1, base+"2", 5),
	}

	if result := Deduplicate(items); len(result) != 1 {
		t.Errorf("expected multibyte prefixes to merge, got %d items", len(result))
	}
}

func TestDeduplicateDifferentNumbersKept(t *testing.T) {
	objeto := "Resma de papel A4 75g"
	items := []licitacao.Item{
		makeItem(t, "", 1, objeto, 10),
		makeItem(t, "", 2, objeto, 10),
	}

	if result := Deduplicate(items); len(result) != 2 {
		t.Errorf("expected different item numbers to survive, got %d items", len(result))
	}
}

func TestDeduplicateSortsByNumber(t *testing.T) {
	items := []licitacao.Item{
		makeItem(t, "", 3, "Armário alto de aço", 1),
		makeItem(t, "", 1, "Mesa reta", 2),
		makeItem(t, "", 2, "Cadeira fixa", 3),
	}

	result := Deduplicate(items)
	if len(result) != 3 {
		t.Fatalf("expected 3 items but got %d", len(result))
	}
	for i, want := range []int{1, 2, 3} {
		if result[i].Numero != want {
			t.Errorf("expected position %d to hold item %d but got %d", i, want, result[i].Numero)
		}
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	items := []licitacao.Item{
		makeItem(t, "", 2, "Resma de papel A4 75g", 10),
		makeItem(t, "G1", 1, "Notebook Dell Core i7", 4),
		makeItem(t, "", 1, "Notebook Dell Core i7", 4),
	}

	once := Deduplicate(items)
	twice := Deduplicate(once)
	if len(once) != 2 || len(twice) != len(once) {
		t.Fatalf("expected a stable result, got %d then %d items", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("position %d changed on the second pass: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if result := Deduplicate(nil); len(result) != 0 {
		t.Errorf("expected empty result, got %d items", len(result))
	}
}
