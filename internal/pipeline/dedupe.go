package pipeline

import (
	"sort"
	"strings"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

// dedupePrefixLen is how much of the description takes part in the
// duplicate key. Descriptions of the same item differ in tails (wrapped
// cells, trailing specs), rarely in their opening words.
const dedupePrefixLen = 30

type dedupeKey struct {
	numero int
	prefix string
}

func keyFor(item licitacao.Item) dedupeKey {
	prefix := strings.ToLower(item.Objeto)
	if runes := []rune(prefix); len(runes) > dedupePrefixLen {
		prefix = string(runes[:dedupePrefixLen])
	}
	return dedupeKey{numero: item.Numero, prefix: prefix}
}

// Deduplicate merges the items collected from different attachments of one
// procurement. The first occurrence of a key wins, except that a later
// duplicate carrying a lot replaces a kept item without one. The result is
// ordered by item number; equal numbers keep their arrival order.
func Deduplicate(items []licitacao.Item) []licitacao.Item {
	seen := make(map[dedupeKey]int, len(items))
	result := make([]licitacao.Item, 0, len(items))

	for _, item := range items {
		key := keyFor(item)
		if idx, ok := seen[key]; ok {
			if result[idx].Lote == nil && item.Lote != nil {
				result[idx] = item
			}
			continue
		}
		seen[key] = len(result)
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Numero < result[j].Numero
	})
	return result
}
