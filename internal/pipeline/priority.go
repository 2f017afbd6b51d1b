package pipeline

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/licitatools/licitaparse/internal/textutil"
)

// File priority scores. The portal's own item-listing export outranks the
// reference term, which outranks the call notice; everything else ties at
// zero and keeps directory order.
const (
	listingScore = 100
	termScore    = 75
	noticeScore  = 50
)

// ScoreFile rates how likely an attachment is to carry the full item
// listing, judging by its file name alone. Matching runs on the canonical
// form, so accented and upper-case variants score the same.
func ScoreFile(path string) int {
	name := textutil.Canonical(filepath.Base(path))
	switch {
	case strings.Contains(name, "-relacaoitens"):
		return listingScore
	case strings.Contains(name, "termo"):
		return termScore
	case strings.Contains(name, "edital"):
		return noticeScore
	}
	return 0
}

// SortByPriority orders attachment paths best candidate first. The sort is
// stable: equal scores keep their discovery order.
func SortByPriority(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return ScoreFile(paths[i]) > ScoreFile(paths[j])
	})
}
