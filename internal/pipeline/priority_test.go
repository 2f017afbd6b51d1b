package pipeline

import (
	"reflect"
	"testing"
)

func TestScoreFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "item listing", path: "anexo-relacaoitens.pdf", want: listingScore},
		{name: "item listing mixed case", path: "/run/Pregao-RelacaoItens2024.pdf", want: listingScore},
		{name: "listing outranks term", path: "anexo-relacaoitens-do-termo.pdf", want: listingScore},
		{name: "reference term", path: "termo-referencia.pdf", want: termScore},
		{name: "reference term accented", path: "TERMO DE REFERÊNCIA.pdf", want: termScore},
		{name: "call notice", path: "edital.pdf", want: noticeScore},
		{name: "call notice suffixed", path: "Edital_Retificado.docx", want: noticeScore},
		{name: "unscored", path: "anexo1.pdf", want: 0},
		{name: "listing without hyphen", path: "relacaoitens.pdf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreFile(tt.path); got != tt.want {
				t.Errorf("expected score %d but got %d", tt.want, got)
			}
		})
	}
}

func TestSortByPriority(t *testing.T) {
	paths := []string{"edital.pdf", "termo-referencia.pdf", "anexo-relacaoitens.pdf"}
	SortByPriority(paths)

	want := []string{"anexo-relacaoitens.pdf", "termo-referencia.pdf", "edital.pdf"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected %v but got %v", want, paths)
	}
}

func TestSortByPriorityStable(t *testing.T) {
	paths := []string{"anexo-b.pdf", "anexo-a.pdf", "edital.pdf"}
	SortByPriority(paths)

	want := []string{"edital.pdf", "anexo-b.pdf", "anexo-a.pdf"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected ties to keep discovery order, got %v", paths)
	}
}
