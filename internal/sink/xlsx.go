package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

const itemSheet = "Itens"

var xlsxHeaders = []string{
	"Arquivo", "Pregão", "Órgão", "Cidade", "Estado",
	"Lote", "Item", "Objeto", "Quantidade", "Unidade",
}

// WriteXLSX exports the records as a flat worksheet, one row per item.
// Documents without items contribute no rows.
func WriteXLSX(path string, records []licitacao.Licitacao) error {
	f := excelize.NewFile()
	defer f.Close()

	if index, _ := f.GetSheetIndex(itemSheet); index == -1 {
		if _, err := f.NewSheet(itemSheet); err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
	}
	_ = f.DeleteSheet("Sheet1")
	activeIndex, _ := f.GetSheetIndex(itemSheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemSheet, cell, h)
	}

	row := 2
	for _, rec := range records {
		for _, item := range rec.ItensExtraidos {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(itemSheet, cell, v)
			}

			write(1, rec.ArquivoJSON)
			write(2, rec.NumeroPregao)
			write(3, rec.Orgao)
			write(4, rec.Cidade)
			write(5, rec.Estado)
			write(6, item.LoteValue())
			write(7, item.Numero)
			write(8, item.Objeto)
			write(9, item.Quantidade)
			write(10, item.UnidadeFornecimento)

			row++
		}
	}

	_ = f.SetColWidth(itemSheet, "A", "A", 24)
	_ = f.SetColWidth(itemSheet, "B", "C", 28)
	_ = f.SetColWidth(itemSheet, "F", "F", 10)
	_ = f.SetColWidth(itemSheet, "H", "H", 60)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
