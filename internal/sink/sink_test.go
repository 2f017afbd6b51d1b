package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

func sampleRecords(t *testing.T) []licitacao.Licitacao {
	t.Helper()

	item, err := licitacao.NewItem("G1", 1, "Peças & serviços de manutenção", 10, "UN")
	require.NoError(t, err)

	rec, err := licitacao.NewLicitacao("123.json", licitacao.Metadata{
		NumeroPregao: "PE 900/2024",
		Orgao:        "Prefeitura Municipal de Goiânia",
		Cidade:       "Goiânia",
		Estado:       "GO",
	}, []string{"termo.docx"}, []licitacao.Item{item})
	require.NoError(t, err)

	return []licitacao.Licitacao{rec}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saida", "resultado.json")
	require.NoError(t, WriteJSON(path, sampleRecords(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "[\n  {"), "expected a pretty-printed array")
	assert.Contains(t, text, `"numero_pregao": "PE 900/2024"`)
	assert.Contains(t, text, `"lote": "G1"`)
	// HTML escaping is off: the ampersand survives verbatim.
	assert.Contains(t, text, "Peças & serviços")
	assert.NotContains(t, text, `\u0026`)
}

func TestWriteJSONEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultado.json")
	require.NoError(t, WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteJSONNullLot(t *testing.T) {
	item, err := licitacao.NewItem("", 1, "Mesa reta", 5, "")
	require.NoError(t, err)
	rec, err := licitacao.NewLicitacao("1.json", licitacao.Metadata{Estado: "SP"}, nil, []licitacao.Item{item})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resultado.json")
	require.NoError(t, WriteJSON(path, []licitacao.Licitacao{rec}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lote": null`)
	assert.Contains(t, string(data), `"unidade_fornecimento": "UN"`)
}

func TestValidateResult(t *testing.T) {
	assert.NoError(t, validateResult([]byte(`[]`)))

	err := validateResult([]byte(`[{"arquivo_json": 1}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planilha", "resultado.xlsx")
	require.NoError(t, WriteXLSX(path, sampleRecords(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(itemSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Arquivo", header)

	objeto, err := f.GetCellValue(itemSheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "Peças & serviços de manutenção", objeto)

	numero, err := f.GetCellValue(itemSheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "1", numero)

	lote, err := f.GetCellValue(itemSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "G1", lote)
}

func TestWriteXLSXNoItems(t *testing.T) {
	rec, err := licitacao.NewLicitacao("1.json", licitacao.Metadata{Estado: "SP"}, nil, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resultado.xlsx")
	require.NoError(t, WriteXLSX(path, []licitacao.Licitacao{rec}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(itemSheet, "A2")
	require.NoError(t, err)
	assert.Empty(t, value)
}
