// Package sink writes the pipeline's result records to their output
// formats.
package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/licitatools/licitaparse/internal/licitacao"
)

// resultSchema is the output contract downstream consumers rely on. Every
// serialized result is checked against it before touching disk.
const resultSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": [
      "arquivo_json", "numero_pregao", "orgao", "cidade", "estado",
      "anexos_processados", "itens_extraidos"
    ],
    "properties": {
      "arquivo_json": {"type": "string"},
      "numero_pregao": {"type": "string"},
      "orgao": {"type": "string"},
      "cidade": {"type": "string"},
      "estado": {"type": "string"},
      "anexos_processados": {"type": "array", "items": {"type": "string"}},
      "itens_extraidos": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["lote", "item", "objeto", "quantidade", "unidade_fornecimento"],
          "properties": {
            "lote": {"type": ["string", "null"]},
            "item": {"type": "integer", "minimum": 1},
            "objeto": {"type": "string", "minLength": 3},
            "quantidade": {"type": "integer", "minimum": 1},
            "unidade_fornecimento": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

// WriteJSON serializes the records to path as a pretty-printed UTF-8
// array, creating parent directories as needed. An empty run still writes
// a valid empty array.
func WriteJSON(path string, records []licitacao.Licitacao) error {
	if records == nil {
		records = []licitacao.Licitacao{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if err := validateResult(buf.Bytes()); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// validateResult checks a serialized result against resultSchema.
func validateResult(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", strings.NewReader(resultSchema)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("result does not match schema: %w", err)
	}
	return nil
}
