package licitacao

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Metadata holds the procurement fields read from the JSON sidecar. All
// fields are plain strings; anything missing from the sidecar stays empty.
type Metadata struct {
	NumeroPregao string
	Orgao        string
	Cidade       string
	Estado       string
}

// LoadMetadata reads a sidecar file and extracts the fields of its "data"
// object. Sidecars produced upstream are not under our control, so scalar
// values of any JSON type are stringified rather than rejected.
func LoadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("cannot read sidecar: %w", err)
	}

	var sidecar struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &sidecar); err != nil {
		return Metadata{}, fmt.Errorf("cannot parse sidecar %s: %w", path, err)
	}

	return Metadata{
		NumeroPregao: stringField(sidecar.Data, "numero_pregao"),
		Orgao:        stringField(sidecar.Data, "orgao"),
		Cidade:       stringField(sidecar.Data, "cidade"),
		Estado:       stringField(sidecar.Data, "estado"),
	}, nil
}

func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
