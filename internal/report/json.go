package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
	"gopkg.in/yaml.v3"
)

func WriteJSON(w io.Writer, t *truthtable.TruthTable) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func WriteYAML(w io.Writer, t *truthtable.TruthTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return enc.Close()
}
