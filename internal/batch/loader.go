package batch

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Equations) == 0 {
		return nil, fmt.Errorf("suite has no equations")
	}

	seen := make(map[string]struct{}, len(s.Equations))
	for i, eq := range s.Equations {
		if eq.ID == "" {
			return nil, fmt.Errorf("equation at index %d has no id", i)
		}
		if _, ok := seen[eq.ID]; ok {
			return nil, fmt.Errorf("duplicate equation id %q", eq.ID)
		}
		seen[eq.ID] = struct{}{}
		if strings.TrimSpace(eq.Line) == "" {
			return nil, fmt.Errorf("equation %q has no line", eq.ID)
		}
	}

	return &s, nil
}
