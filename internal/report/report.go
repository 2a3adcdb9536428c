package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

type Format string

const (
	Markdown Format = "markdown"
	Plain    Format = "plain"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Markdown, Plain, JSON, YAML}

func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Markdown, nil
	}
	f := Format(strings.ToLower(s))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q, expected one of %v", s, formats)
}

// Write renders t to w in the requested format.
func Write(w io.Writer, t *truthtable.TruthTable, f Format) error {
	switch f {
	case Markdown, "":
		return WriteMarkdown(w, t)
	case Plain:
		return WriteTable(w, t)
	case JSON:
		return WriteJSON(w, t)
	case YAML:
		return WriteYAML(w, t)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
