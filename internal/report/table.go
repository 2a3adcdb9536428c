package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

// WriteMarkdown renders a pipe table where every cell is padded to its column name.
//
//	| a | b | out |
//	|---|---|-----|
//	| 0 | 0 | 0   |
func WriteMarkdown(w io.Writer, t *truthtable.TruthTable) error {
	header := t.Header()

	sep := make([]string, len(header))
	for i, name := range header {
		sep[i] = strings.Repeat("-", utf8.RuneCountInString(name)+2)
	}

	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|%s|\n", strings.Join(sep, "|")); err != nil {
		return err
	}

	for _, r := range t.Rows {
		cells := make([]string, 0, len(header))
		for i, in := range r.Inputs {
			cells = append(cells, pad(bit(in), utf8.RuneCountInString(header[i])))
		}
		cells = append(cells, pad(bit(r.Output), utf8.RuneCountInString(t.Output)))

		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders whitespace-aligned columns.
func WriteTable(w io.Writer, t *truthtable.TruthTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := t.Header()
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range t.Rows {
		row := make([]string, 0, len(header))
		for _, in := range r.Inputs {
			row = append(row, bit(in))
		}
		row = append(row, bit(r.Output))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
