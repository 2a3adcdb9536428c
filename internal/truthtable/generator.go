package truthtable

import (
	"log/slog"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/expr"
)

const (
	// DefaultMaxVariables keeps a table at 65536 rows.
	DefaultMaxVariables = 16
	// HardMaxVariables applies when no positive limit is configured.
	HardMaxVariables = 24
)

// Generator enumerates every assignment of an equation's variables.
// Row count is 2^n, so the number of variables is capped.
type Generator struct {
	maxVariables int
}

func NewGenerator(maxVariables int) *Generator {
	if maxVariables <= 0 || maxVariables > HardMaxVariables {
		maxVariables = HardMaxVariables
	}
	return &Generator{maxVariables: maxVariables}
}

func (g *Generator) MaxVariables() int {
	return g.maxVariables
}

// Generate evaluates eq once per row. Nothing is returned unless every row succeeds.
func (g *Generator) Generate(eq *expr.Equation) (*TruthTable, error) {
	n := len(eq.Variables)
	if n > g.maxVariables {
		return nil, apperr.NewResource(n, g.maxVariables)
	}

	numRows := 1 << n
	rows := make([]Row, 0, numRows)

	for i := 0; i < numRows; i++ {
		inputs := bitsMSBFirst(i, n)

		a := make(Assignment, n)
		for j, name := range eq.Variables {
			a[name] = inputs[j]
		}

		out, err := Eval(eq.Expr, a)
		if err != nil {
			slog.Debug("row evaluation failed", "row", i, "equation", eq.String(), "error", err)
			return nil, err
		}
		rows = append(rows, Row{Inputs: inputs, Output: out})
	}

	variables := make([]string, n)
	copy(variables, eq.Variables)

	return &TruthTable{
		Variables: variables,
		Output:    eq.Output,
		Rows:      rows,
	}, nil
}

func bitsMSBFirst(num, digits int) []bool {
	bits := make([]bool, digits)
	for i := 0; i < digits; i++ {
		bits[i] = (num>>(digits-1-i))&1 == 1
	}
	return bits
}
