package batch

import (
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

// Evaluator is satisfied by *booltable.Engine.
type Evaluator interface {
	EvaluateLine(line string) (*truthtable.TruthTable, error)
}

type Result struct {
	Equation Equation
	Table    *truthtable.TruthTable
	Err      error
	// Match is false when the table could not be built or differs from Expect.
	Match bool
}

type Summary struct {
	Total    int
	Failed   int
	Mismatch int
}

func (s Summary) OK() bool {
	return s.Failed == 0 && s.Mismatch == 0
}

// Run evaluates every equation of the suite. A failing equation does not stop the others.
func Run(ev Evaluator, s *Suite) ([]Result, Summary) {
	results := make([]Result, 0, len(s.Equations))
	summary := Summary{Total: len(s.Equations)}

	for _, eq := range s.Equations {
		table, err := ev.EvaluateLine(eq.Line)
		res := Result{Equation: eq, Table: table, Err: err}

		switch {
		case err != nil:
			summary.Failed++
			slog.Debug("Equation failed", "id", eq.ID, "error", err)
		case eq.Expect == nil || slices.Equal(eq.Expect, table.OutputColumn()):
			res.Match = true
		default:
			summary.Mismatch++
			slog.Debug("Equation output mismatch", "id", eq.ID, "expected", eq.Expect, "got", table.OutputColumn())
		}

		results = append(results, res)
	}

	slog.Info("Suite finished", "suite", s.Name, "total", summary.Total, "failed", summary.Failed, "mismatch", summary.Mismatch)
	return results, summary
}
