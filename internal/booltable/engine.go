// Package booltable turns one `<expression> = <name>` line into a truth table.
//
// The work is split in three stages: token.Lexer, parser.Parser and
// truthtable.Generator. Engine chains them and holds only immutable
// configuration, so a single Engine may serve many goroutines.
package booltable

import (
	"github.com/DjordjeVuckovic/booltable/internal/expr"
	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

type Engine struct {
	parser    *parser.Parser
	generator *truthtable.Generator
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		parser:    parser.New(),
		generator: truthtable.NewGenerator(cfg.MaxVariables),
	}
}

// EvaluateLine parses line and enumerates its truth table.
// Malformed input yields an error matching apperr.ErrInvalidExpression,
// too many variables an *apperr.ResourceError.
func (e *Engine) EvaluateLine(line string) (*truthtable.TruthTable, error) {
	eq, err := e.parser.ParseLine(line)
	if err != nil {
		return nil, err
	}
	return e.generator.Generate(eq)
}

// Parse exposes the parsed equation without generating rows.
func (e *Engine) Parse(line string) (*expr.Equation, error) {
	return e.parser.ParseLine(line)
}

func (e *Engine) MaxVariables() int {
	return e.generator.MaxVariables()
}

var defaultEngine = NewEngine(DefaultConfig())

// EvaluateLine evaluates line with the default configuration.
func EvaluateLine(line string) (*truthtable.TruthTable, error) {
	return defaultEngine.EvaluateLine(line)
}
