package truthtable

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(name string) expr.Var { return expr.Var{Name: name} }

func TestEval(t *testing.T) {
	a := Assignment{"x": true, "y": false}

	tests := []struct {
		name     string
		e        expr.Expr
		expected bool
	}{
		{name: "var true", e: v("x"), expected: true},
		{name: "var false", e: v("y"), expected: false},
		{name: "const", e: expr.Const{Value: true}, expected: true},
		{name: "not", e: expr.Not{Operand: v("x")}, expected: false},
		{name: "and", e: expr.And{Left: v("x"), Right: v("y")}, expected: false},
		{name: "or", e: expr.Or{Left: v("x"), Right: v("y")}, expected: true},
		{name: "xor differing", e: expr.Xor{Left: v("x"), Right: v("y")}, expected: true},
		{name: "xor equal", e: expr.Xor{Left: v("x"), Right: v("x")}, expected: false},
		{
			name:     "nested",
			e:        expr.Or{Left: expr.Not{Operand: v("x")}, Right: expr.And{Left: v("x"), Right: expr.Not{Operand: v("y")}}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.e, a)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEval_UnboundVariable(t *testing.T) {
	// The left side already decides AND, the right side must still be checked.
	e := expr.And{Left: expr.Const{Value: false}, Right: v("missing")}

	_, err := Eval(e, Assignment{})
	require.Error(t, err)

	var ee *apperr.EvalError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "missing", ee.Variable)
}

func TestGenerator_RowOrder(t *testing.T) {
	tests := []struct {
		name    string
		e       expr.Expr
		outputs []bool
	}{
		{name: "and", e: expr.And{Left: v("a"), Right: v("b")}, outputs: []bool{false, false, false, true}},
		{name: "or", e: expr.Or{Left: v("a"), Right: v("b")}, outputs: []bool{false, true, true, true}},
		{name: "xor", e: expr.Xor{Left: v("a"), Right: v("b")}, outputs: []bool{false, true, true, false}},
		{name: "a and not b", e: expr.And{Left: v("a"), Right: expr.Not{Operand: v("b")}}, outputs: []bool{false, false, true, false}},
	}

	g := NewGenerator(DefaultMaxVariables)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := g.Generate(&expr.Equation{Output: "out", Variables: []string{"a", "b"}, Expr: tt.e})
			require.NoError(t, err)

			assert.Equal(t, []string{"a", "b", "out"}, table.Header())
			require.Len(t, table.Rows, 4)
			assert.Equal(t, []bool{false, false}, table.Rows[0].Inputs)
			assert.Equal(t, []bool{false, true}, table.Rows[1].Inputs)
			assert.Equal(t, []bool{true, false}, table.Rows[2].Inputs)
			assert.Equal(t, []bool{true, true}, table.Rows[3].Inputs)
			assert.Equal(t, tt.outputs, table.OutputColumn())
		})
	}
}

func TestGenerator_MostSignificantVariableFirst(t *testing.T) {
	table, err := NewGenerator(0).Generate(&expr.Equation{
		Output:    "z",
		Variables: []string{"a", "b", "c"},
		Expr:      v("a"),
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 8)

	assert.Equal(t, []bool{false, false, true}, table.Rows[1].Inputs)
	assert.Equal(t, []bool{true, false, true}, table.Rows[5].Inputs)
	assert.Equal(t, []bool{false, false, false, false, true, true, true, true}, table.OutputColumn())
}

func TestGenerator_NoVariables(t *testing.T) {
	table, err := NewGenerator(DefaultMaxVariables).Generate(&expr.Equation{
		Output:    "z",
		Variables: []string{},
		Expr:      expr.Not{Operand: expr.Const{Value: false}},
	})
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Empty(t, table.Rows[0].Inputs)
	assert.True(t, table.Rows[0].Output)
	assert.Equal(t, []string{"z"}, table.Header())
}

func TestGenerator_VariableLimit(t *testing.T) {
	eq := &expr.Equation{Output: "z", Variables: []string{"a", "b", "c"}, Expr: v("a")}

	table, err := NewGenerator(2).Generate(eq)
	require.Error(t, err)
	assert.Nil(t, table)

	var re *apperr.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 3, re.Variables)
	assert.Equal(t, 2, re.Limit)

	_, err = NewGenerator(3).Generate(eq)
	assert.NoError(t, err)
}

func TestNewGenerator_FallsBackToHardLimit(t *testing.T) {
	assert.Equal(t, HardMaxVariables, NewGenerator(0).MaxVariables())
	assert.Equal(t, HardMaxVariables, NewGenerator(-3).MaxVariables())
	assert.Equal(t, HardMaxVariables, NewGenerator(64).MaxVariables())
	assert.Equal(t, 5, NewGenerator(5).MaxVariables())
}

func TestGenerator_EvalErrorReturnsNoTable(t *testing.T) {
	eq := &expr.Equation{Output: "z", Variables: []string{"a"}, Expr: expr.Or{Left: v("a"), Right: v("b")}}

	table, err := NewGenerator(DefaultMaxVariables).Generate(eq)
	require.Error(t, err)
	assert.Nil(t, table)

	var ee *apperr.EvalError
	assert.True(t, errors.As(err, &ee))
}

func TestTruthTable_Lookup(t *testing.T) {
	table, err := NewGenerator(DefaultMaxVariables).Generate(&expr.Equation{
		Output:    "z",
		Variables: []string{"a", "b"},
		Expr:      expr.And{Left: v("a"), Right: expr.Not{Operand: v("b")}},
	})
	require.NoError(t, err)

	out, ok := table.Lookup(Assignment{"a": true, "b": false})
	require.True(t, ok)
	assert.True(t, out)

	out, ok = table.Lookup(Assignment{"a": true, "b": true})
	require.True(t, ok)
	assert.False(t, out)
}
