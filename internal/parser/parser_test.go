package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		variables []string
		output    string
	}{
		{
			name:      "simple AND",
			input:     "a AND b = out",
			expected:  "(a AND b)",
			variables: []string{"a", "b"},
			output:    "out",
		},
		{
			name:      "AND binds tighter than OR",
			input:     "a OR b AND c = z",
			expected:  "(a OR (b AND c))",
			variables: []string{"a", "b", "c"},
			output:    "z",
		},
		{
			name:      "AND binds tighter than XOR",
			input:     "a ^ b . c = z",
			expected:  "(a XOR (b AND c))",
			variables: []string{"a", "b", "c"},
			output:    "z",
		},
		{
			name:      "XOR binds tighter than OR",
			input:     "a + b ⊕ c = z",
			expected:  "(a OR (b XOR c))",
			variables: []string{"a", "b", "c"},
			output:    "z",
		},
		{
			name:      "NOT binds tighter than AND",
			input:     "NOT a AND b = z",
			expected:  "((NOT a) AND b)",
			variables: []string{"a", "b"},
			output:    "z",
		},
		{
			name:      "repeated NOT",
			input:     "NOT ! ¬x = y",
			expected:  "(NOT (NOT (NOT x)))",
			variables: []string{"x"},
			output:    "y",
		},
		{
			name:      "binary operators are left-associative",
			input:     "a XOR b XOR c = z",
			expected:  "((a XOR b) XOR c)",
			variables: []string{"a", "b", "c"},
			output:    "z",
		},
		{
			name:      "parentheses override precedence",
			input:     "(a OR b) AND c = z",
			expected:  "((a OR b) AND c)",
			variables: []string{"a", "b", "c"},
			output:    "z",
		},
		{
			name:      "variables in first-seen order without duplicates",
			input:     "c AND (a OR c) AND b AND a = z",
			expected:  "(((c AND (a OR c)) AND b) AND a)",
			variables: []string{"c", "a", "b"},
			output:    "z",
		},
		{
			name:      "constants are not variables",
			input:     "true AND 0 OR x = z",
			expected:  "((true AND false) OR x)",
			variables: []string{"x"},
			output:    "z",
		},
		{
			name:      "arrow assignment",
			input:     "a ∨ b -> y",
			expected:  "(a OR b)",
			variables: []string{"a", "b"},
			output:    "y",
		},
		{
			name:      "output may repeat an input name",
			input:     "a = a",
			expected:  "a",
			variables: []string{"a"},
			output:    "a",
		},
	}

	p := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := p.ParseLine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, eq.Expr.String())
			assert.Equal(t, tt.variables, eq.Variables)
			assert.Equal(t, tt.output, eq.Output)
		})
	}
}

func TestParser_ConstantOnlyExpression(t *testing.T) {
	eq, err := New().ParseLine("1 XOR false = z")
	require.NoError(t, err)
	assert.Empty(t, eq.Variables)
	assert.Equal(t, expr.Xor{Left: expr.Const{Value: true}, Right: expr.Const{Value: false}}, eq.Expr)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{name: "empty input", input: "", pos: apperr.EndOfInput},
		{name: "no assignment", input: "a AND b", pos: apperr.EndOfInput},
		{name: "missing right operand", input: "a AND = out", pos: 6},
		{name: "missing left operand", input: "AND a = out", pos: 0},
		{name: "empty expression", input: "= out", pos: 0},
		{name: "two assignments", input: "a = b = c", pos: 6},
		{name: "missing output name", input: "a AND b =", pos: apperr.EndOfInput},
		{name: "output is an expression", input: "a = b AND c", pos: 6},
		{name: "output is a constant", input: "a = 1", pos: 4},
		{name: "output in parentheses", input: "a = (b)", pos: 4},
		{name: "unclosed parenthesis", input: "(a OR b = z", pos: 8},
		{name: "unopened parenthesis", input: "a OR b) = z", pos: 6},
		{name: "empty parentheses", input: "() = z", pos: 1},
		{name: "adjacent operands", input: "a b = z", pos: 2},
		{name: "dangling NOT", input: "a AND NOT = z", pos: 10},
		{name: "double binary operator", input: "a AND OR b = z", pos: 6},
	}

	p := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := p.ParseLine(tt.input)
			require.Error(t, err)
			assert.Nil(t, eq)
			assert.True(t, errors.Is(err, apperr.ErrInvalidExpression))

			var pe *apperr.ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
			assert.Equal(t, tt.pos, pe.Pos)
		})
	}
}

func TestParser_LexErrorPassesThrough(t *testing.T) {
	_, err := New().ParseLine("a & b = z")
	require.Error(t, err)

	var le *apperr.LexError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Pos)
}

func TestParser_NestingLimit(t *testing.T) {
	nested := func(open, operand, close string, depth int) string {
		return strings.Repeat(open, depth) + operand + strings.Repeat(close, depth) + " = z"
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
		pos     int
	}{
		{name: "parens at the limit", input: nested("(", "a", ")", MaxNesting)},
		{name: "parens past the limit", input: nested("(", "a", ")", MaxNesting+1), wantErr: true, pos: MaxNesting},
		{name: "very deep parens", input: nested("(", "a", ")", 8_000_000), wantErr: true},
		{name: "NOT chain at the limit", input: nested("!", "a", "", MaxNesting)},
		{name: "NOT chain past the limit", input: nested("NOT ", "a", "", MaxNesting+1), wantErr: true, pos: 4 * MaxNesting},
		{name: "mixed nesting past the limit", input: nested("!(", "a", ")", MaxNesting), wantErr: true, pos: MaxNesting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := New().ParseLine(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, []string{"a"}, eq.Variables)
				return
			}

			require.Error(t, err)
			assert.Nil(t, eq)
			assert.True(t, errors.Is(err, apperr.ErrInvalidExpression))
			if tt.pos > 0 {
				pos, ok := apperr.Position(err)
				require.True(t, ok)
				assert.Equal(t, tt.pos, pos)
			}
		})
	}
}

func TestParser_LineLengthLimit(t *testing.T) {
	long := "a" + strings.Repeat(" AND a", MaxLineLength/6) + " = z"
	require.Greater(t, len(long), MaxLineLength)

	_, err := New().ParseLine(long)
	var pe *apperr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, MaxLineLength, pe.Pos)

	_, err = New().ParseLine(strings.Repeat("a.", 1000) + "a = z")
	assert.NoError(t, err)
}
