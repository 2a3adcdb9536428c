package batch

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/booltable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: test
equations:
  - id: e1
    line: "a AND b = out"
    expect: [false, false, false, true]
  - id: e2
    line: "a OR b = out"
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "test", s.Name)
		require.Len(t, s.Equations, 2)
		assert.Equal(t, []bool{false, false, false, true}, s.Equations[0].Expect)
		assert.Nil(t, s.Equations[1].Expect)
	})

	t.Run("no equations", func(t *testing.T) {
		_, err := Parse([]byte("name: empty\n"))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Parse([]byte("equations:\n  - line: \"a = b\"\n"))
		assert.Error(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		yaml := `
equations:
  - id: e1
    line: "a = b"
  - id: e1
    line: "c = d"
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
	})

	t.Run("blank line", func(t *testing.T) {
		_, err := Parse([]byte("equations:\n  - id: e1\n    line: \"  \"\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("equations: [\n"))
		assert.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile("testdata/laws.yaml")
	require.NoError(t, err)
	assert.Equal(t, "laws", s.Name)
	assert.NotEmpty(t, s.Equations)

	_, err = LoadFromFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRun_LawsSuitePasses(t *testing.T) {
	s, err := LoadFromFile("testdata/laws.yaml")
	require.NoError(t, err)

	results, summary := Run(booltable.NewEngine(booltable.DefaultConfig()), s)
	require.Len(t, results, len(s.Equations))
	assert.True(t, summary.OK(), "summary: %+v", summary)
	for _, r := range results {
		assert.True(t, r.Match, r.Equation.ID)
		assert.NoError(t, r.Err, r.Equation.ID)
	}
}

func TestRun_FailuresAndMismatches(t *testing.T) {
	s := &Suite{
		Name: "mixed",
		Equations: []Equation{
			{ID: "ok", Line: "a OR b = z", Expect: []bool{false, true, true, true}},
			{ID: "bad", Line: "a AND = out"},
			{ID: "wrong", Line: "a AND b = z", Expect: []bool{true, true, true, true}},
			{ID: "unchecked", Line: "a = z"},
		},
	}

	results, summary := Run(booltable.NewEngine(booltable.DefaultConfig()), s)
	require.Len(t, results, 4)

	assert.Equal(t, Summary{Total: 4, Failed: 1, Mismatch: 1}, summary)
	assert.False(t, summary.OK())

	assert.True(t, results[0].Match)
	assert.False(t, results[1].Match)
	assert.True(t, errors.Is(results[1].Err, apperr.ErrInvalidExpression))
	assert.Nil(t, results[1].Table)
	assert.False(t, results[2].Match)
	assert.NotNil(t, results[2].Table)
	assert.True(t, results[3].Match)
}
