package batch

type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Equations   []Equation `yaml:"equations"`
}

// Equation is one line to evaluate. Expect, when present, is the output column
// the table must produce, in row order.
type Equation struct {
	ID     string `yaml:"id"`
	Line   string `yaml:"line"`
	Expect []bool `yaml:"expect,omitempty"`
}
