package truthtable

// Assignment binds every variable of an equation for one row.
type Assignment map[string]bool

type Row struct {
	Inputs []bool `json:"inputs" yaml:"inputs"`
	Output bool   `json:"output" yaml:"output"`
}

// TruthTable holds one row per assignment, in ascending binary order with the
// first variable as the most significant bit.
type TruthTable struct {
	Variables []string `json:"variables" yaml:"variables"`
	Output    string   `json:"output" yaml:"output"`
	Rows      []Row    `json:"rows" yaml:"rows"`
}

// Header returns the column names: the variables followed by the output name.
func (t *TruthTable) Header() []string {
	header := make([]string, 0, len(t.Variables)+1)
	header = append(header, t.Variables...)
	return append(header, t.Output)
}

// OutputColumn returns the output value of every row in row order.
func (t *TruthTable) OutputColumn() []bool {
	col := make([]bool, len(t.Rows))
	for i, r := range t.Rows {
		col[i] = r.Output
	}
	return col
}

// Lookup returns the output for the row whose inputs match the given assignment.
// Variables missing from the assignment are treated as false.
func (t *TruthTable) Lookup(a Assignment) (bool, bool) {
	index := 0
	for _, v := range t.Variables {
		index <<= 1
		if a[v] {
			index |= 1
		}
	}
	if index >= len(t.Rows) {
		return false, false
	}
	return t.Rows[index].Output, true
}
