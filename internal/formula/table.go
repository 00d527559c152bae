package formula

import "fmt"

// DefaultMaxVariables bounds the size of a truth table to 2^16 rows.
const DefaultMaxVariables = 16

// Row is one line of a truth table.
type Row struct {
	Assignment Assignment
	Value      bool
}

// Table is the truth table of a formula.
type Table struct {
	Formula   string
	Variables []rune
	Rows      []Row
}

// TruthTable evaluates formula under every assignment of its variables.
// Rows start with every variable true and count down, the first variable
// varying slowest. A maxVariables of zero or less means DefaultMaxVariables.
func TruthTable(formula string, maxVariables int) (*Table, error) {
	if maxVariables <= 0 {
		maxVariables = DefaultMaxVariables
	}
	res := Validate(formula)
	if !res.Valid {
		return nil, res.Err
	}

	vars := Variables(formula)
	if len(vars) > maxVariables {
		return nil, fmt.Errorf("%w: %d variables, at most %d allowed", ErrTooManyVariables, len(vars), maxVariables)
	}

	n := len(vars)
	table := &Table{
		Formula:   formula,
		Variables: vars,
		Rows:      make([]Row, 0, 1<<n),
	}
	for r := 0; r < 1<<n; r++ {
		a := make(Assignment, n)
		for j, v := range vars {
			a[v] = r>>(n-1-j)&1 == 0
		}
		table.Rows = append(table.Rows, Row{Assignment: a, Value: EvaluateTokens(res.Tokens, a)})
	}
	return table, nil
}

// IsTautology reports whether every row of the table is true.
func (t *Table) IsTautology() bool {
	for _, r := range t.Rows {
		if !r.Value {
			return false
		}
	}
	return true
}

// IsContradiction reports whether every row of the table is false.
func (t *Table) IsContradiction() bool {
	for _, r := range t.Rows {
		if r.Value {
			return false
		}
	}
	return true
}

// Models returns the rows under which the formula is true.
func (t *Table) Models() []Row {
	var models []Row
	for _, r := range t.Rows {
		if r.Value {
			models = append(models, r)
		}
	}
	return models
}
