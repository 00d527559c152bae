// Package check is the public entry point of proplogic: formula validation,
// variable extraction and evaluation, and batch checking of formula files.
package check

import (
	"errors"
	"fmt"

	"github.com/gnolang/proplogic/internal"
	"github.com/gnolang/proplogic/internal/formula"
)

var (
	// ErrInvalidFormula is returned when an operation needs a valid formula.
	ErrInvalidFormula = errors.New("invalid formula")
	// ErrMissingAssignment is returned when a variable has no truth value.
	ErrMissingAssignment = errors.New("missing assignment")
)

// ValidationResult reports whether a formula is well formed.
type ValidationResult struct {
	IsValid bool
	// Rule and Message describe the first failing rule when IsValid is false.
	Rule    string
	Message string
	Pos     int
}

// Validate checks formula against every rule.
func Validate(formulaText string) ValidationResult {
	res := formula.Validate(formulaText)
	if res.Valid {
		return ValidationResult{IsValid: true}
	}
	return ValidationResult{
		Rule:    res.Err.Rule,
		Message: res.Err.Msg,
		Pos:     res.Err.Pos,
	}
}

// ExtractVariables returns the distinct variables of a valid formula in
// order of first occurrence.
func ExtractVariables(formulaText string) ([]rune, error) {
	res := formula.Validate(formulaText)
	if !res.Valid {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, res.Err)
	}
	return formula.Variables(formulaText), nil
}

// Evaluate computes the truth value of formulaText under assignment. Unlike
// formula.Evaluate it never panics: the formula is validated first and the
// assignment must bind every variable.
func Evaluate(formulaText string, assignment formula.Assignment) (bool, error) {
	res := formula.Validate(formulaText)
	if !res.Valid {
		return false, fmt.Errorf("%w: %w", ErrInvalidFormula, res.Err)
	}
	if missing := assignment.Missing(formula.Variables(formulaText)); len(missing) > 0 {
		return false, fmt.Errorf("%w for %s", ErrMissingAssignment, string(missing))
	}
	return formula.EvaluateTokens(res.Tokens, assignment), nil
}

// TruthTable builds the truth table of a valid formula.
func TruthTable(formulaText string, maxVariables int) (*formula.Table, error) {
	table, err := formula.TruthTable(formulaText, maxVariables)
	if err != nil {
		if errors.Is(err, formula.ErrTooManyVariables) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	return table, nil
}

// New creates an engine configured from the file at configurationPath.
func New(configurationPath string) (*internal.Engine, Config, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, config, err
	}

	engine, err := internal.NewEngine(config.Rules)
	if err != nil {
		return nil, config, err
	}
	return engine, config, nil
}
