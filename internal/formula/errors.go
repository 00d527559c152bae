package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrCharacterSet reports an empty formula or a character outside the
	// permitted set.
	ErrCharacterSet = errors.New("invalid character set")
	// ErrMalformedConditional reports an arrow that is neither -> nor <->.
	ErrMalformedConditional = errors.New("malformed conditional")
	// ErrStructural reports misplaced parentheses, adjacent variables or an
	// operator missing one of its operands.
	ErrStructural = errors.New("structural error")
	// ErrTooManyVariables is returned when a truth table would be too large.
	ErrTooManyVariables = errors.New("too many variables")
)

// RuleError carries the first rule a formula failed.
type RuleError struct {
	Rule  string
	Pos   int // byte offset in the raw formula
	Width int
	Msg   string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s (offset %d)", e.Rule, e.Msg, e.Pos)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func structural(rule string, t Token, format string, args ...any) *RuleError {
	return &RuleError{
		Rule:  rule,
		Pos:   t.Pos,
		Width: t.Width(),
		Msg:   fmt.Sprintf(format, args...),
		Err:   ErrStructural,
	}
}
