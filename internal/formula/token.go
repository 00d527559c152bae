package formula

import "fmt"

// Kind identifies the type of a token.
type Kind int

const (
	Variable      Kind = iota // A..Z
	Not                       // ~
	And                       // ^
	Or                        // v
	Conditional               // ->
	Biconditional             // <->
	Open                      // (
	Close                     // )
	TruthValue                // substituted value, evaluation only
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case Not:
		return "Not"
	case And:
		return "And"
	case Or:
		return "Or"
	case Conditional:
		return "Conditional"
	case Biconditional:
		return "Biconditional"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case TruthValue:
		return "TruthValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single atomic unit of a formula.
type Token struct {
	Kind   Kind
	Letter rune // set for Variable
	Value  bool // set for TruthValue
	Pos    int  // byte offset of the token in the raw formula
}

// String returns the spelling of the token as it appears in a formula.
func (t Token) String() string {
	switch t.Kind {
	case Variable:
		return string(t.Letter)
	case Not:
		return "~"
	case And:
		return "^"
	case Or:
		return "v"
	case Conditional:
		return "->"
	case Biconditional:
		return "<->"
	case Open:
		return "("
	case Close:
		return ")"
	case TruthValue:
		if t.Value {
			return "1"
		}
		return "0"
	default:
		return "?"
	}
}

// Width is the number of characters the token occupies in the formula.
func (t Token) Width() int {
	return len(t.String())
}

func (t Token) isBinary() bool {
	switch t.Kind {
	case And, Or, Conditional, Biconditional:
		return true
	}
	return false
}

// isOperandEnd reports whether an operand can end with t.
func (t Token) isOperandEnd() bool {
	return t.Kind == Variable || t.Kind == Close || t.Kind == TruthValue
}

// isOperandStart reports whether an operand can begin with t.
func (t Token) isOperandStart() bool {
	return t.Kind == Variable || t.Kind == Open || t.Kind == Not || t.Kind == TruthValue
}

// Join renders a token sequence back into a compact formula.
func Join(tokens []Token) string {
	var buf []byte
	for _, t := range tokens {
		buf = append(buf, t.String()...)
	}
	return string(buf)
}
