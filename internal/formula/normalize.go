package formula

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Strip removes the spaces of a formula.
func Strip(formula string) string {
	return strings.ReplaceAll(formula, " ", "")
}

// Normalize turns a raw formula into its token sequence. The two and three
// character arrows are merged into single Conditional and Biconditional tokens.
// Spaces are insignificant, also inside an arrow; token positions refer to
// the raw string.
func Normalize(formula string) ([]Token, error) {
	tokens, err := normalize(formula)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func normalize(formula string) ([]Token, *RuleError) {
	tokens := make([]Token, 0, len(formula))
	for i := 0; i < len(formula); i++ {
		c := formula[i]
		switch {
		case c == ' ':
			continue
		case c >= 'A' && c <= 'Z':
			tokens = append(tokens, Token{Kind: Variable, Letter: rune(c), Pos: i})
		case c == '~':
			tokens = append(tokens, Token{Kind: Not, Pos: i})
		case c == '^':
			tokens = append(tokens, Token{Kind: And, Pos: i})
		case c == 'v':
			tokens = append(tokens, Token{Kind: Or, Pos: i})
		case c == '(':
			tokens = append(tokens, Token{Kind: Open, Pos: i})
		case c == ')':
			tokens = append(tokens, Token{Kind: Close, Pos: i})
		case c == '-':
			next := nextNonSpace(formula, i+1)
			if next >= len(formula) || formula[next] != '>' {
				return nil, malformed(i, 1, "'-' must be followed by '>'")
			}
			tokens = append(tokens, Token{Kind: Conditional, Pos: i})
			i = next
		case c == '<':
			dash := nextNonSpace(formula, i+1)
			if dash >= len(formula) || formula[dash] != '-' {
				return nil, malformed(i, 1, "'<' must start '<->'")
			}
			next := nextNonSpace(formula, dash+1)
			if next >= len(formula) || formula[next] != '>' {
				return nil, malformed(dash, 1, "'-' must be followed by '>'")
			}
			tokens = append(tokens, Token{Kind: Biconditional, Pos: i})
			i = next
		case c == '>':
			return nil, malformed(i, 1, "'>' must end '->' or '<->'")
		default:
			r, size := utf8.DecodeRuneInString(formula[i:])
			return nil, &RuleError{
				Rule:  RuleCharacterSet,
				Pos:   i,
				Width: size,
				Msg:   fmt.Sprintf("unexpected character %q", r),
				Err:   ErrCharacterSet,
			}
		}
	}
	return tokens, nil
}

// nextNonSpace returns the index of the first non-space byte at or after i,
// or len(formula).
func nextNonSpace(formula string, i int) int {
	for i < len(formula) && formula[i] == ' ' {
		i++
	}
	return i
}

func malformed(pos, width int, msg string) *RuleError {
	return &RuleError{
		Rule:  RuleOperatorJoining,
		Pos:   pos,
		Width: width,
		Msg:   msg,
		Err:   ErrMalformedConditional,
	}
}
