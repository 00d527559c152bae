package formula

import "fmt"

// Evaluate computes the truth value of formula under assignment.
//
// The formula must be valid and assignment must bind every one of its
// variables; anything else is a programming error and panics. Use Validate
// and Assignment.Missing first when the input is not trusted.
func Evaluate(formula string, assignment Assignment) bool {
	tokens, err := Normalize(formula)
	if err != nil {
		panic(fmt.Errorf("cannot evaluate %q: %w", formula, err))
	}
	return EvaluateTokens(tokens, assignment)
}

// EvaluateTokens evaluates an already normalized token sequence.
// The tokens are not modified.
func EvaluateTokens(tokens []Token, assignment Assignment) bool {
	seq := substitute(tokens, assignment)

	for {
		open, end := innermostGroup(seq)
		if open < 0 {
			break
		}
		v := reduce(seq[open+1 : end])
		reduced := append(seq[:open:open], v)
		seq = append(reduced, seq[end+1:]...)
	}
	return reduce(seq).Value
}

func substitute(tokens []Token, assignment Assignment) []Token {
	seq := make([]Token, len(tokens))
	for i, t := range tokens {
		if t.Kind == Variable {
			v, ok := assignment[t.Letter]
			if !ok {
				panic(fmt.Errorf("assignment lacks binding for variable %c", t.Letter))
			}
			t = Token{Kind: TruthValue, Value: v, Pos: t.Pos}
		}
		seq[i] = t
	}
	return seq
}

// innermostGroup returns the indexes of the first ')' and of the '(' it
// closes, or -1 when no parenthesis is left.
func innermostGroup(seq []Token) (open, end int) {
	open = -1
	for i, t := range seq {
		switch t.Kind {
		case Open:
			open = i
		case Close:
			if open < 0 {
				panic(fmt.Errorf("unmatched ')' at offset %d", t.Pos))
			}
			return open, i
		}
	}
	if open >= 0 {
		panic(fmt.Errorf("unclosed '(' at offset %d", seq[open].Pos))
	}
	return -1, -1
}

// reduce collapses a flat sequence, without parentheses, into one truth
// value. Operator classes are exhausted one after the other in precedence
// order, each from left to right.
func reduce(flat []Token) Token {
	seq := make([]Token, len(flat))
	copy(seq, flat)

	// A negation is applied once its operand is a value, which for a chain
	// such as ~~A means from the innermost one outwards.
	for i := 0; i < len(seq); {
		if seq[i].Kind != Not {
			i++
			continue
		}
		if i+1 < len(seq) && seq[i+1].Kind == TruthValue {
			seq[i+1].Value = !seq[i+1].Value
			seq = append(seq[:i], seq[i+1:]...)
			i = 0
			continue
		}
		i++
	}

	for _, kind := range []Kind{And, Or, Conditional, Biconditional} {
		for i := 0; i < len(seq); i++ {
			if seq[i].Kind != kind {
				continue
			}
			if i == 0 || i+1 >= len(seq) || seq[i-1].Kind != TruthValue || seq[i+1].Kind != TruthValue {
				panic(fmt.Errorf("%q at offset %d lacks an operand", seq[i].String(), seq[i].Pos))
			}
			left, right := seq[i-1].Value, seq[i+1].Value
			seq[i+1].Value = apply(kind, left, right)
			seq = append(seq[:i-1], seq[i+1:]...)
			i -= 2
		}
	}

	if len(seq) != 1 || seq[0].Kind != TruthValue {
		panic(fmt.Errorf("%q does not reduce to a single truth value", Join(flat)))
	}
	return seq[0]
}

func apply(kind Kind, left, right bool) bool {
	switch kind {
	case And:
		return left && right
	case Or:
		return left || right
	case Conditional:
		return !left || right
	case Biconditional:
		return left == right
	default:
		panic(fmt.Errorf("%s is not a binary connective", kind))
	}
}
