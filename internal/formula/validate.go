package formula

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule names, in the order they are checked.
const (
	RuleCharacterSet         = "character-set"
	RuleOperatorJoining      = "operator-joining"
	RuleConsecutiveVariables = "consecutive-variables"
	RuleParenthesisBalance   = "parenthesis-balance"
	RuleEmptyGroup           = "empty-group"
	RuleParenthesisContext   = "parenthesis-context"
	RuleNotOperand           = "not-operand"
	RuleBinaryOperand        = "binary-operand"
)

var validCharacters = regexp.MustCompile(`^[A-Z v~^\-<>()]+$`)

// ValidationResult is the outcome of Validate. Err holds the first failing
// rule and is nil when Valid is true.
type ValidationResult struct {
	Formula string
	Tokens  []Token
	Valid   bool
	Err     *RuleError
}

// Rule is a structural check run on a normalized token sequence.
type Rule interface {
	Name() string
	Check(tokens []Token) *RuleError
}

var structuralRules = []Rule{
	consecutiveVariables{},
	parenthesisBalance{},
	emptyGroup{},
	parenthesisContext{},
	notOperand{},
	binaryOperand{},
}

// Rules returns the names of every validation rule in evaluation order.
func Rules() []string {
	names := []string{RuleCharacterSet, RuleOperatorJoining}
	for _, r := range structuralRules {
		names = append(names, r.Name())
	}
	return names
}

// Validate reports whether formula is a well-formed propositional formula.
// The rules run in order and the first failure stops the check.
func Validate(formula string) ValidationResult {
	result := ValidationResult{Formula: formula}

	if err := checkCharacterSet(formula); err != nil {
		result.Err = err
		return result
	}

	tokens, err := normalize(formula)
	if err != nil {
		result.Err = err
		return result
	}
	result.Tokens = tokens

	for _, r := range structuralRules {
		if err := r.Check(tokens); err != nil {
			result.Err = err
			return result
		}
	}

	result.Valid = true
	return result
}

// IsValid is a shorthand for Validate(formula).Valid.
func IsValid(formula string) bool {
	return Validate(formula).Valid
}

func checkCharacterSet(formula string) *RuleError {
	if Strip(formula) == "" {
		return &RuleError{Rule: RuleCharacterSet, Msg: "empty formula", Err: ErrCharacterSet}
	}
	if validCharacters.MatchString(formula) {
		return nil
	}
	for pos, r := range formula {
		if (r < 'A' || r > 'Z') && !strings.ContainsRune(" v~^-<>()", r) {
			return &RuleError{
				Rule:  RuleCharacterSet,
				Pos:   pos,
				Width: utf8.RuneLen(r),
				Msg:   fmt.Sprintf("unexpected character %q", r),
				Err:   ErrCharacterSet,
			}
		}
	}
	return &RuleError{Rule: RuleCharacterSet, Msg: "unexpected character", Err: ErrCharacterSet}
}

type consecutiveVariables struct{}

func (consecutiveVariables) Name() string { return RuleConsecutiveVariables }

func (consecutiveVariables) Check(tokens []Token) *RuleError {
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1].Kind == Variable && tokens[i].Kind == Variable {
			return structural(RuleConsecutiveVariables, tokens[i],
				"variables %c and %c are adjacent", tokens[i-1].Letter, tokens[i].Letter)
		}
	}
	return nil
}

type parenthesisBalance struct{}

func (parenthesisBalance) Name() string { return RuleParenthesisBalance }

func (parenthesisBalance) Check(tokens []Token) *RuleError {
	var open []Token
	for _, t := range tokens {
		switch t.Kind {
		case Open:
			open = append(open, t)
		case Close:
			if len(open) == 0 {
				return structural(RuleParenthesisBalance, t, "unmatched ')'")
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return structural(RuleParenthesisBalance, open[0], "unclosed '('")
	}
	return nil
}

type emptyGroup struct{}

func (emptyGroup) Name() string { return RuleEmptyGroup }

func (emptyGroup) Check(tokens []Token) *RuleError {
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1].Kind == Open && tokens[i].Kind == Close {
			return structural(RuleEmptyGroup, tokens[i-1], "empty parentheses")
		}
	}
	return nil
}

type parenthesisContext struct{}

func (parenthesisContext) Name() string { return RuleParenthesisContext }

func (parenthesisContext) Check(tokens []Token) *RuleError {
	last := len(tokens) - 1
	for i, t := range tokens {
		switch {
		case t.Kind == Open && i > 0:
			prev := tokens[i-1]
			if !prev.isBinary() && prev.Kind != Open && prev.Kind != Not {
				return structural(RuleParenthesisContext, t, "'(' cannot follow %q", prev.String())
			}
		case t.Kind == Close && i < last:
			next := tokens[i+1]
			if !next.isBinary() && next.Kind != Close {
				return structural(RuleParenthesisContext, t, "')' cannot be followed by %q", next.String())
			}
		}
	}
	return nil
}

// notOperand requires every negation to be a prefix of an operand.
// Resolving a negation never changes the neighbours of the next one, so a
// single pass is enough.
type notOperand struct{}

func (notOperand) Name() string { return RuleNotOperand }

func (notOperand) Check(tokens []Token) *RuleError {
	for i, t := range tokens {
		if t.Kind != Not {
			continue
		}
		if i+1 >= len(tokens) {
			return structural(RuleNotOperand, t, "'~' has no operand")
		}
		if next := tokens[i+1]; next.Kind != Variable && next.Kind != Open && next.Kind != Not {
			return structural(RuleNotOperand, t, "'~' cannot be followed by %q", next.String())
		}
		if i > 0 && tokens[i-1].isOperandEnd() {
			return structural(RuleNotOperand, t, "'~' cannot follow the operand %q", tokens[i-1].String())
		}
	}
	return nil
}

// binaryOperand requires both operands of every binary connective.
// Each class is resolved independently; as with negations a single pass per
// class gives the same answer as removing resolved operators one at a time.
type binaryOperand struct{}

func (binaryOperand) Name() string { return RuleBinaryOperand }

func (binaryOperand) Check(tokens []Token) *RuleError {
	for _, kind := range []Kind{And, Or, Conditional, Biconditional} {
		for i, t := range tokens {
			if t.Kind != kind {
				continue
			}
			if i == 0 || !tokens[i-1].isOperandEnd() {
				return structural(RuleBinaryOperand, t, "%q is missing its left operand", t.String())
			}
			if i+1 >= len(tokens) || !tokens[i+1].isOperandStart() {
				return structural(RuleBinaryOperand, t, "%q is missing its right operand", t.String())
			}
		}
	}
	return nil
}
