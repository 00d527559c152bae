package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	const T, F = true, false
	tests := []struct {
		name    string
		formula string
		assign  Assignment
		want    bool
	}{
		{"negation of true", "~A", Assignment{'A': T}, F},
		{"negation of false", "~A", Assignment{'A': F}, T},
		{"double negation", "~~A", Assignment{'A': T}, T},
		{"triple negation", "~~~A", Assignment{'A': T}, F},
		{"and", "A ^ B", Assignment{'A': T, 'B': F}, F},
		{"or", "A v B", Assignment{'A': T, 'B': F}, T},
		{"conditional false", "A -> B", Assignment{'A': T, 'B': F}, F},
		{"conditional vacuous", "A -> B", Assignment{'A': F, 'B': T}, T},
		{"biconditional equal", "A <-> B", Assignment{'A': T, 'B': T}, T},
		{"biconditional different", "A <-> B", Assignment{'A': T, 'B': F}, F},
		{"and binds tighter than or", "A ^ B v C", Assignment{'A': F, 'B': T, 'C': F}, F},
		{"and binds tighter than or on the right", "A v B ^ C", Assignment{'A': T, 'B': F, 'C': F}, T},
		{"parentheses override precedence", "A ^ (B v C)", Assignment{'A': T, 'B': F, 'C': T}, T},
		{"conditional binds tighter than biconditional", "A <-> B -> C", Assignment{'A': F, 'B': T, 'C': T}, F},
		{"conditionals associate to the left", "A -> B -> C", Assignment{'A': F, 'B': F, 'C': F}, F},
		{"negation binds tightest", "~A ^ B", Assignment{'A': F, 'B': F}, F},
		{"negated group", "~(A ^ B)", Assignment{'A': T, 'B': T}, F},
		{"nested groups", "((A v B) ^ ~(C -> A))", Assignment{'A': F, 'B': T, 'C': T}, T},
		{"sibling groups", "(A ^ B) <-> (C v ~D)", Assignment{'A': T, 'B': F, 'C': F, 'D': T}, T},
		{"redundant parentheses", "((A))", Assignment{'A': F}, F},
		{"repeated variable", "A ^ A", Assignment{'A': T}, T},
		{"spaces are ignored", "  ~ A   v B ", Assignment{'A': T, 'B': F}, F},
		{"spaces inside a biconditional", "A < - > B", Assignment{'A': F, 'B': F}, T},
		{"spaces inside a conditional", "A - > B", Assignment{'A': T, 'B': F}, F},
		{"extra bindings are ignored", "A", Assignment{'A': T, 'Q': F}, T},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Evaluate(tt.formula, tt.assign))
		})
	}
}

func TestEvaluateSingleVariable(t *testing.T) {
	t.Parallel()
	for l := 'A'; l <= 'Z'; l++ {
		f := string(l)
		assert.True(t, IsValid(f), f)
		assert.Equal(t, []rune{l}, Variables(f))
		assert.True(t, Evaluate(f, Assignment{l: true}), f)
		assert.False(t, Evaluate(f, Assignment{l: false}), f)
	}
}

func TestEvaluateDoesNotModifyTokens(t *testing.T) {
	t.Parallel()
	res := Validate("~(A v B) ^ C")
	before := append([]Token(nil), res.Tokens...)

	EvaluateTokens(res.Tokens, Assignment{'A': false, 'B': false, 'C': true})
	assert.Equal(t, before, res.Tokens)
}

func TestEvaluatePanicsOnMissingBinding(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		Evaluate("A ^ B", Assignment{'A': true})
	})
}

func TestEvaluatePanicsOnInvalidFormula(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { Evaluate("A - B", Assignment{'A': true, 'B': true}) })
	assert.Panics(t, func() { Evaluate("(A", Assignment{'A': true}) })
	assert.Panics(t, func() { Evaluate("A^", Assignment{'A': true}) })
}
