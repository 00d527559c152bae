package formula

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccepts(t *testing.T) {
	t.Parallel()
	formulas := []string{
		"A",
		"Z",
		"  A  ",
		"~A",
		"~~A",
		"(~A)",
		"((A))",
		"A ^ B",
		"A v B",
		"A -> B",
		"A <-> B",
		"A ^ A",
		"A ^ ~B",
		"A ^ (B v C)",
		"(A ^ B) v C",
		"~(A -> B) <-> (~A v B)",
		"A -> B -> C",
		"~(~(A))",
		"A - > B",
		"A < - > B",
		"A <- > B",
		"A< ->B",
	}

	for _, f := range formulas {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			res := Validate(f)
			assert.True(t, res.Valid, "unexpected failure: %v", res.Err)
			assert.Nil(t, res.Err)
			assert.NotEmpty(t, res.Tokens)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		wantRule string
		wantErr  error
	}{
		{"", RuleCharacterSet, ErrCharacterSet},
		{"   ", RuleCharacterSet, ErrCharacterSet},
		{"A#B", RuleCharacterSet, ErrCharacterSet},
		{"a", RuleCharacterSet, ErrCharacterSet},
		{"A\tB", RuleCharacterSet, ErrCharacterSet},
		{"A-B", RuleOperatorJoining, ErrMalformedConditional},
		{"A<B", RuleOperatorJoining, ErrMalformedConditional},
		{"AB", RuleConsecutiveVariables, ErrStructural},
		{"A ^ BC", RuleConsecutiveVariables, ErrStructural},
		{"(A", RuleParenthesisBalance, ErrStructural},
		{"A)", RuleParenthesisBalance, ErrStructural},
		{")A(", RuleParenthesisBalance, ErrStructural},
		{"()", RuleEmptyGroup, ErrStructural},
		{"A ^ ()", RuleEmptyGroup, ErrStructural},
		{"A(B)", RuleParenthesisContext, ErrStructural},
		{"(A)B", RuleParenthesisContext, ErrStructural},
		{"(A)(B)", RuleParenthesisContext, ErrStructural},
		{"(A)~B", RuleParenthesisContext, ErrStructural},
		{"~", RuleNotOperand, ErrStructural},
		{"A~", RuleNotOperand, ErrStructural},
		{"~^A", RuleNotOperand, ErrStructural},
		{"A~B", RuleNotOperand, ErrStructural},
		{"A^", RuleBinaryOperand, ErrStructural},
		{"^A", RuleBinaryOperand, ErrStructural},
		{"A ^ ^ B", RuleBinaryOperand, ErrStructural},
		{"A v v B", RuleBinaryOperand, ErrStructural},
		{"(A ->)", RuleBinaryOperand, ErrStructural},
		{"(<-> A)", RuleBinaryOperand, ErrStructural},
		{"v", RuleBinaryOperand, ErrStructural},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			res := Validate(tt.input)
			assert.False(t, res.Valid)
			require.NotNil(t, res.Err)
			assert.Equal(t, tt.wantRule, res.Err.Rule)
			assert.ErrorIs(t, res.Err, tt.wantErr)
			assert.False(t, IsValid(tt.input))
		})
	}
}

func TestValidateReportsPosition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input     string
		wantPos   int
		wantWidth int
	}{
		{"A # B", 2, 1},
		{"A ^ B C", 6, 1},
		{"(A ^ B", 0, 1},
		{"A ^ B)", 5, 1},
		{"A <-> ", 2, 3},
		{"A é", 2, 2},
	}

	for _, tt := range tests {
		res := Validate(tt.input)
		require.NotNil(t, res.Err, tt.input)
		assert.Equal(t, tt.wantPos, res.Err.Pos, tt.input)
		assert.Equal(t, tt.wantWidth, res.Err.Width, tt.input)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"A ^ (B v C)", "AB", "A -> ~B", "()"}

	var wg sync.WaitGroup
	for _, in := range inputs {
		want := Validate(in)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(in string, want ValidationResult) {
				defer wg.Done()
				got := Validate(in)
				assert.Equal(t, want, got)
			}(in, want)
		}
	}
	wg.Wait()
}

func TestRulesOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{
		RuleCharacterSet,
		RuleOperatorJoining,
		RuleConsecutiveVariables,
		RuleParenthesisBalance,
		RuleEmptyGroup,
		RuleParenthesisContext,
		RuleNotOperand,
		RuleBinaryOperand,
	}, Rules())
}
