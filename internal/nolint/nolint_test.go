package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNolintRules(t *testing.T) {
	t.Parallel()
	result := parseIgnoreRuleNames("rule1, rule2,,rule3")
	assert.Len(t, result, 3)
	for _, rule := range []string{"rule1", "rule2", "rule3"} {
		assert.Contains(t, result, rule)
	}
}

func TestParseDirective(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line    string
		wantErr bool
		rules   []string
	}{
		{line: "# nolint"},
		{line: "#nolint"},
		{line: "  # nolint:empty-group, binary-operand", rules: []string{"empty-group", "binary-operand"}},
		{line: "# nolint:", wantErr: true},
		{line: "# nolintx", wantErr: true},
		{line: "# a comment", wantErr: true},
		{line: "A v B", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()
			ns, err := parseDirective(tc.line)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ns.rules, len(tc.rules))
			for _, r := range tc.rules {
				assert.Contains(t, ns.rules, r)
			}
		})
	}
}

func TestIsNolint(t *testing.T) {
	t.Parallel()
	lines := []string{
		"# header",
		"# nolint:empty-group",
		"",
		"A ^ ()",
		"# nolint",
		"A B",
		"A <->",
		"# nolint:binary-operand",
		"",
		"A ->",
	}

	m := ParseLines(lines)

	// file level
	assert.True(t, m.IsNolint(4, "empty-group"))
	assert.True(t, m.IsNolint(10, "empty-group"))
	assert.False(t, m.IsNolint(4, "binary-operand"))

	// next formula, every rule
	assert.True(t, m.IsNolint(6, "consecutive-variables"))
	assert.True(t, m.IsNolint(6, "binary-operand"))
	assert.False(t, m.IsNolint(7, "binary-operand"))

	// not followed by a formula
	assert.False(t, m.IsNolint(10, "binary-operand"))
}

func TestDirectiveAboveFirstFormula(t *testing.T) {
	t.Parallel()
	m := ParseLines([]string{"# nolint", "A B", "B C"})

	assert.True(t, m.IsNolint(2, "consecutive-variables"))
	assert.False(t, m.IsNolint(3, "consecutive-variables"))
}
