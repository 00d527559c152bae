package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/proplogic/internal/formula"
)

// FormatTruthTable renders a truth table with one column per variable and a
// final column for the formula.
func FormatTruthTable(table *formula.Table) string {
	title := strings.TrimSpace(table.Formula)

	var b strings.Builder
	for _, v := range table.Variables {
		b.WriteString(ruleStyle.Sprintf(" %c ", v))
		b.WriteString(lineStyle.Sprint("|"))
	}
	b.WriteString(ruleStyle.Sprintf(" %s\n", title))

	for range table.Variables {
		b.WriteString(lineStyle.Sprint("---+"))
	}
	b.WriteString(lineStyle.Sprintf("%s\n", strings.Repeat("-", len(title)+2)))

	for _, row := range table.Rows {
		for _, v := range table.Variables {
			b.WriteString(" " + truthValue(row.Assignment[v]) + " ")
			b.WriteString(lineStyle.Sprint("|"))
		}
		b.WriteString(" " + truthValue(row.Value) + "\n")
	}
	return b.String()
}

// FormatSummary classifies a truth table in one line.
func FormatSummary(table *formula.Table) string {
	switch {
	case table.IsTautology():
		return trueStyle.Sprint("tautology")
	case table.IsContradiction():
		return falseStyle.Sprint("contradiction")
	default:
		return fmt.Sprintf("contingent (%d of %d rows true)", len(table.Models()), len(table.Rows))
	}
}

// FormatTruthValue renders an evaluation result.
func FormatTruthValue(v bool) string {
	if v {
		return trueStyle.Sprint("true")
	}
	return falseStyle.Sprint("false")
}

func truthValue(v bool) string {
	if v {
		return trueStyle.Sprint("T")
	}
	return falseStyle.Sprint("F")
}
