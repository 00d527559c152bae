package internal

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/gnolang/proplogic/internal/formula"
	"github.com/gnolang/proplogic/internal/nolint"
	tt "github.com/gnolang/proplogic/internal/types"
)

// Engine manages the checking process.
type Engine struct {
	severities map[string]tt.Severity
	cache      *Cache
}

// NewEngine creates a new engine. Unknown rule names in rules are ignored.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(rules)

	return engine, nil
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.severities = make(map[string]tt.Severity)
	for _, name := range formula.Rules() {
		e.severities[name] = tt.SeverityError
	}

	for key, rule := range rules {
		if _, ok := e.severities[key]; !ok {
			// Unknown rule, continue to the next one
			continue
		}
		e.severities[key] = rule.Severity
	}
}

// SetCache makes Run reuse the issues of unchanged files.
func (e *Engine) SetCache(cache *Cache) {
	e.cache = cache
}

// Severity returns the severity reported for the given rule.
func (e *Engine) Severity(rule string) tt.Severity {
	return e.severities[rule]
}

// ruleTable renders the rules and their severities, in checking order, so
// that cached issues are only reused under the same table.
func (e *Engine) ruleTable() string {
	var b strings.Builder
	for i, name := range formula.Rules() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name + "=" + e.severities[name].String())
	}
	return b.String()
}

// Check validates a single formula. It returns nil when the formula is valid.
func (e *Engine) Check(text string) *tt.Issue {
	return e.check("", Line{Number: 1, Text: text, Raw: text})
}

// Run checks every formula of the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.cache != nil {
		if issues, found := e.cache.Get(filename, e.ruleTable()); found {
			return issues, nil
		}
	}

	source, err := ReadSourceCode(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	issues := e.runSource(filename, source)

	if e.cache != nil {
		if err := e.cache.Set(filename, e.ruleTable(), issues); err != nil {
			return issues, fmt.Errorf("error caching issues: %w", err)
		}
	}
	return issues, nil
}

// RunSource checks every formula of the given source and returns a slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("", NewSourceCode(string(source))), nil
}

func (e *Engine) runSource(filename string, source *SourceCode) []tt.Issue {
	var issues []tt.Issue
	nolints := nolint.ParseLines(source.Lines)
	for _, line := range source.Formulas() {
		issue := e.check(filename, line)
		if issue == nil || nolints.IsNolint(line.Number, issue.Rule) {
			continue
		}
		issues = append(issues, *issue)
	}
	return issues
}

// check validates line.Text. Positions in the returned issue refer to line.Raw.
func (e *Engine) check(filename string, line Line) *tt.Issue {
	res := formula.Validate(line.Text)
	if res.Valid {
		return nil
	}

	err := res.Err
	width := err.Width
	if width < 1 {
		width = 1
	}
	pos := err.Pos + line.Offset
	return &tt.Issue{
		Rule:     err.Rule,
		Filename: filename,
		Formula:  line.Raw,
		Message:  err.Msg,
		Severity: e.Severity(err.Rule),
		Start: token.Position{
			Filename: filename,
			Offset:   pos,
			Line:     line.Number,
			Column:   pos + 1,
		},
		End: token.Position{
			Filename: filename,
			Offset:   pos + width - 1,
			Line:     line.Number,
			Column:   pos + width,
		},
	}
}
