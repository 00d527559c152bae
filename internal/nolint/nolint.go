package nolint

import (
	"fmt"
	"strings"
)

const nolintPrefix = "nolint"

// Manager manages nolint scopes and checks if a line is nolinted.
type Manager struct {
	scopes []nolintScope
}

// nolintScope represents a range of lines where nolint applies.
type nolintScope struct {
	rules map[string]struct{}
	start int
	end   int
}

// ParseLines parses the nolint directives of a formula file and returns a Manager.
// Lines are numbered from 1.
//
// A directive is a comment line of the form "# nolint" or "# nolint:rule1,rule2".
// Placed directly above a formula it applies to that formula. Placed anywhere
// else before the first formula it applies to the entire file.
func ParseLines(lines []string) *Manager {
	manager := Manager{}
	firstFormula := len(lines) + 1
	for i, l := range lines {
		if isFormula(l) {
			firstFormula = i + 1
			break
		}
	}

	for i, l := range lines {
		ns, err := parseDirective(l)
		if err != nil {
			// ignore invalid nolint comments
			continue
		}
		line := i + 1

		switch {
		case line < len(lines) && isFormula(lines[line]):
			// the directive line itself plus the formula below it
			ns.start, ns.end = line, line+1
		case line < firstFormula:
			ns.start, ns.end = 1, len(lines)
		default:
			ns.start, ns.end = line, line
		}
		manager.scopes = append(manager.scopes, ns)
	}
	return &manager
}

// parseDirective parses a single comment line.
func parseDirective(line string) (nolintScope, error) {
	var ns nolintScope

	text := strings.TrimSpace(line)
	if !strings.HasPrefix(text, "#") {
		return ns, fmt.Errorf("not a comment")
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "#"))
	if !strings.HasPrefix(text, nolintPrefix) {
		return ns, fmt.Errorf("invalid nolint comment")
	}

	rest := text[len(nolintPrefix):]

	// A nolint comment can either have a list of rules after a colon (:)
	// or if no rules are specified, it applies to all rules
	if len(rest) > 0 && rest[0] != ':' {
		return ns, fmt.Errorf("invalid nolint comment format")
	}
	if len(rest) > 0 {
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return ns, fmt.Errorf("invalid nolint comment: no rules specified after colon")
		}
	}
	ns.rules = parseIgnoreRuleNames(rest)
	return ns, nil
}

// parseIgnoreRuleNames parses the rule list from the nolint comment.
func parseIgnoreRuleNames(text string) map[string]struct{} {
	rulesMap := make(map[string]struct{})
	if text == "" {
		return rulesMap
	}
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rulesMap[rule] = struct{}{}
		}
	}
	return rulesMap
}

func isFormula(line string) bool {
	text := strings.TrimSpace(line)
	return text != "" && !strings.HasPrefix(text, "#")
}

// IsNolint checks if a given line and rule are nolinted.
func (m *Manager) IsNolint(line int, ruleName string) bool {
	for _, ns := range m.scopes {
		if line < ns.start || line > ns.end {
			continue
		}
		// If the rules list is empty, nolint applies to all rules
		if len(ns.rules) == 0 {
			return true
		}
		if _, exists := ns.rules[ruleName]; exists {
			return true
		}
	}
	return false
}
