package formula

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Assignment maps each variable letter to its truth value.
type Assignment map[rune]bool

// ParseAssignment reads assignments of the form "A=1,B=false,C=V".
// Pairs may be separated by commas or spaces. Besides the spellings accepted
// by strconv.ParseBool, V and F are accepted.
func ParseAssignment(s string) (Assignment, error) {
	a := make(Assignment)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	for _, field := range fields {
		name, raw, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q: expected LETTER=VALUE", field)
		}
		name = strings.TrimSpace(name)
		if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
			return nil, fmt.Errorf("invalid variable %q: must be a single letter A-Z", name)
		}
		value, err := parseTruthValue(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		a[rune(name[0])] = value
	}
	return a, nil
}

func parseTruthValue(s string) (bool, error) {
	switch s {
	case "V", "v":
		return true, nil
	case "F", "f":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// Missing returns the variables of vars that a does not bind.
func (a Assignment) Missing(vars []rune) []rune {
	var missing []rune
	for _, v := range vars {
		if _, ok := a[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}

// String renders the assignment sorted by letter, e.g. "A=1 B=0".
func (a Assignment) String() string {
	letters := make([]rune, 0, len(a))
	for l := range a {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	parts := make([]string, len(letters))
	for i, l := range letters {
		v := "0"
		if a[l] {
			v = "1"
		}
		parts[i] = string(l) + "=" + v
	}
	return strings.Join(parts, " ")
}
