package formula

// Variables returns the distinct variables of formula in order of first
// occurrence. Every character other than A..Z is ignored, so the formula
// should have passed Validate.
func Variables(formula string) []rune {
	var (
		vars []rune
		seen [26]bool
	)
	for _, r := range formula {
		if r < 'A' || r > 'Z' || seen[r-'A'] {
			continue
		}
		seen[r-'A'] = true
		vars = append(vars, r)
	}
	return vars
}
