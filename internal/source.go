package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a formula file.
type SourceCode struct {
	Lines []string
}

// Line is a formula together with its 1-based line number.
type Line struct {
	Number int
	Text   string // the formula, surrounding spaces and tabs removed
	Raw    string // the line as read
	Offset int    // byte offset of Text in Raw
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(string(content)), nil
}

// NewSourceCode splits text into lines.
func NewSourceCode(text string) *SourceCode {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &SourceCode{Lines: lines}
}

// Formulas returns the lines holding a formula, skipping blank lines and
// comments. Formula lines may be indented with spaces or tabs.
func (s *SourceCode) Formulas() []Line {
	var out []Line
	for i, l := range s.Lines {
		text := strings.TrimLeft(l, " \t")
		offset := len(l) - len(text)
		text = strings.TrimRight(text, " \t")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: text, Raw: l, Offset: offset})
	}
	return out
}
