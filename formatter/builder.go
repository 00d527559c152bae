package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
)

const (
	tabWidth = 8

	// StdinName is shown for formulas that do not come from a file.
	StdinName = "<input>"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiCyan, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	trueStyle    = color.New(color.FgGreen, color.Bold)
	falseStyle   = color.New(color.FgRed)
)

const issueTemplate = `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .Line .StartLine .MaxLineNumWidth .Padding -}}
{{underlineAndMessage .Message .Padding .Line .StartColumn .EndColumn}}
`

var issueTmpl = template.Must(template.New("issue").Funcs(template.FuncMap{
	"header":              header,
	"snippet":             codeSnippet,
	"underlineAndMessage": underlineAndMessage,
}).Parse(issueTemplate))

type IssueData struct {
	Severity        string
	Rule            string
	Filename        string
	Padding         string
	StartLine       int
	StartColumn     int
	EndColumn       int
	MaxLineNumWidth int
	Message         string
	Line            string
}

// GenerateFormattedIssue formats a slice of issues into a human-readable string.
// The offending line is taken from source when the issue has no formula text.
func GenerateFormattedIssue(issues []tt.Issue, source *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(buildIssue(issue, source))
	}
	return builder.String()
}

func buildIssue(issue tt.Issue, source *internal.SourceCode) string {
	line := issue.Formula
	if line == "" && source != nil && issue.Start.Line > 0 && issue.Start.Line <= len(source.Lines) {
		line = source.Lines[issue.Start.Line-1]
	}

	filename := issue.Filename
	if filename == "" {
		filename = StdinName
	}

	maxLineNumWidth := calculateMaxLineNumWidth(issue.Start.Line)
	data := IssueData{
		Severity:        issue.Severity.String(),
		Rule:            issue.Rule,
		Filename:        filename,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		StartLine:       issue.Start.Line,
		StartColumn:     issue.Start.Column,
		EndColumn:       issue.End.Column,
		MaxLineNumWidth: maxLineNumWidth,
		Message:         issue.Message,
		Line:            line,
	}

	var buf bytes.Buffer
	if err := issueTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(rule string, severity string, maxLineNumWidth int, filename string, startLine int, startColumn int) string {
	var endString string
	switch severity {
	case "WARNING":
		endString = warningStyle.Sprintf("warning: ")
	case "INFO":
		endString = infoStyle.Sprintf("info: ")
	default:
		endString = errorStyle.Sprintf("error: ")
	}

	endString += ruleStyle.Sprintf("%s\n", rule)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s:%d:%d", filename, startLine, startColumn)

	return endString
}

func codeSnippet(line string, lineNum int, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%*d | ", maxLineNumWidth, lineNum)
	endString += expandTabs(line) + "\n"
	return endString
}

func underlineAndMessage(message string, padding string, line string, startColumn int, endColumn int) string {
	endString := lineStyle.Sprintf("%s| ", padding)

	underlineStart := calculateVisualColumn(line, startColumn)
	underlineEnd := calculateVisualColumn(line, endColumn+1) - 1
	underlineLength := underlineEnd - underlineStart + 1
	if underlineLength < 1 {
		underlineLength = 1
	}

	endString += strings.Repeat(" ", underlineStart)
	endString += messageStyle.Sprintf("%s\n", strings.Repeat("^", underlineLength))

	endString += lineStyle.Sprintf("%s= ", padding)
	endString += messageStyle.Sprintf("%s\n", message)

	return endString
}

func calculateMaxLineNumWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}

// calculateVisualColumn calculates the visual column position
// in a string. taking into account tab characters.
func calculateVisualColumn(line string, column int) int {
	if column < 0 {
		return 0
	}
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}

func expandTabs(line string) string {
	var expanded strings.Builder
	visualColumn := 0
	for _, ch := range line {
		if ch == '\t' {
			spaces := tabWidth - (visualColumn % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaces))
			visualColumn += spaces
		} else {
			expanded.WriteRune(ch)
			visualColumn++
		}
	}
	return expanded.String()
}
