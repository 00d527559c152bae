// Package internal provides the checking engine behind the proplogic tool.
//
// Key components:
//
// Engine: validates formulas and turns the first failing rule of each
// invalid formula into an Issue. Rule severities come from the configuration
// file; every rule is always enforced, severity only labels the Issue.
//
// SourceCode: the content of a formula file as a collection of lines. A
// formula file holds one formula per line; blank lines and lines starting with
// '#' are skipped.
//
// Nolint directives: a comment line "# nolint" or "# nolint:rule1,rule2"
// silences the formula directly below it, or the whole file when it sits in
// the header comments before the first formula.
//
// Cache: stores the issues of each checked file on disk and reuses them while
// the file and the configuration are unchanged.
//
// Watcher: re-checks formula files when they change on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(nil)
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("path/to/formulas.prop")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("%s:%d: %s\n", issue.Filename, issue.Start.Line, issue.Message)
//	}
package internal
