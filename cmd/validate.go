package cmd

import (
	"fmt"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type validationOutput struct {
	Formula string    `json:"formula"`
	Valid   bool      `json:"valid"`
	Issue   *tt.Issue `json:"issue,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <formula>...",
	Short: "Check that formulas are well formed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := check.New(cfgFile)
		if err != nil {
			logger.Error("Failed to initialize engine", zap.Error(err))
			return err
		}

		results := make([]validationOutput, len(args))
		invalid := 0
		for i, f := range args {
			results[i] = validationOutput{Formula: f, Valid: true}
			if issue := engine.Check(f); issue != nil {
				results[i].Valid = false
				results[i].Issue = issue
				invalid++
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := writeJSON(out, results); err != nil {
				return err
			}
		} else {
			for _, r := range results {
				if r.Valid {
					fmt.Fprintf(out, "%s: valid\n", r.Formula)
					continue
				}
				fmt.Fprint(out, formatter.GenerateFormattedIssue([]tt.Issue{*r.Issue}, nil))
			}
		}

		if invalid > 0 {
			return ErrIssuesFound
		}
		return nil
	},
}
