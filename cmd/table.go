package cmd

import (
	"fmt"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/spf13/cobra"
)

type tableRowOutput struct {
	Assignment string `json:"assignment"`
	Value      bool   `json:"value"`
}

var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := check.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		table, err := check.TruthTable(args[0], config.MaxVariables)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			rows := make([]tableRowOutput, len(table.Rows))
			for i, r := range table.Rows {
				rows[i] = tableRowOutput{Assignment: r.Assignment.String(), Value: r.Value}
			}
			return writeJSON(out, map[string]any{
				"formula":       args[0],
				"variables":     letters(table.Variables),
				"rows":          rows,
				"tautology":     table.IsTautology(),
				"contradiction": table.IsContradiction(),
			})
		}

		fmt.Fprint(out, formatter.FormatTruthTable(table))
		fmt.Fprintln(out, formatter.FormatSummary(table))
		return nil
	},
}
