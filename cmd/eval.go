package cmd

import (
	"fmt"
	"strings"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/internal/formula"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalCmd = &cobra.Command{
	Use:   "eval <formula> <LETTER=VALUE>...",
	Short: "Evaluate a formula under a truth assignment",
	Long: `Evaluates a formula once every variable has a truth value.
Values may be written 1/0, true/false, T/F or V/F.
Example) proplogic eval "A ^ (B v C)" A=1 B=0 C=V`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignment, err := formula.ParseAssignment(strings.Join(args[1:], ","))
		if err != nil {
			return err
		}

		value, err := check.Evaluate(args[0], assignment)
		if err != nil {
			return err
		}
		logger.Debug("Formula evaluated",
			zap.String("formula", args[0]),
			zap.String("assignment", assignment.String()),
			zap.Bool("value", value))

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"formula":    args[0],
				"assignment": assignment.String(),
				"value":      value,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTruthValue(value))
		return nil
	},
}
