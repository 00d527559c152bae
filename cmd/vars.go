package cmd

import (
	"fmt"
	"strings"

	"github.com/gnolang/proplogic/check"
	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars <formula>",
	Short: "List the variables of a formula in order of first occurrence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := check.ExtractVariables(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), letters(vars))
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(letters(vars), " "))
		return nil
	},
}
