package cmd

import (
	"fmt"

	"github.com/gnolang/proplogic/check"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initCmd: proplogic init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = check.DefaultConfigPath
		}
		if err := check.WriteConfig(path, check.DefaultConfig()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}
