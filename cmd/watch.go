package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-check formula files whenever they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, config, err := check.New(cfgFile)
		if err != nil {
			logger.Error("Failed to initialize engine", zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		report := func(filename string, issues []tt.Issue) {
			if len(issues) == 0 {
				fmt.Fprintf(out, "%s: ok\n", filename)
				return
			}
			if jsonOutput {
				if err := writeJSON(out, map[string][]tt.Issue{filename: issues}); err != nil {
					logger.Error("Error writing issues", zap.Error(err))
				}
				return
			}
			source, _ := internal.ReadSourceCode(filename)
			fmt.Fprintln(out, formatter.GenerateFormattedIssue(issues, source))
		}

		w, err := internal.NewWatcher(engine, logger, config.Extensions, report)
		if err != nil {
			return err
		}
		defer w.Close()

		if err := w.Add(args...); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching for changes", zap.Strings("dirs", args))
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
