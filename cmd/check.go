package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ignorePaths string
	outPath     string
	noProgress  bool
	cacheDir    string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Validate every formula in files or directories",
	Long: `Reads formula files, one formula per line. Blank lines and lines
starting with '#' are skipped. Use '-' to read formulas from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please provide file or directory paths")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine, config, err := check.New(cfgFile)
		if err != nil {
			logger.Error("Failed to initialize engine", zap.Error(err))
			return err
		}

		if cacheDir != "" {
			cache, err := newCache(cacheDir)
			if err != nil {
				logger.Error("Failed to open cache", zap.String("dir", cacheDir), zap.Error(err))
				return err
			}
			engine.SetCache(cache)
		}

		opts := check.DefaultOptions(config)
		opts.Progress = cmd.ErrOrStderr()
		if noProgress || jsonOutput {
			opts.Progress = nil
		}
		if ignorePaths != "" {
			for _, p := range strings.Split(ignorePaths, ",") {
				opts.IgnorePaths = append(opts.IgnorePaths, strings.TrimSpace(p))
			}
		}

		issues, err := runCheck(ctx, cmd.InOrStdin(), engine, args, opts)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			return err
		}

		if err := printIssues(cmd.OutOrStdout(), issues, jsonOutput, outPath); err != nil {
			return err
		}
		if len(issues) > 0 {
			return ErrIssuesFound
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Reuse results of unchanged files stored in this directory")
}

// newCache opens the result cache, invalidated whenever the configuration file changes.
func newCache(dir string) (*internal.Cache, error) {
	configPath := cfgFile
	if configPath == "" {
		configPath = check.DefaultConfigPath
	}
	var deps []string
	if _, err := os.Stat(configPath); err == nil {
		deps = append(deps, configPath)
	}
	return internal.NewCache(dir, deps...)
}

func runCheck(ctx context.Context, stdin io.Reader, engine check.Engine, args []string, opts check.Options) ([]tt.Issue, error) {
	var paths []string
	var sources [][]byte
	for _, arg := range args {
		if arg != "-" {
			paths = append(paths, arg)
			continue
		}
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		sources = append(sources, source)
	}

	issues, err := check.ProcessSources(ctx, logger, engine, sources, check.ProcessSource)
	if err != nil {
		return nil, err
	}
	fileIssues, err := check.ProcessFiles(ctx, logger, engine, paths, opts, check.ProcessFile)
	if err != nil {
		return nil, err
	}
	return append(issues, fileIssues...), nil
}

func printIssues(w io.Writer, issues []tt.Issue, isJSON bool, jsonOutput string) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		filename := issue.Filename
		if filename == "" {
			filename = formatter.StdinName
		}
		issuesByFile[filename] = append(issuesByFile[filename], issue)
	}

	if isJSON {
		if jsonOutput == "" {
			return writeJSON(w, issuesByFile)
		}
		return writeJSONFile(jsonOutput, issuesByFile)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		var source *internal.SourceCode
		if filename != formatter.StdinName {
			var err error
			source, err = internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			}
		}
		fmt.Fprintln(w, formatter.GenerateFormattedIssue(issuesByFile[filename], source))
	}
	return nil
}
