package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/gnolang/proplogic/scanner"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Engine checks formula files and sources.
type Engine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
}

// Options tunes batch processing.
type Options struct {
	// Extensions selects the files picked up when a path is a directory.
	Extensions []string
	// IgnorePaths are skipped when scanning directories.
	IgnorePaths []string
	// Progress receives the progress bar; nil disables it.
	Progress io.Writer
}

// DefaultOptions derives the processing options from a configuration.
func DefaultOptions(config Config) Options {
	return Options{
		Extensions:  config.Extensions,
		IgnorePaths: config.IgnorePaths,
		Progress:    os.Stderr,
	}
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources [][]byte,
	processor func(Engine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	opts Options,
	processor func(Engine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, opts, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allIssues, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

type fileResult struct {
	path   string
	issues []tt.Issue
	err    error
}

// ProcessPath checks a single file, or every matching file below a directory
// using one worker per CPU. Issues are returned in file order. When a file
// fails the remaining files are still checked and the first error is
// returned along with the issues found.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	opts Options,
	processor func(Engine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		issues, err := processor(engine, path)
		if err != nil {
			return []tt.Issue{}, err
		}
		return issues, nil
	}

	s := scanner.New(path, opts.Extensions...)
	s.Ignore(opts.IgnorePaths...)
	files, err := s.Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	jobs := make(chan int)
	results := make([]fileResult, len(files))
	done := make(chan struct{}, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	if maxWorkers > len(files) {
		maxWorkers = len(files)
	}
	for w := 0; w < maxWorkers; w++ {
		go func() {
			for i := range jobs {
				fp := files[i].Path
				fileIssues, err := processor(engine, fp)
				if err != nil && logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				results[i] = fileResult{path: fp, issues: fileIssues, err: err}
				if bar != nil {
					_ = bar.Add(1)
				}
				done <- struct{}{}
			}
		}()
	}

	dispatched := 0
	var ctxErr error
dispatch:
	for i := range files {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break dispatch
		case jobs <- i:
			dispatched++
		}
	}
	close(jobs)
	for i := 0; i < dispatched; i++ {
		<-done
	}
	if bar != nil {
		_ = bar.Finish()
	}

	issues := []tt.Issue{}
	var errs []error
	for _, r := range results[:dispatched] {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.path, r.err))
			continue
		}
		issues = append(issues, r.issues...)
	}

	if ctxErr != nil {
		return issues, ctxErr
	}
	if len(errs) > 0 {
		return issues, errors.Join(errs...)
	}
	return issues, nil
}

func ProcessFile(engine Engine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine Engine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}
