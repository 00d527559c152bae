package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	tt "github.com/gnolang/proplogic/internal/types"
	"go.uber.org/zap"
)

const defaultSettleDelay = 100 * time.Millisecond

// ReportFunc receives the issues found in a changed file.
type ReportFunc func(filename string, issues []tt.Issue)

// Watcher re-checks formula files whenever they are written.
type Watcher struct {
	engine     *Engine
	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	extensions map[string]bool
	report     ReportFunc

	// SettleDelay is waited after a change so that several writes in a row
	// are checked once.
	SettleDelay time.Duration
}

// NewWatcher creates a watcher reporting to report. A nil logger disables logging.
func NewWatcher(engine *Engine, logger *zap.Logger, extensions []string, report ReportFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[ext] = true
	}

	return &Watcher{
		engine:      engine,
		logger:      logger,
		watcher:     fw,
		extensions:  exts,
		report:      report,
		SettleDelay: defaultSettleDelay,
	}, nil
}

// Add watches dirs and all of their subdirectories.
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.extensions[filepath.Ext(event.Name)] {
		return
	}

	time.Sleep(w.SettleDelay)
	issues, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("Error checking file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Debug("File checked", zap.String("file", event.Name), zap.Int("issues", len(issues)))
	w.report(event.Name, issues)
}
