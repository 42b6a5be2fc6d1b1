package tutor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTables reloads engine's tables whenever the file at path is
// written or replaced, until ctx is done. A file that fails to parse is
// logged and the current tables stay in place.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename are picked up.
func WatchTables(ctx context.Context, path string, engine *RuleEngine, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("resolve table path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				reloadTables(abs, engine, logger)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Table watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	logger.Info("Watching response tables", slog.String("path", abs))
	return nil
}

func reloadTables(path string, engine *RuleEngine, logger *slog.Logger) {
	table, err := LoadTableFile(path)
	if err != nil {
		logger.Error("Failed to reload response tables", slog.String("error", err.Error()))
		return
	}
	engine.SetTable(table)
	logger.Info("Reloaded response tables",
		slog.String("path", path),
		slog.Int("topics", len(table.Topics)))
}
