package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the given files and calls onChange with the changed path
// each time one is written. It runs until ctx is cancelled. Watch mode
// uses this to re-run the benchmark when the config or corpus changes.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}

	slog.Info("config: watching for changes", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only react to write or create events. Editors often write via
			// rename (atomic save), so also catch fsnotify.Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			slog.Info("config: change detected", "path", event.Name)
			onChange(event.Name)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
