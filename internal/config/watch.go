package config

import (
	"context"

	"codeberg.org/mutker/signalctl/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watch monitors path for changes and calls onChange with the freshly
// loaded Config each time the file is written. It runs until ctx is
// cancelled. A failed reload keeps the previous config active and does
// not call onChange.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	logger.Info().Str("path", path).Msg("Watching config for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save atomically via rename, so catch
			// Create as well as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load()
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Config reload failed, keeping previous")
				continue
			}

			logger.Info().Str("path", path).Msg("Config reloaded")
			onChange(cfg)

			// Re-add in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Config watcher error")
		}
	}
}
