package csvfile

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"adkpi/internal/config"
)

const reloadDelay = 100 * time.Millisecond

// WatchCatalog reloads the catalog at path whenever the file is written or
// replaced, until ctx is done. Bursts of events are coalesced. A catalog
// that fails to parse is logged and the current one kept.
func (s *Source) WatchCatalog(ctx context.Context, path, dataDir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// The directory is watched so editors that replace the file are seen.
	if err = w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reload = time.After(reloadDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("catalog watcher error", slog.Any("error", err))
		case <-reload:
			reload = nil
			cat, err := config.LoadCatalog(path, dataDir)
			if err != nil {
				s.logger.Error("catalog reload failed", slog.String("path", path), slog.Any("error", err))
				continue
			}
			s.SetCatalog(cat)
			s.logger.Info("catalog reloaded", slog.Int("datasets", len(cat.Datasets)))
		}
	}
}
