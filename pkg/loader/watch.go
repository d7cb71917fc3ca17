package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/utils"
)

// Watch blocks until ctx is done. Whenever the file at path is written or replaced
// the cached document is dropped and the freshly parsed one is passed to onChange.
// Events which leave the content unchanged and documents that fail to parse
// (e.g. while the game is still writing) are skipped.
//
//nolint:cyclop,funlen // by design
func (dc *DocumentCache) Watch(
	ctx context.Context,
	path string,
	onChange func(doc *model.Document),
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	// watch the directory, editors and the game replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	last := fileHash(target)
	dc.log.Info("watching career file", log.String("file", target))
	for {
		select {
		case <-ctx.Done():
			dc.log.Info("context done, stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				dc.log.Info("watcher events channel closed, stopping watch")
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			dc.log.Debug("change detected",
				log.String("file", event.Name), log.Any("event", event))
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			current := fileHash(target)
			if current == "" || current == last {
				dc.log.Debug("content unchanged", log.String("file", target))
				continue
			}
			last = current
			doc, err := dc.Reload(ctx, path)
			if err != nil {
				dc.log.Warn("could not reload career file", log.ErrorField(err))
				continue
			}
			onChange(doc)
		case err, ok := <-watcher.Errors:
			if !ok {
				dc.log.Info("watcher errors channel closed, stopping watch")
				return nil
			}
			dc.log.Error("watcher error", log.ErrorField(err))
		}
	}
}

// fileHash returns the content hash of the file, empty if it cannot be read
func fileHash(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return utils.ContentHash(data)
}
