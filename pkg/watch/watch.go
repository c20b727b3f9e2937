// Package watch re-reads a document whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/logger"
)

// Func receives the document after each change, or the read error.
type Func func(doc document.Document, err error)

// Watch calls fn with the current document, then again after every write,
// create, rename or remove of the handler's file, until ctx is done.
// The parent directory is watched so the file may be created or replaced
// while watching.
func Watch(ctx context.Context, h document.Handler, fn Func) error {
	path, err := filepath.Abs(h.Path())
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", h.Path(), err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	log := logger.Named("watch").With("path", path)
	fn(h.Read())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !Relevant(ev, path) {
				continue
			}
			log.Debug("file changed", "op", ev.Op.String())
			fn(h.Read())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}

// Relevant reports whether ev changes the content of the file at path.
func Relevant(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
