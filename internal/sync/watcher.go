package sync

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"task-metadata-sync/internal/document/repository/vault"
	pkgLog "task-metadata-sync/pkg/log"
)

// Watcher turns filesystem events below a vault root into document IDs.
type Watcher struct {
	root    string
	notify  func(id string)
	watcher *fsnotify.Watcher
	l       pkgLog.Logger
}

func NewWatcher(root string, notify func(id string), l pkgLog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	w := &Watcher{root: root, notify: notify, watcher: fw, l: l}
	if err := w.addRecursive(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Run dispatches events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.l.Warnf(ctx, "watcher: %v", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.l.Warnf(ctx, "watcher: %v", err)
			}
			return
		}
	}

	id, ok := w.documentID(event.Name)
	if !ok {
		return
	}
	w.l.Debugf(ctx, "watcher: %s %s", event.Op, id)
	w.notify(id)
}

// documentID maps a path to a vault ID. Hidden segments and non-markdown
// files are rejected.
func (w *Watcher) documentID(path string) (string, bool) {
	if !vault.IsMarkdown(path) {
		return "", false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if vault.IsHidden(seg) {
			return "", false
		}
	}
	return rel, true
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.root && vault.IsHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}
