// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// watcher.go adds optional file-watch invalidation on top of the template
// cache. By default the cache serves stale entries for the process
// lifetime; deployments that edit templates in place can enable the
// watcher so edits show up without a restart.
package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cached templates when their backing files change.
type Watcher struct {
	fs    *fsnotify.Watcher
	store *TemplateStore
	done  chan struct{}
}

// Watch starts watching the store's root directory and all category
// subdirectories. New category directories created while running are picked
// up automatically. Close the returned watcher to stop.
func Watch(s *TemplateStore) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(s.dir); err != nil {
		fw.Close()
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		fw.Close()
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			// Best effort — a category dir we cannot watch still works,
			// it just keeps the process-lifetime staleness behaviour.
			if err := fw.Add(filepath.Join(s.dir, entry.Name())); err != nil {
				slog.Warn("cannot watch category directory", "dir", entry.Name(), "error", err)
			}
		}
	}

	w := &Watcher{fs: fw, store: s, done: make(chan struct{})}
	go w.run()

	slog.Info("template watcher started", "dir", s.dir)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("template watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	rel, err := filepath.Rel(w.store.dir, event.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	switch {
	case rel == manifestFile:
		w.store.ReloadCategories()
		slog.Debug("category manifest changed, reloading")
	case strings.HasSuffix(rel, ".html"):
		id := strings.TrimSuffix(rel, ".html")
		w.store.Invalidate(id)
		slog.Debug("template changed on disk, invalidated", "id", id)
	case event.Op&fsnotify.Create != 0:
		// A new category directory; start watching it.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fs.Add(event.Name); err != nil {
				slog.Warn("cannot watch new category directory", "dir", rel, "error", err)
			}
		}
	}
}
