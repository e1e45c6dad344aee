package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store holds the current content and can reload it from disk.
type Store struct {
	fs   afero.Fs
	path string

	mu      sync.RWMutex
	current *Content
}

// NewStore loads the content at path and returns a store serving it.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	c, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return &Store{fs: fs, path: path, current: c}, nil
}

// Get returns the current content. Callers must not modify it.
func (s *Store) Get() *Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Path returns the content file path, empty for the embedded default.
func (s *Store) Path() string { return s.path }

// Reload re-reads the file. On failure the previous content is kept.
func (s *Store) Reload() error {
	c, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
	return nil
}

// Watch reloads the content whenever its file changes, until ctx is done.
// Watching the directory rather than the file survives editors that save by
// renaming. It is a no-op for the embedded default.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		slog.Info("Content watch skipped, serving embedded content")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("content: watch %s: %w", dir, err)
	}

	go s.watch(ctx, watcher)
	slog.Debug("Started content watcher", "path", s.path)
	return nil
}

func (s *Store) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Debug("Content watcher stopped")
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload content, keeping previous version", "path", s.path, "error", err)
				continue
			}
			slog.Info("Content reloaded", "path", s.path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
