// Package fswatcher reports changes to single files.
package fswatcher

import (
	"context"
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// FileWatcher reports when a file is written or replaced. The parent
// directory is watched so editors that save by renaming are seen.
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan string
	errors chan error
}

func NewFileWatcher(filename string) (*FileWatcher, error) {
	name, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w0.Add(filepath.Dir(name)); err != nil {
		_ = w0.Close()
		return nil, errors.Wrapf(err, "watch %v", name)
	}
	w := &FileWatcher{
		w:      w0,
		name:   name,
		events: make(chan string),
		errors: make(chan error),
	}
	return w, nil
}

func (w *FileWatcher) Name() string {
	return w.name
}

// Events receives the file name on each change.
func (w *FileWatcher) Events() <-chan string {
	return w.events
}

func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Run forwards events until the context is done, then closes the watcher.
func (w *FileWatcher) Run(ctx context.Context) error {
	defer w.w.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			select {
			case w.errors <- err:
			case <-ctx.Done():
				return nil
			}
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.events <- w.name:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
