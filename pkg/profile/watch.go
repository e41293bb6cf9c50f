package profile

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// newWatcher is replaced in tests to force watcher creation errors
var newWatcher = fsnotify.NewWatcher

// Watch reports filesystem events under dir until ctx is done.
// Only the top level of dir is watched; fsnotify is not recursive.
func Watch(ctx context.Context, dir string, fn func(fsnotify.Event)) error {
	watcher, err := newWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			fn(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
