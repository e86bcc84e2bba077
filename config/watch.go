package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchOverrides calls onChange whenever the tuning file at path is written
// or recreated. onChange runs on the watcher goroutine; callers should only
// latch a flag there and reload on their own update loop. The returned
// function stops the watcher.
func WatchOverrides(path string, onChange func()) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: tuning watcher: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}
