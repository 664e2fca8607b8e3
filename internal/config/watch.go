package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the configuration file and delivers freshly loaded
// configs on the returned channel until done is closed. Edits that
// fail to parse are skipped; the previous config stays in effect. The
// directory is watched rather than the file so editors that replace
// the file on save keep triggering events.
func Watch(done <-chan struct{}) (<-chan *UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch config directory: %w", err)
	}

	ch := make(chan *UserConfig, 1)
	go func() {
		defer watcher.Close()
		defer close(ch)
		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadUserConfig()
				if err != nil {
					continue
				}
				// Drop the update if the UI hasn't consumed the
				// previous one; only the latest config matters.
				select {
				case ch <- cfg:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch, nil
}
