package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches geometry files and calls back, debounced, after they
// change. Files replaced by rename (as most editors save) stay watched.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer

	// OnError receives watcher errors; nil prints them
	OnError func(error)
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch adds files; callback receives the absolute path of a changed file
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				fw.handleEvent(event)

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.reportError(err)
			}
		}
	}()
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		fw.handleFileChange(event.Name)

	case event.Has(fsnotify.Rename), event.Has(fsnotify.Remove):
		// The old inode is gone; watch the new file once it shows up.
		go fw.rewatch(event.Name)
	}
}

// rewatch re-adds a file that was replaced and reports it as changed
func (fw *FileWatcher) rewatch(filePath string) {
	for attempt := 0; attempt < 10; attempt++ {
		time.Sleep(fw.debounce)

		fw.mu.Lock()
		_, watched := fw.callbacks[filePath]
		fw.mu.Unlock()
		if !watched {
			return
		}

		if err := fw.watcher.Add(filePath); err == nil {
			fw.handleFileChange(filePath)
			return
		}
	}
	fw.reportError(fmt.Errorf("lost track of %s", filePath))
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

func (fw *FileWatcher) reportError(err error) {
	if fw.OnError != nil {
		fw.OnError(err)
		return
	}
	fmt.Printf("Watcher error: %v\n", err)
}

// Close stops the watcher and pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.callbacks = make(map[string]func(string))
	fw.mu.Unlock()

	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.callbacks {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	return nil
}
