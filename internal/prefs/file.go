package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// File watches a one-line preference file (containing "light" or "dark")
// and notifies subscribers when its content changes. Desktop environments
// that expose their appearance setting through a file, and tests, use
// this probe. A missing or corrupt file reads as Unknown.
type File struct {
	path    string
	watcher *fsnotify.Watcher

	mu   sync.Mutex
	subs map[int]func(Preference)
	next int
	last Preference

	done chan struct{}
}

// NewFile starts watching the preference file at path. The file's parent
// directory must exist; the file itself may not yet.
func NewFile(path string) (*File, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so create/rename of the file itself is seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	f := &File{
		path:    path,
		watcher: watcher,
		subs:    make(map[int]func(Preference)),
		done:    make(chan struct{}),
	}
	f.last = f.read()
	go f.run()
	return f, nil
}

func (f *File) Current() Preference {
	return f.read()
}

func (f *File) Subscribe(fn func(Preference)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

// Close stops the watcher and the notification loop.
func (f *File) Close() error {
	close(f.done)
	return f.watcher.Close()
}

func (f *File) run() {
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if event.Name != f.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			f.notify(f.read())
		case _, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors degrade to "no change events", never fatal.
		}
	}
}

func (f *File) read() Preference {
	data, err := os.ReadFile(f.path) //nolint:gosec // G304: preference path is host-supplied
	if err != nil {
		return Unknown
	}
	return Parse(strings.TrimSpace(string(data)))
}

func (f *File) notify(pref Preference) {
	f.mu.Lock()
	if pref == f.last {
		f.mu.Unlock()
		return
	}
	f.last = pref
	fns := make([]func(Preference), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(pref)
	}
}
