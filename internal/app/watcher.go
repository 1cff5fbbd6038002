package app

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	statepkg "github.com/kura-code/kura/internal/state"
)

// dirWatcher watches the directories shown in the two panes and translates
// filesystem events into PaneRefreshActions. External mutations thus flow
// through the same sequential apply path as key input.
type dirWatcher struct {
	fsw     *fsnotify.Watcher
	actions chan<- statepkg.Action

	mu    sync.Mutex
	paths map[statepkg.PaneID]string
}

func newDirWatcher(actions chan<- statepkg.Action) (*dirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &dirWatcher{
		fsw:     fsw,
		actions: actions,
		paths:   make(map[statepkg.PaneID]string),
	}
	go w.run()
	return w, nil
}

// SetPath retargets the watch for one pane. Watches are reference-counted
// across panes: a directory stays watched while either pane shows it.
func (w *dirWatcher) SetPath(id statepkg.PaneID, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	old, ok := w.paths[id]
	if ok && old == path {
		return
	}
	w.paths[id] = path

	if ok && old != w.paths[id.Other()] {
		_ = w.fsw.Remove(old)
	}
	if path != "" && (!ok || old != path) {
		_ = w.fsw.Add(path)
	}
}

func (w *dirWatcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write|fsnotify.Chmod) == 0 {
				continue
			}
			w.dispatch(filepath.Dir(ev.Name))
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// dispatch queues a refresh for every pane showing dir. Non-blocking: when
// the channel is full a queued refresh is already pending, so dropping the
// event loses nothing.
func (w *dirWatcher) dispatch(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, path := range w.paths {
		if path != dir {
			continue
		}
		select {
		case w.actions <- statepkg.PaneRefreshAction{Pane: id}:
		default:
		}
	}
}

func (w *dirWatcher) Close() error {
	return w.fsw.Close()
}
