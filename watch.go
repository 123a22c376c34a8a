package learngl

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// SourceWatcher notices edits to shader files so a render loop can relink.
// The watcher goroutine only flips a flag; relinking must happen on the
// thread that owns the GL context, which polls Changed once per frame.
type SourceWatcher struct {
	fsw   *fsnotify.Watcher
	files map[string]struct{}
	dirty atomic.Bool
	done  chan struct{}
}

// WatchSources starts watching the given files. The parent directories are
// watched rather than the files, since many editors save by replacing.
func WatchSources(paths ...string) (*SourceWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch shaders: %w", err)
	}
	w := &SourceWatcher{
		fsw:   fsw,
		files: make(map[string]struct{}, len(paths)),
		done:  make(chan struct{}),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch shaders: %w", err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch shaders in %q: %w", dir, err)
		}
	}
	go w.loop()
	return w, nil
}

func (w *SourceWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := w.files[abs]; ok {
				logger.Debug("shader source changed", "path", ev.Name, "op", ev.Op.String())
				w.dirty.Store(true)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher error", "err", err)
		}
	}
}

// Changed reports whether a watched file changed since the last call.
func (w *SourceWatcher) Changed() bool {
	return w.dirty.Swap(false)
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *SourceWatcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
