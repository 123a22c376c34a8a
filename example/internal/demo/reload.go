package demo

import (
	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

// Reloader relinks a file-backed program when R is pressed or, with
// -watch, when one of its source files changes. A failed reload is logged
// and the previous program stays in use.
type Reloader struct {
	program *opengl.Program
	watcher *learngl.SourceWatcher
}

// NewReloader returns a Reloader for p. Embedded programs cannot be
// reloaded; Poll is then a no-op.
func NewReloader(p *opengl.Program, o Options) (*Reloader, error) {
	r := &Reloader{}
	if !o.FromFiles() {
		return r, nil
	}
	r.program = p
	if o.Watch {
		w, err := learngl.WatchSources(o.Vertex, o.Fragment)
		if err != nil {
			return nil, err
		}
		r.watcher = w
		learngl.Logger().Info("watching shaders", "vs", o.Vertex, "fs", o.Fragment)
	}
	return r, nil
}

// Poll reloads the program if requested and reports whether it did.
// Uniforms set once before the loop must be set again after a reload.
func (r *Reloader) Poll(in *learngl.InputState) bool {
	if r.program == nil {
		return false
	}
	requested := in.KeyPressed(learngl.KeyR)
	if r.watcher != nil && r.watcher.Changed() {
		requested = true
	}
	if !requested {
		return false
	}
	if err := r.program.Reload(); err != nil {
		learngl.Logger().Error("shader reload failed", "err", err)
		return false
	}
	return true
}

// Close stops the file watcher.
func (r *Reloader) Close() {
	if r.watcher != nil {
		if err := r.watcher.Close(); err != nil {
			learngl.Logger().Warn("stop shader watcher", "err", err)
		}
		r.watcher = nil
	}
}
