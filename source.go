package learngl

import (
	"fmt"
	"io/fs"
	"os"
)

// Sources holds the text of a vertex/fragment shader pair and where it came from.
// Paths are empty for sources that were not loaded from files.
type Sources struct {
	VertexPath   string
	FragmentPath string
	Vertex       string
	Fragment     string
}

// Source returns the text for the given stage.
func (s Sources) Source(stage Stage) string {
	if stage == StageFragment {
		return s.Fragment
	}
	return s.Vertex
}

// Path returns the file the given stage was loaded from.
func (s Sources) Path(stage Stage) string {
	if stage == StageFragment {
		return s.FragmentPath
	}
	return s.VertexPath
}

// LoadSources reads a vertex and fragment shader from disk.
// The error names the stage and path that could not be read.
func LoadSources(vertexPath, fragmentPath string) (Sources, error) {
	return loadSources(os.ReadFile, vertexPath, fragmentPath)
}

// LoadSourcesFS is LoadSources for an fs.FS, such as an embed.FS.
func LoadSourcesFS(fsys fs.FS, vertexPath, fragmentPath string) (Sources, error) {
	return loadSources(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, vertexPath, fragmentPath)
}

func loadSources(read func(string) ([]byte, error), vertexPath, fragmentPath string) (Sources, error) {
	vs, err := read(vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("load vertex shader %q: %w", vertexPath, err)
	}
	fsrc, err := read(fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("load fragment shader %q: %w", fragmentPath, err)
	}
	return Sources{
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
		Vertex:       string(vs),
		Fragment:     string(fsrc),
	}, nil
}

// CString returns src terminated with a NUL byte, as gl.Strs expects.
func CString(src string) string {
	if len(src) > 0 && src[len(src)-1] == 0 {
		return src
	}
	return src + "\x00"
}
