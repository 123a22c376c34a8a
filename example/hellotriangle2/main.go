// Hellotriangle2 draws two triangles next to each other, each from its
// own vertex array and buffer.
//
//	go run ./example/hellotriangle2/
package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/example/internal/demo"
)

//go:embed shaders
var shaders embed.FS

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts := demo.ParseFlags()
	cfg, err := demo.Settings(opts, "Two Triangles")
	if err != nil {
		return err
	}

	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	program, err := demo.Program(opts, shaders)
	if err != nil {
		return err
	}
	defer program.Delete()

	var meshes []*opengl.Mesh
	defer func() {
		for _, m := range meshes {
			m.Delete()
		}
	}()
	for i, tri := range learngl.TwinTriangles {
		m, err := opengl.NewMesh(tri, nil, learngl.LayoutPosition)
		if err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
		meshes = append(meshes, m)
	}

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	return win.Run(func(f opengl.Frame) error {
		reload.Poll(f.Input)
		program.Use()
		for _, m := range meshes {
			m.Draw()
		}
		return nil
	})
}
