// Hellorectangle draws a square from four vertices and six indices.
// F1 toggles wireframe mode, which shows the two triangles.
//
//	go run ./example/hellorectangle/
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
	cfg, err := demo.Settings(opts, "Hello Rectangle")
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

	quad, err := opengl.NewMesh(learngl.Quad, learngl.QuadIndices, learngl.LayoutTextured)
	if err != nil {
		return fmt.Errorf("quad: %w", err)
	}
	defer quad.Delete()

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	return win.Run(func(f opengl.Frame) error {
		reload.Poll(f.Input)
		program.Use()
		quad.Draw()
		return nil
	})
}
