// Shadersclass draws a triangle with a colour per corner, interpolated
// across its surface. Pass -vs and -fs to load the shaders from disk; R
// relinks them and -watch relinks on every save.
//
//	go run ./example/shadersclass/ -vs example/shadersclass/shaders/shader.vs -fs example/shadersclass/shaders/shader.fs -watch
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
	cfg, err := demo.Settings(opts, "Shader Class")
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

	tri, err := opengl.NewMesh(learngl.ColoredTriangle, nil, learngl.LayoutColored)
	if err != nil {
		return fmt.Errorf("triangle: %w", err)
	}
	defer tri.Delete()

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	return win.Run(func(f opengl.Frame) error {
		if reload.Poll(f.Input) {
			learngl.Logger().Info("shaders relinked", "program", program.ID())
		}
		program.Use()
		tri.Draw()
		return nil
	})
}
