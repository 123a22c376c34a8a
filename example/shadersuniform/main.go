// Shadersuniform draws a triangle whose colour is a uniform updated every
// frame, so the green channel pulses over time.
//
//	go run ./example/shadersuniform/
package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/example/internal/demo"
)

//go:embed shaders
var shaders embed.FS

const colorUniform = "vertexColor"

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
	cfg, err := demo.Settings(opts, "Shader Uniform")
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
	if !program.HasUniform(colorUniform) {
		return errors.New("cannot find uniform location " + colorUniform)
	}

	tri, err := opengl.NewMesh(learngl.Triangle, nil, learngl.LayoutPosition)
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
		reload.Poll(f.Input)
		program.Use()
		program.SetVec4(colorUniform, mgl32.Vec4{0, learngl.PulseGreen(f.Time), 0, 1})
		tri.Draw()
		return nil
	})
}
