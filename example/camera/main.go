// Camera draws ten textured cubes and moves a camera through them.
// WASD or the arrow keys move in the view plane, Space and Left Shift move
// up and down.
//
//	go run ./example/camera/
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
	cfg, err := demo.Settings(opts, "Camera")
	if err != nil {
		return err
	}
	cfg.DepthTest = true

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

	vertices, indices := learngl.Cube()
	cube, err := opengl.NewMesh(vertices, indices, learngl.LayoutTextured)
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	defer cube.Delete()

	container, err := demo.Texture("container.png")
	if err != nil {
		return err
	}
	defer container.Delete()
	face, err := demo.Texture("awesomeface.png")
	if err != nil {
		return err
	}
	defer face.Delete()

	bindSamplers := func() {
		program.Use()
		program.SetInt("ourTexture1", 0)
		program.SetInt("ourTexture2", 1)
	}
	bindSamplers()

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	camera := learngl.NewCamera()
	return win.Run(func(f opengl.Frame) error {
		if reload.Poll(f.Input) {
			bindSamplers()
		}
		camera.HandleInput(f.Input, f.Delta)

		container.Bind(0)
		face.Bind(1)
		program.Use()
		program.SetMat4("projection", learngl.Perspective(f.Width, f.Height))
		program.SetMat4("view", camera.View())
		for i := range learngl.CubePositions {
			program.SetMat4("model", learngl.CubeModel(i))
			cube.Draw()
		}
		return nil
	})
}
