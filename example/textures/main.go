// Textures draws the wooden container on a square, tinted by the colour
// of each corner.
//
//	go run ./example/textures/ [-image path/to/picture.jpg]
package main

import (
	"embed"
	"flag"
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
	image := flag.String("image", "", "texture file (default: bundled container)")
	opts := demo.ParseFlags()
	cfg, err := demo.Settings(opts, "Textures")
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

	tex, err := demo.TextureFile(*image, "container.png")
	if err != nil {
		return err
	}
	defer tex.Delete()

	bindSamplers := func() {
		program.Use()
		program.SetInt("ourTexture", 0)
	}
	bindSamplers()

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	return win.Run(func(f opengl.Frame) error {
		if reload.Poll(f.Input) {
			bindSamplers()
		}
		tex.Bind(0)
		program.Use()
		quad.Draw()
		return nil
	})
}
