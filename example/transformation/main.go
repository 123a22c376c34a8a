// Transformation draws the container with a face blended on top, moved to
// the bottom-right corner and spun around the centre of the screen.
//
//	go run ./example/transformation/
package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/example/internal/demo"
)

//go:embed shaders
var shaders embed.FS

const transformUniform = "transform"

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
	cfg, err := demo.Settings(opts, "Transformation")
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

	var textures []*opengl.Texture
	defer func() {
		for _, t := range textures {
			t.Delete()
		}
	}()
	for _, name := range []string{"container.png", "awesomeface.png"} {
		t, err := demo.Texture(name)
		if err != nil {
			return err
		}
		textures = append(textures, t)
	}

	setup := func() error {
		program.Use()
		program.SetInt("ourTexture1", 0)
		program.SetInt("ourTexture2", 1)
		if !program.HasUniform(transformUniform) {
			return errors.New("cannot find uniform location " + transformUniform)
		}
		return nil
	}
	if err := setup(); err != nil {
		return err
	}

	reload, err := demo.NewReloader(program, opts)
	if err != nil {
		return err
	}
	defer reload.Close()

	return win.Run(func(f opengl.Frame) error {
		if reload.Poll(f.Input) {
			if err := setup(); err != nil {
				return err
			}
		}
		for i, t := range textures {
			t.Bind(uint32(i))
		}
		program.Use()
		program.SetMat4(transformUniform, learngl.SpinTransform(float32(f.Time)))
		quad.Draw()
		return nil
	})
}
