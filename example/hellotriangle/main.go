// Hellotriangle opens a window and clears it every frame until Escape is
// pressed or the window is closed.
//
//	go run ./example/hellotriangle/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/example/internal/demo"
)

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
	cfg, err := demo.Settings(opts, "Hello Window")
	if err != nil {
		return err
	}

	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	// Run clears with the configured colour before each frame.
	return win.Run(func(opengl.Frame) error { return nil })
}
