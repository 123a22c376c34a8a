// Command gen renders one frame of each example scene in a hidden window,
// captures the framebuffer, and saves JPEG screenshots to doc/imgs/.
//
// Usage, from the repository root:
//
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/schollz/progressbar/v3"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const (
	shotWidth  = 400
	shotHeight = 300
)

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	name  string // filename without extension, also the example directory
	depth bool   // enable depth testing
	// setup uploads the scene and returns its draw function and a cleanup.
	setup func(p *opengl.Program, textures []*opengl.Texture) (draw func(), cleanup func(), err error)
}

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	learngl.SetVerbose(*verbose)

	cfg := learngl.DefaultConfig()
	cfg.Width, cfg.Height = shotWidth, shotHeight
	cfg.Title = "screenshot-gen"
	cfg.Hidden = true
	cfg.VSync = false

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	var textures []*opengl.Texture
	defer func() {
		for _, t := range textures {
			t.Delete()
		}
	}()
	for _, name := range []string{"container.png", "awesomeface.png"} {
		t, err := opengl.LoadTexture(filepath.Join("example", "internal", "demo", "textures", name), true, opengl.TextureOptions{})
		if err != nil {
			return err
		}
		textures = append(textures, t)
	}

	shots := buildScreenshots()
	bar := progressbar.Default(int64(len(shots)), "capturing")
	for _, s := range shots {
		bar.Describe(s.name)
		if err := capture(window, s, textures, *outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		bar.Add(1)
	}
	bar.Finish()

	fmt.Printf("\nGenerated %d screenshots (%dx%d) in %s/\n", len(shots), shotWidth, shotHeight, *outDir)
	return nil
}

func capture(window *opengl.Window, s screenshot, textures []*opengl.Texture, outDir string) (err error) {
	dir := filepath.Join("example", s.name, "shaders")
	p, err := opengl.LoadProgram(filepath.Join(dir, "shader.vs"), filepath.Join(dir, "shader.fs"))
	if err != nil {
		return err
	}
	defer p.Delete()

	draw, cleanup, err := s.setup(p, textures)
	if err != nil {
		return err
	}
	defer cleanup()

	if s.depth {
		gl.Enable(gl.DEPTH_TEST)
		defer gl.Disable(gl.DEPTH_TEST)
	}
	w, h := window.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0.2, 0.3, 0.3, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	p.Use()
	draw()

	img := window.Capture()
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func meshScene(vertices any, indices []uint32, layout learngl.VertexLayout, before func()) func(*opengl.Program, []*opengl.Texture) (func(), func(), error) {
	return func(*opengl.Program, []*opengl.Texture) (func(), func(), error) {
		m, err := opengl.NewMesh(vertices, indices, layout)
		if err != nil {
			return nil, nil, err
		}
		draw := func() {
			if before != nil {
				before()
			}
			m.Draw()
		}
		return draw, m.Delete, nil
	}
}

// buildScreenshots returns the list of all scene screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name:  "hellorectangle",
			setup: meshScene(learngl.Quad, learngl.QuadIndices, learngl.LayoutTextured, nil),
		},
		{
			name: "shadersuniform",
			setup: func(p *opengl.Program, tex []*opengl.Texture) (func(), func(), error) {
				return meshScene(learngl.Triangle, nil, learngl.LayoutPosition, func() {
					p.SetVec4("vertexColor", mgl32.Vec4{0, learngl.PulseGreen(1), 0, 1})
				})(p, tex)
			},
		},
		{
			name:  "shadersclass",
			setup: meshScene(learngl.ColoredTriangle, nil, learngl.LayoutColored, nil),
		},
		{
			name: "textures",
			setup: func(p *opengl.Program, tex []*opengl.Texture) (func(), func(), error) {
				return meshScene(learngl.Quad, learngl.QuadIndices, learngl.LayoutTextured, func() {
					tex[0].Bind(0)
					p.SetInt("ourTexture", 0)
				})(p, tex)
			},
		},
		{
			name: "transformation",
			setup: func(p *opengl.Program, tex []*opengl.Texture) (func(), func(), error) {
				return meshScene(learngl.Quad, learngl.QuadIndices, learngl.LayoutTextured, func() {
					tex[0].Bind(0)
					tex[1].Bind(1)
					p.SetInt("ourTexture1", 0)
					p.SetInt("ourTexture2", 1)
					p.SetMat4("transform", learngl.SpinTransform(0.6))
				})(p, tex)
			},
		},
		{
			name:  "camera",
			depth: true,
			setup: func(p *opengl.Program, tex []*opengl.Texture) (func(), func(), error) {
				vertices, indices := learngl.Cube()
				m, err := opengl.NewMesh(vertices, indices, learngl.LayoutTextured)
				if err != nil {
					return nil, nil, err
				}
				camera := learngl.NewCamera()
				draw := func() {
					tex[0].Bind(0)
					tex[1].Bind(1)
					p.SetInt("ourTexture1", 0)
					p.SetInt("ourTexture2", 1)
					p.SetMat4("projection", learngl.Perspective(shotWidth, shotHeight))
					p.SetMat4("view", camera.View())
					for i := range learngl.CubePositions {
						p.SetMat4("model", learngl.CubeModel(i))
						m.Draw()
					}
				}
				return draw, m.Delete, nil
			},
		},
	}
}
