package opengl

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window owns the GLFW window, its GL context and the keyboard state fed
// to the frame callback. GLFW requires all of this on the main thread, so
// callers lock the OS thread in init.
type Window struct {
	win       *glfw.Window
	cfg       learngl.Config
	input     *learngl.InputState
	timer     learngl.FrameTimer
	wireframe bool
}

// Frame is what the render callback gets each iteration.
type Frame struct {
	Input  *learngl.InputState
	Delta  float32 // seconds since the previous frame
	Time   float64 // seconds since GLFW was initialised
	Width  int     // framebuffer size in pixels
	Height int
}

// NewWindow initialises GLFW, opens a window with a core-profile context
// of the configured version and loads the GL function pointers.
// Destroy must be called to release it.
func NewWindow(cfg learngl.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{
		win:   win,
		cfg:   cfg,
		input: learngl.NewInputState(),
	}
	win.SetKeyCallback(w.keyCallback)
	win.SetCloseCallback(w.closeCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	w.setWireframe(cfg.Wireframe)

	learngl.Logger().Info("window created",
		"title", cfg.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
	)
	return w, nil
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}

// Input returns the keyboard state for the current frame.
func (w *Window) Input() *learngl.InputState {
	return w.input
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Wireframe reports whether polygons are drawn as lines.
func (w *Window) Wireframe() bool {
	return w.wireframe
}

func (w *Window) setWireframe(on bool) {
	w.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Clear clears the framebuffer with the configured colour, and the depth
// buffer when depth testing is on.
func (w *Window) Clear() {
	c := w.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if w.cfg.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// Run drives the render loop until Escape is pressed or the window is
// closed, then returns nil. Each iteration handles input, clears, calls
// frame to update uniforms and draw, presents, then polls events. F1
// toggles wireframe. The first error returned by frame stops the loop and
// is returned as is.
func (w *Window) Run(frame func(Frame) error) error {
	for !w.win.ShouldClose() {
		now := glfw.GetTime()
		dt := w.timer.Tick(now)

		if w.input.QuitRequested() {
			learngl.Logger().Debug("render loop stopped", "close", w.input.CloseRequested)
			break
		}
		if w.input.KeyPressed(learngl.KeyF1) {
			w.setWireframe(!w.wireframe)
		}

		w.Clear()
		fbw, fbh := w.win.GetFramebufferSize()
		if err := frame(Frame{Input: w.input, Delta: dt, Time: now, Width: fbw, Height: fbh}); err != nil {
			return err
		}
		w.win.SwapBuffers()

		w.input.Reset()
		glfw.PollEvents()
	}
	return nil
}

// ReadPixel returns the RGBA colour at framebuffer pixel (x, y), with
// (0, 0) at the bottom left. It reads the back buffer, so call it after
// drawing and before SwapBuffers.
func (w *Window) ReadPixel(x, y int) [4]byte {
	var px [4]byte
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return px
}

// Capture reads the whole back buffer into an image with the top row
// first. Like ReadPixel, call it after drawing and before SwapBuffers.
func (w *Window) Capture() *image.RGBA {
	width, height := w.win.GetFramebufferSize()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// OpenGL's origin is the bottom left.
	return transform.FlipV(img)
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.input.CloseRequested = true
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == learngl.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		glLogger.Debug("key pressed", "key", learngl.KeyName(k))
		w.input.SetKey(k, true)
	case glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to the keys the examples handle.
func glfwKeyToKey(key glfw.Key) learngl.Key {
	switch key {
	case glfw.KeyEscape:
		return learngl.KeyEscape
	case glfw.KeyW:
		return learngl.KeyW
	case glfw.KeyA:
		return learngl.KeyA
	case glfw.KeyS:
		return learngl.KeyS
	case glfw.KeyD:
		return learngl.KeyD
	case glfw.KeyUp:
		return learngl.KeyUp
	case glfw.KeyDown:
		return learngl.KeyDown
	case glfw.KeyLeft:
		return learngl.KeyLeft
	case glfw.KeyRight:
		return learngl.KeyRight
	case glfw.KeySpace:
		return learngl.KeySpace
	case glfw.KeyLeftShift:
		return learngl.KeyLeftShift
	case glfw.KeyR:
		return learngl.KeyR
	case glfw.KeyF1:
		return learngl.KeyF1
	default:
		return learngl.KeyNone
	}
}
