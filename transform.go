package learngl

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameTimer turns absolute timestamps into per-frame deltas.
type FrameTimer struct {
	last    float64
	started bool
}

// Tick records now (in seconds) and returns the time since the previous
// tick. The first tick returns 0.
func (t *FrameTimer) Tick(now float64) float32 {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	dt := now - t.last
	t.last = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}

// PulseGreen maps time to a green intensity oscillating in [0, 1].
func PulseGreen(seconds float64) float32 {
	// Wrap first: float32 loses sub-second precision after a few hours.
	phase := float32(math.Mod(seconds, 2*math.Pi))
	return (math32.Sin(phase) + 1) / 2
}

// SpinTransform rotates around Z by seconds radians after moving the
// object to the bottom-right quadrant, so it orbits the screen centre.
func SpinTransform(seconds float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(seconds).Mul4(mgl32.Translate3D(0.5, -0.5, 0))
}

// CubePositions are the world positions of the cubes in the camera scene.
var CubePositions = [...]mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

var cubeAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

// CubeModel returns the model matrix for cube i: translated to
// CubePositions[i] and tilted by 20*i degrees.
func CubeModel(i int) mgl32.Mat4 {
	angle := mgl32.DegToRad(20 * float32(i))
	return mgl32.Translate3D(CubePositions[i].Elem()).Mul4(mgl32.HomogRotate3D(angle, cubeAxis))
}

// Perspective returns a 45 degree projection for a framebuffer of the
// given size. A zero width or height is treated as one pixel.
func Perspective(width, height int) mgl32.Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
}
