package learngl

import "github.com/go-gl/mathgl/mgl32"

// Direction is a camera movement direction relative to where it looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// DefaultCameraSpeed is the movement speed in world units per second.
const DefaultCameraSpeed = 2.5

// Camera is a free-flying look-at camera. It is owned by the render loop
// and passed by pointer to both input handling and drawing, so there is
// exactly one writer per frame.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Speed    float32
}

// NewCamera returns a camera three units back from the origin looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 0, 3},
		Front:    mgl32.Vec3{0, 0, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		Speed:    DefaultCameraSpeed,
	}
}

// Right returns the unit vector pointing to the camera's right.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Move translates the camera in direction d for dt seconds.
func (c *Camera) Move(d Direction, dt float32) {
	step := c.Speed * dt
	switch d {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.Right().Mul(step))
	case Right:
		c.Position = c.Position.Add(c.Right().Mul(step))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(step))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(step))
	}
}

// cameraBindings maps held keys to movement. Opposite keys cancel out.
var cameraBindings = []struct {
	keys [2]Key
	dir  Direction
}{
	{[2]Key{KeyW, KeyUp}, Forward},
	{[2]Key{KeyS, KeyDown}, Backward},
	{[2]Key{KeyA, KeyLeft}, Left},
	{[2]Key{KeyD, KeyRight}, Right},
	{[2]Key{KeySpace, KeyNone}, Up},
	{[2]Key{KeyLeftShift, KeyNone}, Down},
}

// HandleInput moves the camera for every held movement key.
func (c *Camera) HandleInput(in *InputState, dt float32) {
	for _, b := range cameraBindings {
		if in.KeyDown(b.keys[0]) || in.KeyDown(b.keys[1]) {
			c.Move(b.dir, dt)
		}
	}
}

// View returns the view matrix for the camera's current position.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}
