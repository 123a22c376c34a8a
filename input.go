package learngl

// Key represents a keyboard key the examples react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLeftShift
	KeyR
	KeyF1
	KeyCount
)

// InputState holds keyboard state for the current frame.
// It is populated by the window backend and read by the frame logic,
// which keeps camera and toggle handling free of any windowing library.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed

	// Set by the window's close callback, cleared by Reset.
	CloseRequested bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.CloseRequested = false
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// QuitRequested reports whether the frame should end the render loop,
// either because Escape was pressed or the window was asked to close.
func (s *InputState) QuitRequested() bool {
	return s.CloseRequested || s.KeyDown(KeyEscape)
}

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyEscape:    "Esc",
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeySpace:     "Space",
	KeyLeftShift: "LShift",
	KeyR:         "R",
	KeyF1:        "F1",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}
