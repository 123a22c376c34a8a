package learngl

import "testing"

func TestInputStateEdges(t *testing.T) {
	s := NewInputState()

	s.SetKey(KeyW, true)
	if !s.KeyDown(KeyW) || !s.KeyPressed(KeyW) {
		t.Error("expected W down and pressed")
	}

	s.Reset()
	if !s.KeyDown(KeyW) {
		t.Error("held key should survive Reset")
	}
	if s.KeyPressed(KeyW) {
		t.Error("pressed flag should be cleared by Reset")
	}

	// Key repeat from the OS does not count as a new press.
	s.SetKey(KeyW, true)
	if s.KeyPressed(KeyW) {
		t.Error("repeat should not set pressed")
	}

	s.SetKey(KeyW, false)
	if s.KeyDown(KeyW) || s.KeyPressed(KeyW) {
		t.Error("expected W released")
	}

	s.SetKey(KeyW, true)
	if !s.KeyPressed(KeyW) {
		t.Error("press after release should set pressed")
	}
}

func TestInputStateBounds(t *testing.T) {
	s := NewInputState()
	s.SetKey(KeyNone, true)
	s.SetKey(KeyCount, true)
	s.SetKey(Key(-1), true)
	if s.KeyDown(KeyNone) || s.KeyDown(KeyCount) || s.KeyPressed(Key(-1)) {
		t.Error("out of range keys must be ignored")
	}
}

func TestQuitRequested(t *testing.T) {
	s := NewInputState()
	if s.QuitRequested() {
		t.Fatal("fresh state should not request quit")
	}
	s.SetKey(KeyEscape, true)
	if !s.QuitRequested() {
		t.Error("Escape should request quit")
	}

	s = NewInputState()
	s.CloseRequested = true
	if !s.QuitRequested() {
		t.Error("close request should request quit")
	}
	s.Reset()
	if s.QuitRequested() {
		t.Error("Reset should clear the close request")
	}
}

func TestKeyName(t *testing.T) {
	for k := KeyNone; k < KeyCount; k++ {
		if KeyName(k) == "" {
			t.Errorf("key %d has no name", k)
		}
	}
	if KeyName(KeyCount) != "?" {
		t.Errorf("expected ? for out of range key, got %q", KeyName(KeyCount))
	}
}
