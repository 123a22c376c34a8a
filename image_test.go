package learngl_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-theft-auto/learngl"
)

// twoRowPNG encodes a 2x2 image: red row on top, blue row at the bottom.
func twoRowPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
		img.Set(x, 1, color.NRGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	data := twoRowPNG(t)
	red := [4]byte{255, 0, 0, 255}
	blue := [4]byte{0, 0, 255, 255}

	img, err := learngl.DecodeImage(bytes.NewReader(data), learngl.ImageOptions{})
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Width != 2 || img.Height != 2 || img.Channels != 4 || len(img.Pix) != 16 {
		t.Fatalf("unexpected image %dx%d channels=%d len=%d", img.Width, img.Height, img.Channels, len(img.Pix))
	}
	if img.At(0, 0) != red || img.At(1, 1) != blue {
		t.Errorf("unflipped: expected red first row, got %v / %v", img.At(0, 0), img.At(1, 1))
	}

	flipped, err := learngl.DecodeImage(bytes.NewReader(data), learngl.ImageOptions{FlipVertically: true})
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if flipped.At(0, 0) != blue || flipped.At(1, 1) != red {
		t.Errorf("flipped: expected blue first row, got %v / %v", flipped.At(0, 0), flipped.At(1, 1))
	}
}

func TestDecodeImageTranslucent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	src.SetNRGBA(0, 1, color.NRGBA{G: 200, B: 100, A: 1})
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	want := func(x, y int) [4]byte {
		c := src.NRGBAAt(x, y)
		return [4]byte{c.R, c.G, c.B, c.A}
	}
	for _, flip := range []bool{false, true} {
		img, err := learngl.DecodeImage(bytes.NewReader(data), learngl.ImageOptions{FlipVertically: flip})
		if err != nil {
			t.Fatalf("DecodeImage(flip=%v): %v", flip, err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				sy := y
				if flip {
					sy = 1 - y
				}
				if got := img.At(x, y); got != want(x, sy) {
					t.Errorf("flip=%v pixel (%d,%d): got %v, want %v", flip, x, y, got, want(x, sy))
				}
			}
		}
	}
}

func TestDecodeImageSubImage(t *testing.T) {
	// Bounds not starting at the origin must still come out tightly packed.
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(2, 2, color.RGBA{G: 255, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	var buf bytes.Buffer
	if err := png.Encode(&buf, sub); err != nil {
		t.Fatal(err)
	}
	img, err := learngl.DecodeImage(&buf, learngl.ImageOptions{})
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Width != 2 || len(img.Pix) != 16 {
		t.Fatalf("unexpected size %dx%d", img.Width, img.Height)
	}
	if img.At(0, 0) != [4]byte{0, 255, 0, 255} {
		t.Errorf("expected green top-left, got %v", img.At(0, 0))
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "container.jpg")
	_, err := learngl.LoadImage(missing, learngl.ImageOptions{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "container.jpg") {
		t.Errorf("error should name the path: %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := learngl.LoadImage(garbage, learngl.ImageOptions{}); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	if err := os.WriteFile(path, twoRowPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := learngl.LoadImage(path, learngl.ImageOptions{FlipVertically: true})
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.At(0, 0) != [4]byte{0, 0, 255, 255} {
		t.Errorf("expected flipped image, got %v", img.At(0, 0))
	}
}

func TestLoadImageFS(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/face.png": &fstest.MapFile{Data: twoRowPNG(t)},
	}
	img, err := learngl.LoadImageFS(fsys, "textures/face.png", learngl.ImageOptions{})
	if err != nil {
		t.Fatalf("LoadImageFS: %v", err)
	}
	if img.At(0, 0) != [4]byte{255, 0, 0, 255} {
		t.Errorf("expected red top-left, got %v", img.At(0, 0))
	}

	_, err = learngl.LoadImageFS(fsys, "textures/missing.png", learngl.ImageOptions{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
