package learngl

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Image is a decoded texture image: tightly packed, non-premultiplied RGBA
// rows, first row first. With FlipVertically the first row is the bottom of the picture,
// which is what OpenGL expects for texture coordinate (0, 0).
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// ImageOptions controls decoding.
type ImageOptions struct {
	FlipVertically bool
}

// LoadImage decodes the image file at path.
// The error names the path that failed.
func LoadImage(path string, opts ImageOptions) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}
	defer f.Close()
	return decodeFile(f, path, opts)
}

// LoadImageFS is LoadImage for an fs.FS, such as an embed.FS.
func LoadImageFS(fsys fs.FS, name string, opts ImageOptions) (*Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", name, err)
	}
	defer f.Close()
	return decodeFile(f, name, opts)
}

func decodeFile(r io.Reader, path string, opts ImageOptions) (*Image, error) {
	img, err := DecodeImage(r, opts)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}
	logger.Debug("image loaded", "path", path, "width", img.Width, "height", img.Height)
	return img, nil
}

// DecodeImage decodes any registered image format into non-premultiplied
// RGBA pixels. Colour channels of translucent pixels keep their stored
// values.
func DecodeImage(r io.Reader, opts ImageOptions) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode %s: empty image", format)
	}

	var nrgba *image.NRGBA
	if opts.FlipVertically {
		nrgba = imaging.FlipV(src)
	} else {
		nrgba = imaging.Clone(src)
	}
	return &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Pix:      packRows(nrgba),
	}, nil
}

// packRows returns the pixel bytes without any row padding.
func packRows(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowLen := w * 4
	if img.Stride == rowLen && len(img.Pix) == rowLen*h {
		return img.Pix
	}
	out := make([]byte, 0, rowLen*h)
	for y := 0; y < h; y++ {
		start := y * img.Stride
		out = append(out, img.Pix[start:start+rowLen]...)
	}
	return out
}

// At returns the RGBA bytes of the pixel at column x of row y.
func (img *Image) At(x, y int) [4]byte {
	i := (y*img.Width + x) * img.Channels
	var px [4]byte
	copy(px[:], img.Pix[i:i+img.Channels])
	return px
}
