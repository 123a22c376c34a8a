package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
)

// TextureOptions controls sampling of a 2D texture.
type TextureOptions struct {
	Wrap      int32 // gl.REPEAT when zero
	MinFilter int32 // gl.LINEAR_MIPMAP_LINEAR when zero
	MagFilter int32 // gl.LINEAR when zero
	NoMipmaps bool
}

func (o TextureOptions) withDefaults() TextureOptions {
	if o.Wrap == 0 {
		o.Wrap = gl.REPEAT
	}
	if o.MinFilter == 0 {
		if o.NoMipmaps {
			o.MinFilter = gl.LINEAR
		} else {
			o.MinFilter = gl.LINEAR_MIPMAP_LINEAR
		}
	}
	if o.MagFilter == 0 {
		o.MagFilter = gl.LINEAR
	}
	return o
}

// Texture is a 2D texture object.
type Texture struct {
	id            uint32
	width, height int
}

// NewTexture uploads img as an RGBA 2D texture.
func NewTexture(img *learngl.Image, opts TextureOptions) (*Texture, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, errors.New("texture: empty image")
	}
	if img.Channels != 4 || len(img.Pix) != img.Width*img.Height*4 {
		return nil, fmt.Errorf("texture: want %d RGBA bytes, got %d bytes with %d channels",
			img.Width*img.Height*4, len(img.Pix), img.Channels)
	}
	opts = opts.withDefaults()

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("gen texture: %w", errors.Join(errZeroName, glError()))
	}
	t := &Texture{id: id, width: img.Width, height: img.Height}

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	// Rows are tightly packed RGBA.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if !opts.NoMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := checkGL("texture upload"); err != nil {
		t.Delete()
		return nil, err
	}
	glLogger.Debug("texture created", "id", id, "width", img.Width, "height", img.Height)
	return t, nil
}

// LoadTexture decodes the image file at path and uploads it.
func LoadTexture(path string, flip bool, opts TextureOptions) (*Texture, error) {
	img, err := learngl.LoadImage(path, learngl.ImageOptions{FlipVertically: flip})
	if err != nil {
		return nil, err
	}
	t, err := NewTexture(img, opts)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return t, nil
}

// ID returns the GL name.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Bind binds the texture to texture unit n.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Delete releases the texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
