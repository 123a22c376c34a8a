// Package demo holds the start-up code shared by the example programs:
// command line flags, window creation, shader and texture loading, and
// shader hot reload.
package demo

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

//go:embed textures
var textures embed.FS

// Shader paths inside each example's embedded file system.
const (
	VertexShader   = "shaders/shader.vs"
	FragmentShader = "shaders/shader.fs"
)

// Options are the flags every example accepts.
type Options struct {
	Config   string
	Vertex   string
	Fragment string
	Verbose  bool
	Watch    bool
}

// RegisterFlags adds the common flags to set.
func (o *Options) RegisterFlags(set *flag.FlagSet) {
	set.StringVar(&o.Config, "config", "", "TOML file with window settings")
	set.StringVar(&o.Vertex, "vs", "", "vertex shader file (default: built-in)")
	set.StringVar(&o.Fragment, "fs", "", "fragment shader file (default: built-in)")
	set.BoolVar(&o.Verbose, "v", false, "enable debug logging")
	set.BoolVar(&o.Watch, "watch", false, "relink the program when -vs or -fs change on disk")
}

// ParseFlags registers the common flags on the default flag set and parses
// the command line. Examples with extra flags define them first.
func ParseFlags() Options {
	var o Options
	o.RegisterFlags(flag.CommandLine)
	flag.Parse()
	return o
}

// Validate checks flag combinations.
func (o Options) Validate() error {
	if (o.Vertex == "") != (o.Fragment == "") {
		return errors.New("-vs and -fs must be given together")
	}
	if o.Watch && o.Vertex == "" {
		return errors.New("-watch needs -vs and -fs")
	}
	return nil
}

// FromFiles reports whether shaders come from disk rather than the binary.
func (o Options) FromFiles() bool {
	return o.Vertex != ""
}

// Settings loads the config file and applies the flags on top. title
// replaces the default window title; a title set in the file wins.
func Settings(o Options, title string) (learngl.Config, error) {
	if err := o.Validate(); err != nil {
		return learngl.Config{}, err
	}
	cfg, err := learngl.LoadConfig(o.Config)
	if err != nil {
		return cfg, err
	}
	if cfg.Title == learngl.DefaultConfig().Title {
		cfg.Title = title
	}
	if o.Verbose {
		cfg.Verbose = true
	}
	learngl.SetVerbose(cfg.Verbose)
	return cfg, nil
}

// Program builds the example's shader program, from -vs/-fs when given and
// from the embedded sources otherwise.
func Program(o Options, embedded fs.FS) (*opengl.Program, error) {
	if o.FromFiles() {
		return opengl.LoadProgram(o.Vertex, o.Fragment)
	}
	src, err := learngl.LoadSourcesFS(embedded, VertexShader, FragmentShader)
	if err != nil {
		return nil, err
	}
	return opengl.NewProgram(src)
}

// Texture uploads one of the bundled images, flipped so that texture
// coordinate (0, 0) is the bottom left of the picture.
func Texture(name string) (*opengl.Texture, error) {
	img, err := learngl.LoadImageFS(textures, "textures/"+name, learngl.ImageOptions{FlipVertically: true})
	if err != nil {
		return nil, err
	}
	t, err := opengl.NewTexture(img, opengl.TextureOptions{})
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	return t, nil
}

// TextureFile uploads path if set and the bundled image name otherwise.
func TextureFile(path, name string) (*opengl.Texture, error) {
	if path == "" {
		return Texture(name)
	}
	return opengl.LoadTexture(path, true, opengl.TextureOptions{})
}
