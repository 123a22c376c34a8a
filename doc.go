/*
Package learngl holds the GL-independent pieces of a set of small OpenGL
tutorial programs: shader sources and their errors, vertex layouts, the
tutorial geometry, keyboard state, a free-flying camera, textures decoded
to RGBA, window settings and shader hot reload.

Everything that talks to the driver lives in backend/opengl. The example
programs under example/ combine the two.

# Quick Start

	cfg, _ := learngl.LoadConfig("")
	win, _ := opengl.NewWindow(cfg)
	defer win.Destroy()

	program, _ := opengl.LoadProgram("shaders/shader.vs", "shaders/shader.fs")
	defer program.Delete()

	quad, _ := opengl.NewMesh(learngl.Quad, learngl.QuadIndices, learngl.LayoutTextured)
	defer quad.Delete()

	win.Run(func(f opengl.Frame) error {
	    program.Use()
	    quad.Draw()
	    return nil
	})

# Shader Programs

A program moves through ProgramState values:

	Unlinked -> Compiling -> CompileFailed | Compiled -> Linking -> LinkFailed | Ready

Compile failures are returned as *ShaderCompileError, naming the stage and
carrying the driver log; link failures as *ShaderLinkError. Match them with
errors.As. Uniform lookups return UniformNotFound for names the program
does not declare.

# Vertex Layouts

A VertexLayout lists the attributes of one interleaved vertex. LayoutOf
derives it from a Go struct, taking offsets from the compiler's layout and
rejecting structs with padding, so the layout always matches the bytes
uploaded:

	type Vertex struct {
	    Position [3]float32 // location 0, offset 0
	    Color    [3]float32 // location 1, offset 12
	    TexCoord [2]float32 // location 2, offset 24
	}

Packed builds a layout from formats for flat []float32 data.

# Logging

The package logs through log/slog at Info level. SetVerbose(true) enables
Debug output from here and from backend/opengl.
*/
package learngl
