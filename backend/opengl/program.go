// Package opengl holds the OpenGL 4.1 pieces shared by the tutorial
// programs: shader programs, vertex buffers, textures and the GLFW window.
//
// Every function here must be called on the thread that owns the current
// GL context.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

var glLogger = learngl.Logger()

// Shader is a compiled shader stage that has not been linked yet.
type Shader struct {
	id    uint32
	stage learngl.Stage
}

// ID returns the GL shader object name.
func (s Shader) ID() uint32 { return s.id }

// Stage returns which pipeline stage the shader was compiled for.
func (s Shader) Stage() learngl.Stage { return s.stage }

// Delete releases the shader object. Safe to call on a zero Shader.
func (s *Shader) Delete() {
	if s.id != 0 {
		gl.DeleteShader(s.id)
		s.id = 0
	}
}

func glStage(stage learngl.Stage) uint32 {
	if stage == learngl.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CompileShader compiles one stage. Success is decided by the driver's
// compile status, queried right after compiling; there is no retry.
// On failure the shader object is released and a
// *learngl.ShaderCompileError carries the driver log.
func CompileShader(stage learngl.Stage, source string) (Shader, error) {
	id := gl.CreateShader(glStage(stage))
	if id == 0 {
		return Shader{}, fmt.Errorf("create %s shader: %w", stage, glError())
	}
	csource, free := gl.Strs(learngl.CString(source))
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := shaderInfoLog(id)
		gl.DeleteShader(id)
		return Shader{}, &learngl.ShaderCompileError{Stage: stage, Log: msg}
	}
	glLogger.Debug("shader compiled", "stage", stage, "id", id)
	return Shader{id: id, stage: stage}, nil
}

func shaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetShaderInfoLog(id, logLength, nil, &buf[0])
	return trimLog(buf)
}

func programInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetProgramInfoLog(id, logLength, nil, &buf[0])
	return trimLog(buf)
}

// trimLog drops the NUL terminator and trailing newlines of an info log.
func trimLog(buf []byte) string {
	s := gl.GoStr(&buf[0])
	return strings.TrimRight(s, "\r\n")
}

// Program is a linked shader program.
type Program struct {
	id      uint32
	state   learngl.ProgramState
	sources learngl.Sources

	locations map[string]int32
}

// LoadProgram reads, compiles and links the two shader files.
func LoadProgram(vertexPath, fragmentPath string) (*Program, error) {
	src, err := learngl.LoadSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(src)
}

// NewProgram compiles both stages of src and links them.
func NewProgram(src learngl.Sources) (*Program, error) {
	p := &Program{sources: src}
	if err := p.build(); err != nil {
		return nil, err
	}
	return p, nil
}

// build runs the whole compile and link sequence, recording each state.
func (p *Program) build() error {
	p.setState(learngl.ProgramCompiling)
	vs, err := CompileShader(learngl.StageVertex, p.sources.Vertex)
	if err != nil {
		p.setState(learngl.ProgramCompileFailed)
		return p.wrap(learngl.StageVertex, err)
	}
	fs, err := CompileShader(learngl.StageFragment, p.sources.Fragment)
	if err != nil {
		vs.Delete()
		p.setState(learngl.ProgramCompileFailed)
		return p.wrap(learngl.StageFragment, err)
	}
	p.setState(learngl.ProgramCompiled)

	p.setState(learngl.ProgramLinking)
	id, err := link(vs, fs)
	if err != nil {
		p.setState(learngl.ProgramLinkFailed)
		return err
	}
	p.id = id
	p.locations = make(map[string]int32)
	p.setState(learngl.ProgramReady)
	return nil
}

// wrap adds the source path to compile errors of file-backed programs.
// The typed error stays reachable through errors.As.
func (p *Program) wrap(stage learngl.Stage, err error) error {
	if path := p.sources.Path(stage); path != "" {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}

// LinkProgram links two compiled stages into a program. Both shaders are
// released whether linking succeeds or not.
func LinkProgram(vs, fs Shader) (*Program, error) {
	p := &Program{state: learngl.ProgramLinking}
	id, err := link(vs, fs)
	if err != nil {
		p.state = learngl.ProgramLinkFailed
		return nil, err
	}
	p.id = id
	p.locations = make(map[string]int32)
	p.state = learngl.ProgramReady
	return p, nil
}

func link(vs, fs Shader) (uint32, error) {
	defer vs.Delete()
	defer fs.Delete()

	id := gl.CreateProgram()
	if id == 0 {
		return 0, fmt.Errorf("create program: %w", glError())
	}
	gl.AttachShader(id, vs.id)
	gl.AttachShader(id, fs.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := programInfoLog(id)
		gl.DeleteProgram(id)
		return 0, &learngl.ShaderLinkError{Log: msg}
	}

	// Linked programs keep their own copy of the stages.
	gl.DetachShader(id, vs.id)
	gl.DetachShader(id, fs.id)
	glLogger.Debug("program linked", "id", id)
	return id, nil
}

func (p *Program) setState(next learngl.ProgramState) {
	if !p.state.CanTransition(next) {
		glLogger.Warn("unexpected program state change", "from", p.state, "to", next)
	}
	p.state = next
}

// ID returns the GL program name.
func (p *Program) ID() uint32 { return p.id }

// State returns the program's lifecycle state.
func (p *Program) State() learngl.ProgramState { return p.state }

// Sources returns the shader sources the program was built from.
func (p *Program) Sources() learngl.Sources { return p.sources }

// Use makes this the active program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Validate checks whether the program can run with the current GL state.
func (p *Program) Validate() error {
	gl.ValidateProgram(p.id)
	var status int32
	gl.GetProgramiv(p.id, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		return fmt.Errorf("program %d validation failed: %s", p.id, programInfoLog(p.id))
	}
	return nil
}

// UniformLocation returns the location of the named uniform, or
// learngl.UniformNotFound if the program does not declare it.
// Results are cached until the program is reloaded.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc == learngl.UniformNotFound {
		glLogger.Debug("uniform not found", "program", p.id, "name", name)
	}
	if p.locations != nil {
		p.locations[name] = loc
	}
	return loc
}

// HasUniform reports whether the program declares an active uniform name.
func (p *Program) HasUniform(name string) bool {
	return p.UniformLocation(name) != learngl.UniformNotFound
}

// The setters below skip the upload for unknown uniforms and report
// whether the value was sent. The program must be in use.

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) bool {
	loc := p.UniformLocation(name)
	if loc == learngl.UniformNotFound {
		return false
	}
	gl.Uniform1i(loc, v)
	return true
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) bool {
	loc := p.UniformLocation(name)
	if loc == learngl.UniformNotFound {
		return false
	}
	gl.Uniform1f(loc, v)
	return true
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) bool {
	loc := p.UniformLocation(name)
	if loc == learngl.UniformNotFound {
		return false
	}
	gl.Uniform3f(loc, v[0], v[1], v[2])
	return true
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) bool {
	loc := p.UniformLocation(name)
	if loc == learngl.UniformNotFound {
		return false
	}
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return true
}

// SetMat4 sets a mat4 uniform. mgl32 matrices are column-major like GLSL.
func (p *Program) SetMat4(name string, m mgl32.Mat4) bool {
	loc := p.UniformLocation(name)
	if loc == learngl.UniformNotFound {
		return false
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return true
}

// Reload rebuilds the program from its source files. If the new sources
// fail to compile or link, the error is returned and the old program stays
// in use.
func (p *Program) Reload() error {
	if p.sources.VertexPath == "" || p.sources.FragmentPath == "" {
		return fmt.Errorf("program %d was not loaded from files", p.id)
	}
	next, err := LoadProgram(p.sources.VertexPath, p.sources.FragmentPath)
	if err != nil {
		return err
	}
	old := p.id
	p.id = next.id
	p.sources = next.sources
	p.locations = make(map[string]int32)
	if old != 0 {
		gl.DeleteProgram(old)
	}
	glLogger.Info("program reloaded", "old", old, "new", p.id)
	return nil
}

// Delete releases the program. Safe to call more than once.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	p.state = learngl.ProgramUnlinked
}
