package learngl

import "fmt"

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name as it appears in error messages.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ShaderCompileError is returned when the driver rejects a shader stage.
// Log holds the driver info log verbatim.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// ShaderLinkError is returned when the driver fails to link a program.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "shader program linking failed: " + e.Log
}
