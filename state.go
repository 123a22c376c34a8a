package learngl

// ProgramState tracks where a shader program is in its lifecycle.
//
//	Unlinked -> Compiling -> {CompileFailed | Compiled} -> Linking -> {LinkFailed | Ready}
//
// Only Ready programs may be used for drawing or queried for uniforms.
type ProgramState int

const (
	ProgramUnlinked ProgramState = iota
	ProgramCompiling
	ProgramCompileFailed
	ProgramCompiled
	ProgramLinking
	ProgramLinkFailed
	ProgramReady
)

var programStateNames = [...]string{
	ProgramUnlinked:      "unlinked",
	ProgramCompiling:     "compiling",
	ProgramCompileFailed: "compile-failed",
	ProgramCompiled:      "compiled",
	ProgramLinking:       "linking",
	ProgramLinkFailed:    "link-failed",
	ProgramReady:         "ready",
}

func (s ProgramState) String() string {
	if s < 0 || int(s) >= len(programStateNames) {
		return "unknown"
	}
	return programStateNames[s]
}

// Failed reports whether the state is a terminal failure.
func (s ProgramState) Failed() bool {
	return s == ProgramCompileFailed || s == ProgramLinkFailed
}

// CanTransition reports whether moving from s to next is a legal step.
// A failed or ready program may restart at Compiling when it is reloaded.
func (s ProgramState) CanTransition(next ProgramState) bool {
	switch s {
	case ProgramUnlinked:
		return next == ProgramCompiling
	case ProgramCompiling:
		return next == ProgramCompileFailed || next == ProgramCompiled
	case ProgramCompiled:
		return next == ProgramLinking
	case ProgramLinking:
		return next == ProgramLinkFailed || next == ProgramReady
	case ProgramCompileFailed, ProgramLinkFailed, ProgramReady:
		return next == ProgramCompiling
	}
	return false
}

// UniformNotFound is the location returned for uniforms the linked
// program does not declare (or that the driver optimised away).
const UniformNotFound int32 = -1
