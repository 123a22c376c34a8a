package learngl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestShaderErrors(t *testing.T) {
	var err error = fmt.Errorf("shaders/shader.fs: %w", &ShaderCompileError{Stage: StageFragment, Log: "0:3(1): error: syntax error"})

	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatal("expected wrapped ShaderCompileError")
	}
	if compileErr.Stage != StageFragment {
		t.Errorf("expected fragment stage, got %s", compileErr.Stage)
	}
	if !strings.Contains(err.Error(), "fragment shader compilation failed: 0:3(1): error: syntax error") {
		t.Errorf("diagnostic should be surfaced verbatim: %q", err.Error())
	}

	var linkErr *ShaderLinkError
	if errors.As(err, &linkErr) {
		t.Error("compile error must not match ShaderLinkError")
	}

	err = &ShaderLinkError{Log: "error: vertex shader lacks `main'"}
	if !errors.As(err, &linkErr) {
		t.Fatal("expected ShaderLinkError")
	}
	if !strings.HasSuffix(err.Error(), "lacks `main'") {
		t.Errorf("unexpected link error text %q", err.Error())
	}
}

func TestStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", StageVertex, StageFragment)
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("unexpected unknown stage name %q", got)
	}
}

func TestProgramStateTransitions(t *testing.T) {
	// The happy path and both failure branches.
	paths := [][]ProgramState{
		{ProgramUnlinked, ProgramCompiling, ProgramCompiled, ProgramLinking, ProgramReady},
		{ProgramUnlinked, ProgramCompiling, ProgramCompileFailed},
		{ProgramUnlinked, ProgramCompiling, ProgramCompiled, ProgramLinking, ProgramLinkFailed},
	}
	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			if !path[i-1].CanTransition(path[i]) {
				t.Errorf("expected %s -> %s to be allowed", path[i-1], path[i])
			}
		}
	}

	illegal := [][2]ProgramState{
		{ProgramUnlinked, ProgramReady},
		{ProgramCompiling, ProgramLinking},
		{ProgramCompileFailed, ProgramLinking},
		{ProgramLinkFailed, ProgramReady},
		{ProgramCompiled, ProgramReady},
	}
	for _, tr := range illegal {
		if tr[0].CanTransition(tr[1]) {
			t.Errorf("expected %s -> %s to be rejected", tr[0], tr[1])
		}
	}

	if !ProgramCompileFailed.Failed() || !ProgramLinkFailed.Failed() || ProgramReady.Failed() {
		t.Error("Failed() should be true only for failure states")
	}
	if ProgramState(42).String() != "unknown" {
		t.Errorf("unexpected name for invalid state: %s", ProgramState(42))
	}
}
