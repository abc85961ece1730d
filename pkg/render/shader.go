package render

import (
	"fmt"
	"os"

	"github.com/kjkrol/gokr/internal/driver"
)

// Stage selects which pipeline stage a shader compiles as. Any other GL
// shader stage enumerant can be passed through as well.
type Stage uint32

const (
	VertexStage   Stage = Stage(driver.VertexShader)
	FragmentStage Stage = Stage(driver.FragmentShader)
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%X)", uint32(s))
	}
}

// CompileError is returned when the driver rejects shader source. Log holds
// the compiler diagnostic verbatim.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("render: %s shader compile error: %s", e.Stage, e.Log)
}

// Shader is one compiled pipeline stage. It owns its GL shader object until
// Release; after a successful ShaderProgram link the shader is no longer
// needed and can be released.
type Shader struct {
	handle Handle
	stage  Stage
}

// ShaderFromString compiles source as the given stage. The platform version
// and precision header is prepended first, so sources are written without
// one. A failed compile returns a *CompileError carrying the driver log.
func ShaderFromString(source string, stage Stage) (*Shader, error) {
	id := gfx.CreateShader(driver.Enum(stage))
	if id == 0 {
		return nil, fmt.Errorf("render: cannot create %s shader object", stage)
	}
	gfx.ShaderSource(id, driver.Header+source)
	gfx.CompileShader(id)
	if !gfx.ShaderCompileStatus(id) {
		err := &CompileError{Stage: stage, Log: gfx.ShaderInfoLog(id)}
		gfx.DeleteShader(id)
		return nil, err
	}
	return &Shader{
		handle: newHandle(id, func(id uint32) { gfx.DeleteShader(id) }),
		stage:  stage,
	}, nil
}

// ShaderFromFile reads a source file and compiles it as the given stage.
func ShaderFromFile(path string, stage Stage) (*Shader, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read shader %s: %w", path, err)
	}
	return ShaderFromString(string(source), stage)
}

// Stage returns the pipeline stage the shader was compiled as.
func (s *Shader) Stage() Stage {
	return s.stage
}

// Handle returns the GL shader id for attachment, or zero after Release.
func (s *Shader) Handle() uint32 {
	return s.handle.ID()
}

// Release frees the GL shader exactly once.
func (s *Shader) Release() {
	s.handle.Release()
}
