package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokr/internal/driver"
)

// locationNotFound is the GL sentinel for a missing uniform or attribute.
// Uniform uploads against it are ignored by the driver.
const locationNotFound = -1

// LinkError is returned when the driver rejects a program link. Log holds the
// linker diagnostic verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("render: program link error: %s", e.Log)
}

// ShaderProgram links compiled shaders into an executable pipeline and
// resolves uniform and attribute locations by name. Uniform locations are
// cached per program, misses included; attribute locations are re-queried on
// every call, since attribute setup happens once per draw rather than in a
// hot update loop.
//
// A program that never linked successfully stays inert: Use binds program
// zero, which the backend treats as a no-op pipeline.
type ShaderProgram struct {
	handle   Handle
	uniforms map[string]int32
}

func NewShaderProgram() *ShaderProgram {
	return &ShaderProgram{uniforms: make(map[string]int32)}
}

// AddShader attaches a compiled shader, creating the program object on the
// first call. At least a vertex and a fragment shader are needed before Link.
func (p *ShaderProgram) AddShader(shader *Shader) {
	if !p.handle.Valid() {
		id := gfx.CreateProgram()
		if id == 0 {
			slog.Error("render: cannot create shader program object")
			return
		}
		p.handle = newHandle(id, func(id uint32) { gfx.DeleteProgram(id) })
	}
	gfx.AttachShader(p.handle.ID(), shader.Handle())
}

// Link links the attached shaders. On failure the program is left inert and a
// *LinkError carrying the driver log is returned.
func (p *ShaderProgram) Link() error {
	if !p.handle.Valid() {
		return errors.New("render: link without attached shaders")
	}
	gfx.LinkProgram(p.handle.ID())
	if !gfx.ProgramLinkStatus(p.handle.ID()) {
		err := &LinkError{Log: gfx.ProgramInfoLog(p.handle.ID())}
		slog.Error("render: program link failed", "log", err.Log)
		return err
	}
	return nil
}

// Uniform resolves a uniform location by name. The first lookup per name
// queries the driver; the result, a miss sentinel included, is cached for the
// lifetime of the program.
func (p *ShaderProgram) Uniform(name string) int32 {
	if location, ok := p.uniforms[name]; ok {
		return location
	}
	location := gfx.GetUniformLocation(p.handle.ID(), name)
	if location < 0 {
		location = locationNotFound
		slog.Warn("render: uniform not found in program", "name", name)
	}
	p.uniforms[name] = location
	return location
}

// Attribute resolves an attribute location by name, querying the driver every
// time.
func (p *ShaderProgram) Attribute(name string) int32 {
	location := gfx.GetAttribLocation(p.handle.ID(), name)
	if location < 0 {
		slog.Warn("render: attribute not found in program", "name", name)
		return locationNotFound
	}
	return location
}

// SetAttribute points a float vertex attribute into the currently bound
// vertex buffer. size is the component count, stride and offset are in bytes.
func (p *ShaderProgram) SetAttribute(name string, size, stride, offset int32) {
	p.SetAttributeTyped(name, size, stride, offset, false, driver.Float)
}

// SetAttributeNormalized is SetAttribute with integer normalization enabled.
func (p *ShaderProgram) SetAttributeNormalized(name string, size, stride, offset int32) {
	p.SetAttributeTyped(name, size, stride, offset, true, driver.Float)
}

// SetAttributeTyped configures a vertex attribute pointer with an explicit
// element type.
func (p *ShaderProgram) SetAttributeTyped(name string, size, stride, offset int32, normalized bool, xtype driver.Enum) {
	location := p.Attribute(name)
	if location < 0 {
		return
	}
	gfx.EnableVertexAttribArray(uint32(location))
	gfx.VertexAttribPointer(uint32(location), size, xtype, normalized, stride, int(offset))
}

// SetUniformFloat assigns a scalar float uniform.
func (p *ShaderProgram) SetUniformFloat(name string, v float32) {
	gfx.Uniform1f(p.Uniform(name), v)
}

// SetUniformInt assigns a scalar int uniform, sampler bindings included.
func (p *ShaderProgram) SetUniformInt(name string, v int32) {
	gfx.Uniform1i(p.Uniform(name), v)
}

// SetUniform3f assigns a vec3 uniform from components.
func (p *ShaderProgram) SetUniform3f(name string, x, y, z float32) {
	gfx.Uniform3f(p.Uniform(name), x, y, z)
}

// SetUniformVec3 assigns a vec3 uniform.
func (p *ShaderProgram) SetUniformVec3(name string, v mgl32.Vec3) {
	gfx.Uniform3fv(p.Uniform(name), v)
}

// SetUniformVec4 assigns a vec4 uniform.
func (p *ShaderProgram) SetUniformVec4(name string, v mgl32.Vec4) {
	gfx.Uniform4fv(p.Uniform(name), v)
}

// SetUniformMat3 assigns a mat3 uniform, column major.
func (p *ShaderProgram) SetUniformMat3(name string, m mgl32.Mat3) {
	gfx.UniformMatrix3fv(p.Uniform(name), m)
}

// SetUniformMat4 assigns a mat4 uniform, column major.
func (p *ShaderProgram) SetUniformMat4(name string, m mgl32.Mat4) {
	gfx.UniformMatrix4fv(p.Uniform(name), m)
}

// Use binds the program as the active pipeline. On a never-linked program
// this binds program zero.
func (p *ShaderProgram) Use() {
	gfx.UseProgram(p.handle.ID())
}

// Unuse unbinds any active program.
func (p *ShaderProgram) Unuse() {
	gfx.UseProgram(0)
}

// Handle returns the GL program id, or zero for an inert program.
func (p *ShaderProgram) Handle() uint32 {
	return p.handle.ID()
}

// Release frees the GL program exactly once. The uniform cache dies with it.
func (p *ShaderProgram) Release() {
	p.handle.Release()
	p.uniforms = make(map[string]int32)
}
