//go:build !js

package driver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Header is the source prefix prepended to every shader before compilation.
const Header = "#version 330\n"

type functions struct{}

// New loads the GL function pointers of the context current on the calling
// thread and returns the desktop backend.
func New() (Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return functions{}, nil
}

func (functions) CreateShader(stage Enum) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (functions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (functions) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (functions) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (functions) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (functions) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (functions) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (functions) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (functions) VertexAttribPointer(location uint32, size int32, xtype Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(location, size, uint32(xtype), normalized, stride, gl.PtrOffset(offset))
}

func (functions) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (functions) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (functions) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (functions) Uniform3fv(location int32, v [3]float32) {
	gl.Uniform3fv(location, 1, &v[0])
}

func (functions) Uniform4fv(location int32, v [4]float32) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (functions) UniformMatrix3fv(location int32, v [9]float32) {
	gl.UniformMatrix3fv(location, 1, false, &v[0])
}

func (functions) UniformMatrix4fv(location int32, v [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &v[0])
}

func (functions) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (functions) BindBuffer(target Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (functions) BufferData(target Enum, data []float32, usage Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (functions) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (functions) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (functions) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (functions) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (functions) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (functions) ActiveTexture(unit Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (functions) BindTexture(target Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

func (functions) TexImage2D(target Enum, width, height int, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(uint32(target), 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		return
	}
	gl.TexImage2D(uint32(target), 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (functions) TexParameteri(target, pname Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (functions) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (functions) GenFramebuffer() uint32 {
	var framebuffer uint32
	gl.GenFramebuffers(1, &framebuffer)
	return framebuffer
}

func (functions) BindFramebuffer(target Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

func (functions) FramebufferTexture2D(target, attachment, textarget Enum, texture uint32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), texture, 0)
}

func (functions) FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), renderbuffer)
}

func (functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (functions) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (functions) GenRenderbuffer() uint32 {
	var renderbuffer uint32
	gl.GenRenderbuffers(1, &renderbuffer)
	return renderbuffer
}

func (functions) BindRenderbuffer(target Enum, renderbuffer uint32) {
	gl.BindRenderbuffer(uint32(target), renderbuffer)
}

func (functions) RenderbufferStorage(target, format Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(format), int32(width), int32(height))
}

func (functions) DeleteRenderbuffer(renderbuffer uint32) {
	gl.DeleteRenderbuffers(1, &renderbuffer)
}

func (functions) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (functions) Clear(mask Enum) {
	gl.Clear(uint32(mask))
}

func (functions) DrawArrays(mode Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}
