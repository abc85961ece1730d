package render

import (
	"testing"

	"github.com/kjkrol/gokr/internal/driver"
)

// stubDriver records every GL call so tests can assert on call counts,
// uploaded data and release behavior without a live context. Object ids come
// from one shared counter, so an id identifies its object across kinds.
type stubDriver struct {
	calls  map[string]int
	nextID uint32

	shaderSources map[uint32]string
	compileOK     bool
	linkOK        bool
	shaderLog     string
	programLog    string
	fbStatus      driver.Enum

	uniformLocations map[string]int32
	attribLocations  map[string]int32

	deleted map[uint32]int

	boundBuffer uint32
	bufferData  map[uint32][]float32

	usedPrograms    []uint32
	enabledAttribs  []uint32
	attribPointers  []attribPointerCall
	uniformSets     []uniformSetCall
	boundTextures   []uint32
	activeUnits     []driver.Enum
	boundFBOs       []uint32
	texImageSizes   [][2]int
	rbStorageSizes  [][2]int
	viewports       [][4]int32
	clearColors     [][4]float32
	clearMasks      []driver.Enum
	drawCalls       [][3]int32
	boundVertArrays []uint32
}

var _ driver.Functions = (*stubDriver)(nil)

type attribPointerCall struct {
	location   uint32
	size       int32
	xtype      driver.Enum
	normalized bool
	stride     int32
	offset     int
}

type uniformSetCall struct {
	location int32
	kind     string
	values   []float32
}

func newStubDriver() *stubDriver {
	return &stubDriver{
		calls:            make(map[string]int),
		shaderSources:    make(map[uint32]string),
		compileOK:        true,
		linkOK:           true,
		fbStatus:         driver.FramebufferComplete,
		uniformLocations: make(map[string]int32),
		attribLocations:  make(map[string]int32),
		deleted:          make(map[uint32]int),
		bufferData:       make(map[uint32][]float32),
	}
}

// installStub swaps the package driver for a fresh stub for one test.
func installStub(t *testing.T) *stubDriver {
	t.Helper()
	s := newStubDriver()
	prev := gfx
	gfx = s
	t.Cleanup(func() { gfx = prev })
	return s
}

func (s *stubDriver) count(name string) {
	s.calls[name]++
}

func (s *stubDriver) gen() uint32 {
	s.nextID++
	return s.nextID
}

func (s *stubDriver) CreateShader(stage driver.Enum) uint32 {
	s.count("CreateShader")
	return s.gen()
}

func (s *stubDriver) ShaderSource(shader uint32, source string) {
	s.count("ShaderSource")
	s.shaderSources[shader] = source
}

func (s *stubDriver) CompileShader(shader uint32) {
	s.count("CompileShader")
}

func (s *stubDriver) ShaderCompileStatus(shader uint32) bool {
	s.count("ShaderCompileStatus")
	return s.compileOK
}

func (s *stubDriver) ShaderInfoLog(shader uint32) string {
	return s.shaderLog
}

func (s *stubDriver) DeleteShader(shader uint32) {
	s.count("DeleteShader")
	s.deleted[shader]++
}

func (s *stubDriver) CreateProgram() uint32 {
	s.count("CreateProgram")
	return s.gen()
}

func (s *stubDriver) AttachShader(program, shader uint32) {
	s.count("AttachShader")
}

func (s *stubDriver) LinkProgram(program uint32) {
	s.count("LinkProgram")
}

func (s *stubDriver) ProgramLinkStatus(program uint32) bool {
	s.count("ProgramLinkStatus")
	return s.linkOK
}

func (s *stubDriver) ProgramInfoLog(program uint32) string {
	return s.programLog
}

func (s *stubDriver) DeleteProgram(program uint32) {
	s.count("DeleteProgram")
	s.deleted[program]++
}

func (s *stubDriver) UseProgram(program uint32) {
	s.count("UseProgram")
	s.usedPrograms = append(s.usedPrograms, program)
}

func (s *stubDriver) GetUniformLocation(program uint32, name string) int32 {
	s.count("GetUniformLocation")
	if location, ok := s.uniformLocations[name]; ok {
		return location
	}
	return -1
}

func (s *stubDriver) GetAttribLocation(program uint32, name string) int32 {
	s.count("GetAttribLocation")
	if location, ok := s.attribLocations[name]; ok {
		return location
	}
	return -1
}

func (s *stubDriver) EnableVertexAttribArray(location uint32) {
	s.count("EnableVertexAttribArray")
	s.enabledAttribs = append(s.enabledAttribs, location)
}

func (s *stubDriver) VertexAttribPointer(location uint32, size int32, xtype driver.Enum, normalized bool, stride int32, offset int) {
	s.count("VertexAttribPointer")
	s.attribPointers = append(s.attribPointers, attribPointerCall{
		location:   location,
		size:       size,
		xtype:      xtype,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
	})
}

func (s *stubDriver) Uniform1f(location int32, v float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "1f", []float32{v}})
}

func (s *stubDriver) Uniform1i(location int32, v int32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "1i", []float32{float32(v)}})
}

func (s *stubDriver) Uniform3f(location int32, x, y, z float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "3f", []float32{x, y, z}})
}

func (s *stubDriver) Uniform3fv(location int32, v [3]float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "3fv", v[:]})
}

func (s *stubDriver) Uniform4fv(location int32, v [4]float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "4fv", v[:]})
}

func (s *stubDriver) UniformMatrix3fv(location int32, v [9]float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "mat3", v[:]})
}

func (s *stubDriver) UniformMatrix4fv(location int32, v [16]float32) {
	s.uniformSets = append(s.uniformSets, uniformSetCall{location, "mat4", v[:]})
}

func (s *stubDriver) GenBuffer() uint32 {
	s.count("GenBuffer")
	return s.gen()
}

func (s *stubDriver) BindBuffer(target driver.Enum, buffer uint32) {
	s.count("BindBuffer")
	s.boundBuffer = buffer
}

func (s *stubDriver) BufferData(target driver.Enum, data []float32, usage driver.Enum) {
	s.count("BufferData")
	s.bufferData[s.boundBuffer] = append([]float32(nil), data...)
}

func (s *stubDriver) DeleteBuffer(buffer uint32) {
	s.count("DeleteBuffer")
	s.deleted[buffer]++
}

func (s *stubDriver) GenVertexArray() uint32 {
	s.count("GenVertexArray")
	return s.gen()
}

func (s *stubDriver) BindVertexArray(array uint32) {
	s.count("BindVertexArray")
	s.boundVertArrays = append(s.boundVertArrays, array)
}

func (s *stubDriver) DeleteVertexArray(array uint32) {
	s.count("DeleteVertexArray")
	s.deleted[array]++
}

func (s *stubDriver) GenTexture() uint32 {
	s.count("GenTexture")
	return s.gen()
}

func (s *stubDriver) ActiveTexture(unit driver.Enum) {
	s.count("ActiveTexture")
	s.activeUnits = append(s.activeUnits, unit)
}

func (s *stubDriver) BindTexture(target driver.Enum, texture uint32) {
	s.count("BindTexture")
	s.boundTextures = append(s.boundTextures, texture)
}

func (s *stubDriver) TexImage2D(target driver.Enum, width, height int, pixels []byte) {
	s.count("TexImage2D")
	s.texImageSizes = append(s.texImageSizes, [2]int{width, height})
}

func (s *stubDriver) TexParameteri(target, pname driver.Enum, param int32) {
	s.count("TexParameteri")
}

func (s *stubDriver) DeleteTexture(texture uint32) {
	s.count("DeleteTexture")
	s.deleted[texture]++
}

func (s *stubDriver) GenFramebuffer() uint32 {
	s.count("GenFramebuffer")
	return s.gen()
}

func (s *stubDriver) BindFramebuffer(target driver.Enum, framebuffer uint32) {
	s.count("BindFramebuffer")
	s.boundFBOs = append(s.boundFBOs, framebuffer)
}

func (s *stubDriver) FramebufferTexture2D(target, attachment, textarget driver.Enum, texture uint32) {
	s.count("FramebufferTexture2D")
}

func (s *stubDriver) FramebufferRenderbuffer(target, attachment, rbTarget driver.Enum, renderbuffer uint32) {
	s.count("FramebufferRenderbuffer")
}

func (s *stubDriver) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	s.count("CheckFramebufferStatus")
	return s.fbStatus
}

func (s *stubDriver) DeleteFramebuffer(framebuffer uint32) {
	s.count("DeleteFramebuffer")
	s.deleted[framebuffer]++
}

func (s *stubDriver) GenRenderbuffer() uint32 {
	s.count("GenRenderbuffer")
	return s.gen()
}

func (s *stubDriver) BindRenderbuffer(target driver.Enum, renderbuffer uint32) {
	s.count("BindRenderbuffer")
}

func (s *stubDriver) RenderbufferStorage(target, format driver.Enum, width, height int) {
	s.count("RenderbufferStorage")
	s.rbStorageSizes = append(s.rbStorageSizes, [2]int{width, height})
}

func (s *stubDriver) DeleteRenderbuffer(renderbuffer uint32) {
	s.count("DeleteRenderbuffer")
	s.deleted[renderbuffer]++
}

func (s *stubDriver) Viewport(x, y, width, height int32) {
	s.count("Viewport")
	s.viewports = append(s.viewports, [4]int32{x, y, width, height})
}

func (s *stubDriver) ClearColor(r, g, b, a float32) {
	s.count("ClearColor")
	s.clearColors = append(s.clearColors, [4]float32{r, g, b, a})
}

func (s *stubDriver) Clear(mask driver.Enum) {
	s.count("Clear")
	s.clearMasks = append(s.clearMasks, mask)
}

func (s *stubDriver) DrawArrays(mode driver.Enum, first, count int32) {
	s.count("DrawArrays")
	s.drawCalls = append(s.drawCalls, [3]int32{int32(mode), first, count})
}
