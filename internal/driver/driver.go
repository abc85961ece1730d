// Package driver exposes the subset of the OpenGL API used by pkg/render
// behind a single Functions interface. Two backends exist: a desktop one on
// top of go-gl and a WebGL2 one for js/wasm builds. Tests substitute their
// own recording implementation.
package driver

// Enum is a GL enumerant. WebGL2 shares the numeric values of desktop GL, so
// the constants below are valid on both backends.
type Enum uint32

const (
	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	ArrayBuffer Enum = 0x8892
	StaticDraw  Enum = 0x88E4

	Float        Enum = 0x1406
	UnsignedByte Enum = 0x1401

	Triangles Enum = 0x0004

	Texture2D        Enum = 0x0DE1
	Texture0         Enum = 0x84C0
	RGBA             Enum = 0x1908
	RGBA8            Enum = 0x8058
	TextureMinFilter Enum = 0x2801
	TextureMagFilter Enum = 0x2800
	Nearest          Enum = 0x2600
	Linear           Enum = 0x2601
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	ClampToEdge      Enum = 0x812F

	Framebuffer            Enum = 0x8D40
	Renderbuffer           Enum = 0x8D41
	ColorAttachment0       Enum = 0x8CE0
	DepthStencilAttachment Enum = 0x821A
	Depth24Stencil8        Enum = 0x88F0
	FramebufferComplete    Enum = 0x8CD5

	ColorBufferBit   Enum = 0x4000
	DepthBufferBit   Enum = 0x0100
	StencilBufferBit Enum = 0x0400
)

// Functions is the GL call surface of the rendering core. Object handles are
// uint32 on every backend; zero is never a live handle. Uniform locations use
// the GL convention of -1 for "not found".
type Functions interface {
	CreateShader(stage Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	EnableVertexAttribArray(location uint32)
	VertexAttribPointer(location uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)

	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform3f(location int32, x, y, z float32)
	Uniform3fv(location int32, v [3]float32)
	Uniform4fv(location int32, v [4]float32)
	UniformMatrix3fv(location int32, v [9]float32)
	UniformMatrix4fv(location int32, v [16]float32)

	GenBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []float32, usage Enum)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	GenTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexImage2D(target Enum, width, height int, pixels []byte)
	TexParameteri(target, pname Enum, param int32)
	DeleteTexture(texture uint32)

	GenFramebuffer() uint32
	BindFramebuffer(target Enum, framebuffer uint32)
	FramebufferTexture2D(target, attachment, textarget Enum, texture uint32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	DeleteFramebuffer(framebuffer uint32)

	GenRenderbuffer() uint32
	BindRenderbuffer(target Enum, renderbuffer uint32)
	RenderbufferStorage(target, format Enum, width, height int)
	DeleteRenderbuffer(renderbuffer uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int32)
}
