//go:build js && wasm

package driver

import (
	"errors"
	"syscall/js"
	"unsafe"
)

// Header is the source prefix prepended to every shader before compilation.
// WebGL2 consumes GLSL ES, which additionally requires default precisions.
const Header = "#version 300 es\n" +
	"precision mediump float;\n" +
	"precision mediump int;\n" +
	"precision mediump sampler2DArray;\n"

// functions drives a WebGL2 context. WebGL hands out opaque js objects where
// desktop GL hands out integer ids, so live objects and uniform locations are
// kept in id-indexed tables to preserve the uint32-shaped interface.
type functions struct {
	ctx js.Value

	nextObject uint32
	objects    map[uint32]js.Value

	nextLocation int32
	locations    map[int32]js.Value
}

// New attaches to the WebGL2 context of the first canvas in the document.
func New() (Functions, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return nil, errors.New("webgl: no document")
	}
	canvas := doc.Call("querySelector", "canvas")
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, errors.New("webgl: no canvas element")
	}
	return NewWithContext(canvas.Call("getContext", "webgl2"))
}

// NewWithContext wraps an already-obtained WebGL2 context.
func NewWithContext(ctx js.Value) (Functions, error) {
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, errors.New("webgl: webgl2 context is required")
	}
	return &functions{
		ctx:       ctx,
		objects:   make(map[uint32]js.Value),
		locations: make(map[int32]js.Value),
	}, nil
}

func (f *functions) store(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	f.nextObject++
	f.objects[f.nextObject] = v
	return f.nextObject
}

func (f *functions) object(id uint32) js.Value {
	if id == 0 {
		return js.Null()
	}
	return f.objects[id]
}

func (f *functions) drop(id uint32) js.Value {
	v := f.object(id)
	delete(f.objects, id)
	return v
}

func (f *functions) location(id int32) js.Value {
	if id < 0 {
		return js.Null()
	}
	return f.locations[id]
}

func (f *functions) float32Array(data []float32) js.Value {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
	u8 := js.Global().Get("Uint8Array").New(len(raw))
	js.CopyBytesToJS(u8, raw)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
}

func (f *functions) CreateShader(stage Enum) uint32 {
	return f.store(f.ctx.Call("createShader", int(stage)))
}

func (f *functions) ShaderSource(shader uint32, source string) {
	f.ctx.Call("shaderSource", f.object(shader), source)
}

func (f *functions) CompileShader(shader uint32) {
	f.ctx.Call("compileShader", f.object(shader))
}

func (f *functions) ShaderCompileStatus(shader uint32) bool {
	const compileStatus = 0x8B81
	return f.ctx.Call("getShaderParameter", f.object(shader), compileStatus).Bool()
}

func (f *functions) ShaderInfoLog(shader uint32) string {
	return f.ctx.Call("getShaderInfoLog", f.object(shader)).String()
}

func (f *functions) DeleteShader(shader uint32) {
	f.ctx.Call("deleteShader", f.drop(shader))
}

func (f *functions) CreateProgram() uint32 {
	return f.store(f.ctx.Call("createProgram"))
}

func (f *functions) AttachShader(program, shader uint32) {
	f.ctx.Call("attachShader", f.object(program), f.object(shader))
}

func (f *functions) LinkProgram(program uint32) {
	f.ctx.Call("linkProgram", f.object(program))
}

func (f *functions) ProgramLinkStatus(program uint32) bool {
	const linkStatus = 0x8B82
	return f.ctx.Call("getProgramParameter", f.object(program), linkStatus).Bool()
}

func (f *functions) ProgramInfoLog(program uint32) string {
	return f.ctx.Call("getProgramInfoLog", f.object(program)).String()
}

func (f *functions) DeleteProgram(program uint32) {
	f.ctx.Call("deleteProgram", f.drop(program))
}

func (f *functions) UseProgram(program uint32) {
	f.ctx.Call("useProgram", f.object(program))
}

func (f *functions) GetUniformLocation(program uint32, name string) int32 {
	loc := f.ctx.Call("getUniformLocation", f.object(program), name)
	if loc.IsNull() || loc.IsUndefined() {
		return -1
	}
	f.nextLocation++
	f.locations[f.nextLocation] = loc
	return f.nextLocation
}

func (f *functions) GetAttribLocation(program uint32, name string) int32 {
	return int32(f.ctx.Call("getAttribLocation", f.object(program), name).Int())
}

func (f *functions) EnableVertexAttribArray(location uint32) {
	f.ctx.Call("enableVertexAttribArray", int(location))
}

func (f *functions) VertexAttribPointer(location uint32, size int32, xtype Enum, normalized bool, stride int32, offset int) {
	f.ctx.Call("vertexAttribPointer", int(location), int(size), int(xtype), normalized, int(stride), offset)
}

func (f *functions) Uniform1f(location int32, v float32) {
	f.ctx.Call("uniform1f", f.location(location), v)
}

func (f *functions) Uniform1i(location int32, v int32) {
	f.ctx.Call("uniform1i", f.location(location), int(v))
}

func (f *functions) Uniform3f(location int32, x, y, z float32) {
	f.ctx.Call("uniform3f", f.location(location), x, y, z)
}

func (f *functions) Uniform3fv(location int32, v [3]float32) {
	f.ctx.Call("uniform3fv", f.location(location), f.float32Array(v[:]))
}

func (f *functions) Uniform4fv(location int32, v [4]float32) {
	f.ctx.Call("uniform4fv", f.location(location), f.float32Array(v[:]))
}

func (f *functions) UniformMatrix3fv(location int32, v [9]float32) {
	f.ctx.Call("uniformMatrix3fv", f.location(location), false, f.float32Array(v[:]))
}

func (f *functions) UniformMatrix4fv(location int32, v [16]float32) {
	f.ctx.Call("uniformMatrix4fv", f.location(location), false, f.float32Array(v[:]))
}

func (f *functions) GenBuffer() uint32 {
	return f.store(f.ctx.Call("createBuffer"))
}

func (f *functions) BindBuffer(target Enum, buffer uint32) {
	f.ctx.Call("bindBuffer", int(target), f.object(buffer))
}

func (f *functions) BufferData(target Enum, data []float32, usage Enum) {
	if len(data) == 0 {
		f.ctx.Call("bufferData", int(target), 0, int(usage))
		return
	}
	f.ctx.Call("bufferData", int(target), f.float32Array(data), int(usage))
}

func (f *functions) DeleteBuffer(buffer uint32) {
	f.ctx.Call("deleteBuffer", f.drop(buffer))
}

func (f *functions) GenVertexArray() uint32 {
	return f.store(f.ctx.Call("createVertexArray"))
}

func (f *functions) BindVertexArray(array uint32) {
	f.ctx.Call("bindVertexArray", f.object(array))
}

func (f *functions) DeleteVertexArray(array uint32) {
	f.ctx.Call("deleteVertexArray", f.drop(array))
}

func (f *functions) GenTexture() uint32 {
	return f.store(f.ctx.Call("createTexture"))
}

func (f *functions) ActiveTexture(unit Enum) {
	f.ctx.Call("activeTexture", int(unit))
}

func (f *functions) BindTexture(target Enum, texture uint32) {
	f.ctx.Call("bindTexture", int(target), f.object(texture))
}

func (f *functions) TexImage2D(target Enum, width, height int, pixels []byte) {
	if len(pixels) == 0 {
		f.ctx.Call("texImage2D", int(target), 0, int(RGBA8), width, height, 0,
			int(RGBA), int(UnsignedByte), js.Null())
		return
	}
	u8 := js.Global().Get("Uint8Array").New(len(pixels))
	js.CopyBytesToJS(u8, pixels)
	f.ctx.Call("texImage2D", int(target), 0, int(RGBA8), width, height, 0,
		int(RGBA), int(UnsignedByte), u8)
}

func (f *functions) TexParameteri(target, pname Enum, param int32) {
	f.ctx.Call("texParameteri", int(target), int(pname), int(param))
}

func (f *functions) DeleteTexture(texture uint32) {
	f.ctx.Call("deleteTexture", f.drop(texture))
}

func (f *functions) GenFramebuffer() uint32 {
	return f.store(f.ctx.Call("createFramebuffer"))
}

func (f *functions) BindFramebuffer(target Enum, framebuffer uint32) {
	f.ctx.Call("bindFramebuffer", int(target), f.object(framebuffer))
}

func (f *functions) FramebufferTexture2D(target, attachment, textarget Enum, texture uint32) {
	f.ctx.Call("framebufferTexture2D", int(target), int(attachment), int(textarget), f.object(texture), 0)
}

func (f *functions) FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32) {
	f.ctx.Call("framebufferRenderbuffer", int(target), int(attachment), int(rbTarget), f.object(renderbuffer))
}

func (f *functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.ctx.Call("checkFramebufferStatus", int(target)).Int())
}

func (f *functions) DeleteFramebuffer(framebuffer uint32) {
	f.ctx.Call("deleteFramebuffer", f.drop(framebuffer))
}

func (f *functions) GenRenderbuffer() uint32 {
	return f.store(f.ctx.Call("createRenderbuffer"))
}

func (f *functions) BindRenderbuffer(target Enum, renderbuffer uint32) {
	f.ctx.Call("bindRenderbuffer", int(target), f.object(renderbuffer))
}

func (f *functions) RenderbufferStorage(target, format Enum, width, height int) {
	f.ctx.Call("renderbufferStorage", int(target), int(format), width, height)
}

func (f *functions) DeleteRenderbuffer(renderbuffer uint32) {
	f.ctx.Call("deleteRenderbuffer", f.drop(renderbuffer))
}

func (f *functions) Viewport(x, y, width, height int32) {
	f.ctx.Call("viewport", int(x), int(y), int(width), int(height))
}

func (f *functions) ClearColor(r, g, b, a float32) {
	f.ctx.Call("clearColor", r, g, b, a)
}

func (f *functions) Clear(mask Enum) {
	f.ctx.Call("clear", int(mask))
}

func (f *functions) DrawArrays(mode Enum, first, count int32) {
	f.ctx.Call("drawArrays", int(mode), int(first), int(count))
}
