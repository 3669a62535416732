// Package gl21 implements gl.Context on top of an OpenGL 2.1 context using
// github.com/go-gl/gl.
//
package gl21

import (
	"strings"
	"unsafe"

	"github.com/db47h/glsprite/gl"
	gogl "github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
)

// Context is a gl.Context bound to the OpenGL context that is current on
// the calling thread.
//
type Context struct{}

var _ gl.Context = (*Context)(nil)

// Init loads the OpenGL function pointers using getProcAddr. It must be called
// after a context has been made current.
//
func Init(getProcAddr func(name string) unsafe.Pointer) (*Context, error) {
	if err := gogl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, errors.Wrap(err, "init OpenGL 2.1")
	}
	return new(Context), nil
}

// Version returns a summary of the OpenGL implementation: vendor, renderer and
// version strings.
//
func (*Context) Version() string {
	return GetString(gl.GL_VENDOR) + " " + GetString(gl.GL_RENDERER) + " " + GetString(gl.GL_VERSION)
}

// GetString is a wrapper around glGetString that returns a Go string.
//
func GetString(name gl.Enum) string {
	p := gogl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	return gogl.GoStr(p)
}

func cstr(s string) *uint8 {
	return gogl.Str(s + "\x00")
}

func logString(buf []uint8) string {
	return strings.TrimRight(string(buf), "\x00")
}

func (*Context) CreateShader(typ gl.Enum) gl.Shader {
	return gl.Shader(gogl.CreateShader(uint32(typ)))
}

func (*Context) ShaderSource(s gl.Shader, src string) {
	csrc, free := gogl.Strs(src + "\x00")
	gogl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (*Context) CompileShader(s gl.Shader) {
	gogl.CompileShader(uint32(s))
}

func (*Context) GetShaderi(s gl.Shader, pname gl.Enum) int32 {
	var v int32
	gogl.GetShaderiv(uint32(s), uint32(pname), &v)
	return v
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	n := c.GetShaderi(s, gl.GL_INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetShaderInfoLog(uint32(s), n, nil, &buf[0])
	return logString(buf)
}

func (*Context) DeleteShader(s gl.Shader) {
	gogl.DeleteShader(uint32(s))
}

func (*Context) CreateProgram() gl.Program {
	return gl.Program(gogl.CreateProgram())
}

func (*Context) AttachShader(p gl.Program, s gl.Shader) {
	gogl.AttachShader(uint32(p), uint32(s))
}

func (*Context) DetachShader(p gl.Program, s gl.Shader) {
	gogl.DetachShader(uint32(p), uint32(s))
}

func (*Context) LinkProgram(p gl.Program) {
	gogl.LinkProgram(uint32(p))
}

func (*Context) GetProgrami(p gl.Program, pname gl.Enum) int32 {
	var v int32
	gogl.GetProgramiv(uint32(p), uint32(pname), &v)
	return v
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	n := c.GetProgrami(p, gl.GL_INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n)
	gogl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return logString(buf)
}

func (*Context) DeleteProgram(p gl.Program) {
	gogl.DeleteProgram(uint32(p))
}

func (*Context) UseProgram(p gl.Program) {
	gogl.UseProgram(uint32(p))
}

func (c *Context) GetActiveUniform(p gl.Program, index uint32) (string, int32, gl.Enum) {
	buf := make([]uint8, c.GetProgrami(p, gl.GL_ACTIVE_UNIFORM_MAX_LENGTH)+1)
	var (
		length, size int32
		typ          uint32
	)
	gogl.GetActiveUniform(uint32(p), index, int32(len(buf)), &length, &size, &typ, &buf[0])
	return string(buf[:length]), size, gl.Enum(typ)
}

func (c *Context) GetActiveAttrib(p gl.Program, index uint32) (string, int32, gl.Enum) {
	buf := make([]uint8, c.GetProgrami(p, gl.GL_ACTIVE_ATTRIBUTE_MAX_LENGTH)+1)
	var (
		length, size int32
		typ          uint32
	)
	gogl.GetActiveAttrib(uint32(p), index, int32(len(buf)), &length, &size, &typ, &buf[0])
	return string(buf[:length]), size, gl.Enum(typ)
}

func (*Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform(gogl.GetUniformLocation(uint32(p), cstr(name)))
}

func (*Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	return gl.Attrib(gogl.GetAttribLocation(uint32(p), cstr(name)))
}

func (*Context) Uniform1f(u gl.Uniform, v float32) {
	gogl.Uniform1f(int32(u), v)
}

func (*Context) Uniform2f(u gl.Uniform, v0, v1 float32) {
	gogl.Uniform2f(int32(u), v0, v1)
}

func (*Context) Uniform3f(u gl.Uniform, v0, v1, v2 float32) {
	gogl.Uniform3f(int32(u), v0, v1, v2)
}

func (*Context) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	gogl.Uniform4f(int32(u), v0, v1, v2, v3)
}

func (*Context) Uniform1i(u gl.Uniform, v int32) {
	gogl.Uniform1i(int32(u), v)
}

func (*Context) Uniform1fv(u gl.Uniform, v []float32) {
	gogl.Uniform1fv(int32(u), int32(len(v)), &v[0])
}

func (*Context) Uniform2fv(u gl.Uniform, v []float32) {
	gogl.Uniform2fv(int32(u), int32(len(v)/2), &v[0])
}

func (*Context) Uniform3fv(u gl.Uniform, v []float32) {
	gogl.Uniform3fv(int32(u), int32(len(v)/3), &v[0])
}

func (*Context) Uniform4fv(u gl.Uniform, v []float32) {
	gogl.Uniform4fv(int32(u), int32(len(v)/4), &v[0])
}

func (*Context) UniformMatrix3fv(u gl.Uniform, transpose bool, m []float32) {
	gogl.UniformMatrix3fv(int32(u), int32(len(m)/9), transpose, &m[0])
}

func (*Context) UniformMatrix4fv(u gl.Uniform, transpose bool, m []float32) {
	gogl.UniformMatrix4fv(int32(u), int32(len(m)/16), transpose, &m[0])
}

func (*Context) EnableVertexAttribArray(a gl.Attrib) {
	gogl.EnableVertexAttribArray(uint32(a))
}

func (*Context) VertexAttribPointer(a gl.Attrib, size int32, typ gl.Enum, normalized bool, stride, offset int32) {
	gogl.VertexAttribPointerWithOffset(uint32(a), size, uint32(typ), normalized, stride, uintptr(offset))
}

func (*Context) CreateBuffer() gl.Buffer {
	var b uint32
	gogl.GenBuffers(1, &b)
	return gl.Buffer(b)
}

func (*Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	gogl.BindBuffer(uint32(target), uint32(b))
}

func (*Context) BufferData(target gl.Enum, data []float32, usage gl.Enum) {
	if len(data) == 0 {
		gogl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gogl.BufferData(uint32(target), len(data)*4, gogl.Ptr(data), uint32(usage))
}

func (*Context) DeleteBuffer(b gl.Buffer) {
	id := uint32(b)
	gogl.DeleteBuffers(1, &id)
}

func (*Context) CreateTexture() gl.Texture {
	var t uint32
	gogl.GenTextures(1, &t)
	return gl.Texture(t)
}

func (*Context) ActiveTexture(unit gl.Enum) {
	gogl.ActiveTexture(uint32(unit))
}

func (*Context) BindTexture(target gl.Enum, t gl.Texture) {
	gogl.BindTexture(uint32(target), uint32(t))
}

func (*Context) TexParameteri(target, pname gl.Enum, param int32) {
	gogl.TexParameteri(uint32(target), uint32(pname), param)
}

func (*Context) TexImage2D(target gl.Enum, level, width, height int32, pix []uint8) {
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gogl.Ptr(pix)
	}
	gogl.PixelStorei(gogl.UNPACK_ALIGNMENT, 4)
	gogl.TexImage2D(uint32(target), level, gogl.RGBA, width, height, 0, gogl.RGBA, gogl.UNSIGNED_BYTE, ptr)
}

func (*Context) DeleteTexture(t gl.Texture) {
	id := uint32(t)
	gogl.DeleteTextures(1, &id)
}

func (*Context) DrawArrays(mode gl.Enum, first, count int32) {
	gogl.DrawArrays(uint32(mode), first, count)
}

func (*Context) Viewport(x, y, width, height int32) {
	gogl.Viewport(x, y, width, height)
}

func (*Context) ClearColor(r, g, b, a float32) {
	gogl.ClearColor(r, g, b, a)
}

func (*Context) Clear(mask gl.Enum) {
	gogl.Clear(uint32(mask))
}

func (*Context) Enable(capability gl.Enum) {
	gogl.Enable(uint32(capability))
}

func (*Context) BlendFunc(sfactor, dfactor gl.Enum) {
	gogl.BlendFunc(uint32(sfactor), uint32(dfactor))
}
