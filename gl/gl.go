// Package gl defines the slice of the OpenGL API used by glsprite.
//
// The Context interface is implemented by gl/gl21 for a real OpenGL 2.1
// context and by gl/gltest for tests. Constants carry their OpenGL values so
// that implementations can pass them through unchanged.
//
package gl

// Typed OpenGL object names.
//
type (
	Enum    uint32
	Shader  uint32
	Program uint32
	Buffer  uint32
	Texture uint32
	Uniform int32
	Attrib  int32
)

// OpenGL enum values.
//
const (
	GL_FALSE = 0
	GL_TRUE  = 1

	GL_UNSIGNED_BYTE = 0x1401
	GL_INT           = 0x1404
	GL_FLOAT         = 0x1406

	GL_FLOAT_VEC2   = 0x8B50
	GL_FLOAT_VEC3   = 0x8B51
	GL_FLOAT_VEC4   = 0x8B52
	GL_INT_VEC2     = 0x8B53
	GL_BOOL         = 0x8B56
	GL_FLOAT_MAT2   = 0x8B5A
	GL_FLOAT_MAT3   = 0x8B5B
	GL_FLOAT_MAT4   = 0x8B5C
	GL_SAMPLER_2D   = 0x8B5E
	GL_SAMPLER_CUBE = 0x8B60

	GL_FRAGMENT_SHADER             = 0x8B30
	GL_VERTEX_SHADER               = 0x8B31
	GL_COMPILE_STATUS              = 0x8B81
	GL_LINK_STATUS                 = 0x8B82
	GL_INFO_LOG_LENGTH             = 0x8B84
	GL_ACTIVE_UNIFORMS             = 0x8B86
	GL_ACTIVE_UNIFORM_MAX_LENGTH   = 0x8B87
	GL_ACTIVE_ATTRIBUTES           = 0x8B89
	GL_ACTIVE_ATTRIBUTE_MAX_LENGTH = 0x8B8A

	GL_ARRAY_BUFFER = 0x8892
	GL_STATIC_DRAW  = 0x88E4
	GL_DYNAMIC_DRAW = 0x88E8

	GL_TEXTURE_2D         = 0x0DE1
	GL_TEXTURE0           = 0x84C0
	GL_TEXTURE_MAG_FILTER = 0x2800
	GL_TEXTURE_MIN_FILTER = 0x2801
	GL_TEXTURE_WRAP_S     = 0x2802
	GL_TEXTURE_WRAP_T     = 0x2803
	GL_NEAREST            = 0x2600
	GL_LINEAR             = 0x2601
	GL_REPEAT             = 0x2901
	GL_CLAMP_TO_EDGE      = 0x812F
	GL_MIRRORED_REPEAT    = 0x8370
	GL_RGBA               = 0x1908

	GL_TRIANGLES      = 0x0004
	GL_TRIANGLE_STRIP = 0x0005

	GL_COLOR_BUFFER_BIT    = 0x4000
	GL_BLEND               = 0x0BE2
	GL_ONE                 = 1
	GL_SRC_ALPHA           = 0x0302
	GL_ONE_MINUS_SRC_ALPHA = 0x0303

	GL_VENDOR                   = 0x1F00
	GL_RENDERER                 = 0x1F01
	GL_VERSION                  = 0x1F02
	GL_SHADING_LANGUAGE_VERSION = 0x8B8C
)

// Context is the set of OpenGL entry points used by glsprite. All methods
// must be called from the goroutine that owns the underlying GL context.
//
// GetUniformLocation and GetAttribLocation return -1 for names that are not
// active in the program.
//
type Context interface {
	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int32
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int32
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetActiveUniform(p Program, index uint32) (name string, size int32, typ Enum)
	GetActiveAttrib(p Program, index uint32) (name string, size int32, typ Enum)
	GetUniformLocation(p Program, name string) Uniform
	GetAttribLocation(p Program, name string) Attrib

	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	Uniform3f(u Uniform, v0, v1, v2 float32)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	Uniform1i(u Uniform, v int32)
	// The vector variants upload len(v)/N consecutive array elements.
	Uniform1fv(u Uniform, v []float32)
	Uniform2fv(u Uniform, v []float32)
	Uniform3fv(u Uniform, v []float32)
	Uniform4fv(u Uniform, v []float32)
	UniformMatrix3fv(u Uniform, transpose bool, m []float32)
	UniformMatrix4fv(u Uniform, transpose bool, m []float32)

	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int32, typ Enum, normalized bool, stride, offset int32)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []float32, usage Enum)
	DeleteBuffer(b Buffer)

	CreateTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexParameteri(target, pname Enum, param int32)
	// TexImage2D uploads pix as tightly packed RGBA bytes.
	TexImage2D(target Enum, level, width, height int32, pix []uint8)
	DeleteTexture(t Texture)

	DrawArrays(mode Enum, first, count int32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
}
