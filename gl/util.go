package gl

import (
	"image/color"
	"strconv"
	"strings"
)

// CompileError is returned by NewShader when a shader stage fails to compile.
//
type CompileError struct {
	Stage string // "vertex", "fragment" or the numeric shader type
	Log   string
}

func (e *CompileError) Error() string {
	return e.Stage + " shader: " + strings.TrimSpace(e.Log)
}

// LinkError is returned by NewProgram when a program fails to link.
//
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link program: " + strings.TrimSpace(e.Log)
}

// StageName returns a human readable name for a shader type.
//
func StageName(typ Enum) string {
	switch typ {
	case GL_VERTEX_SHADER:
		return "vertex"
	case GL_FRAGMENT_SHADER:
		return "fragment"
	}
	return "shader type " + strconv.FormatUint(uint64(typ), 10)
}

// NewShader creates and compiles a shader of the given type. On failure the
// shader object is deleted and a *CompileError holding the info log is
// returned.
//
func NewShader(ctx Context, typ Enum, source string) (Shader, error) {
	s := ctx.CreateShader(typ)
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)
	if ctx.GetShaderi(s, GL_COMPILE_STATUS) == GL_FALSE {
		err := &CompileError{Stage: StageName(typ), Log: ctx.GetShaderInfoLog(s)}
		ctx.DeleteShader(s)
		return 0, err
	}
	return s, nil
}

// NewProgram attaches the given shaders to a new program and links it. On
// failure the program is deleted and a *LinkError holding the info log is
// returned. Shaders are left attached.
//
func NewProgram(ctx Context, shaders ...Shader) (Program, error) {
	p := ctx.CreateProgram()
	for _, s := range shaders {
		ctx.AttachShader(p, s)
	}
	ctx.LinkProgram(p)
	if ctx.GetProgrami(p, GL_LINK_STATUS) == GL_FALSE {
		err := &LinkError{Log: ctx.GetProgramInfoLog(p)}
		ctx.DeleteProgram(p)
		return 0, err
	}
	return p, nil
}

// Color implements color.Color. It stores alpha premultiplied color components in
// the range [0, 1],
//
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color.
//
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R*0xffff) & 0xffff, uint32(c.G*0xffff) & 0xffff, uint32(c.B*0xffff) & 0xffff, uint32(c.A*0xffff) & 0xffff
}

// ColorModel converts any color.Color to a Color; i.e. the result can safely be
// casted to a Color.
//
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}

// ClearColor sets the clear color from any color.Color.
//
func ClearColor(ctx Context, c color.Color) {
	cc := ColorModel.Convert(c).(Color)
	ctx.ClearColor(cc.R, cc.G, cc.B, cc.A)
}
