// Package gltest provides a recording gl.Context for tests.
//
// A Recorder does not render anything. It hands out object names, records
// every call made through it and answers status and introspection queries
// from its exported fields, so that compile or link failures and the set of
// active program inputs can be scripted by the test.
//
package gltest

import (
	"fmt"
	"strings"

	"github.com/db47h/glsprite/gl"
)

// Call is a recorded gl.Context method call.
//
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Var describes an active uniform or attribute as reported by
// GetActiveUniform or GetActiveAttrib.
//
type Var struct {
	Name string
	Size int32
	Type gl.Enum
}

type program struct {
	linked  bool
	deleted bool
}

// Recorder is a gl.Context that records calls.
//
type Recorder struct {
	// Calls made so far, in order.
	Calls []Call

	// CompileErrors maps a shader type to the info log reported when
	// compiling a shader of that type. Shader types not in the map compile
	// successfully.
	CompileErrors map[gl.Enum]string

	// LinkError, if not empty, makes every LinkProgram call fail with this
	// info log.
	LinkError string

	// Active inputs reported for every successfully linked program. A
	// uniform's location is its index in Uniforms, an attribute's location
	// is its index in Attribs.
	Uniforms []Var
	Attribs  []Var

	next     uint32
	shaders  map[gl.Shader]gl.Enum
	compiled map[gl.Shader]bool
	programs map[gl.Program]*program
	buffers  map[gl.Buffer][]float32
	bound    gl.Buffer
	textures map[gl.Texture]bool
}

var _ gl.Context = (*Recorder)(nil)

// New returns a new Recorder.
//
func New() *Recorder {
	return &Recorder{
		CompileErrors: make(map[gl.Enum]string),
		shaders:       make(map[gl.Shader]gl.Enum),
		compiled:      make(map[gl.Shader]bool),
		programs:      make(map[gl.Program]*program),
		buffers:       make(map[gl.Buffer][]float32),
		textures:      make(map[gl.Texture]bool),
	}
}

// Reset clears the recorded calls. Objects created so far are kept.
//
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Count returns the number of recorded calls to the named method.
//
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns all recorded calls to the named method.
//
func (r *Recorder) Find(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Names returns the method names of all recorded calls, in order.
//
func (r *Recorder) Names() []string {
	ns := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ns[i] = c.Name
	}
	return ns
}

// Data returns the contents last uploaded to buffer b.
//
func (r *Recorder) Data(b gl.Buffer) []float32 {
	return r.buffers[b]
}

// Live returns the number of shaders, programs, buffers and textures that
// have been created but not deleted.
//
func (r *Recorder) Live() (shaders, programs, buffers, textures int) {
	for _, p := range r.programs {
		if !p.deleted {
			programs++
		}
	}
	return len(r.shaders), programs, len(r.buffers), len(r.textures)
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) CreateShader(typ gl.Enum) gl.Shader {
	s := gl.Shader(r.id())
	r.shaders[s] = typ
	r.record("CreateShader", typ)
	return s
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s, src)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	_, failed := r.CompileErrors[r.shaders[s]]
	r.compiled[s] = !failed
	r.record("CompileShader", s)
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int32 {
	r.record("GetShaderi", s, pname)
	switch pname {
	case gl.GL_COMPILE_STATUS:
		if r.compiled[s] {
			return gl.GL_TRUE
		}
		return gl.GL_FALSE
	case gl.GL_INFO_LOG_LENGTH:
		return int32(len(r.CompileErrors[r.shaders[s]]))
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	r.record("GetShaderInfoLog", s)
	if r.compiled[s] {
		return ""
	}
	return r.CompileErrors[r.shaders[s]]
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	delete(r.shaders, s)
	delete(r.compiled, s)
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program(r.id())
	r.programs[p] = new(program)
	r.record("CreateProgram")
	return p
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p, s)
}

func (r *Recorder) DetachShader(p gl.Program, s gl.Shader) {
	r.record("DetachShader", p, s)
}

func (r *Recorder) LinkProgram(p gl.Program) {
	if pr := r.programs[p]; pr != nil {
		pr.linked = r.LinkError == ""
	}
	r.record("LinkProgram", p)
}

func (r *Recorder) linked(p gl.Program) bool {
	pr := r.programs[p]
	return pr != nil && pr.linked && !pr.deleted
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int32 {
	r.record("GetProgrami", p, pname)
	switch pname {
	case gl.GL_LINK_STATUS:
		if r.linked(p) {
			return gl.GL_TRUE
		}
		return gl.GL_FALSE
	case gl.GL_INFO_LOG_LENGTH:
		return int32(len(r.LinkError))
	case gl.GL_ACTIVE_UNIFORMS:
		if r.linked(p) {
			return int32(len(r.Uniforms))
		}
	case gl.GL_ACTIVE_ATTRIBUTES:
		if r.linked(p) {
			return int32(len(r.Attribs))
		}
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	r.record("GetProgramInfoLog", p)
	if r.linked(p) {
		return ""
	}
	return r.LinkError
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	if pr := r.programs[p]; pr != nil {
		pr.deleted = true
	}
	r.record("DeleteProgram", p)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p)
}

func active(vs []Var, index uint32) (string, int32, gl.Enum) {
	if int(index) >= len(vs) {
		return "", 0, 0
	}
	v := vs[index]
	size := v.Size
	if size == 0 {
		size = 1
	}
	return v.Name, size, v.Type
}

func location(vs []Var, name string) int32 {
	for i, v := range vs {
		if v.Name == name || strings.TrimSuffix(v.Name, "[0]") == name {
			return int32(i)
		}
	}
	return -1
}

func (r *Recorder) GetActiveUniform(p gl.Program, index uint32) (string, int32, gl.Enum) {
	r.record("GetActiveUniform", p, index)
	return active(r.Uniforms, index)
}

func (r *Recorder) GetActiveAttrib(p gl.Program, index uint32) (string, int32, gl.Enum) {
	r.record("GetActiveAttrib", p, index)
	return active(r.Attribs, index)
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p, name)
	if !r.linked(p) {
		return -1
	}
	return gl.Uniform(location(r.Uniforms, name))
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	r.record("GetAttribLocation", p, name)
	if !r.linked(p) {
		return -1
	}
	return gl.Attrib(location(r.Attribs, name))
}

func (r *Recorder) Uniform1f(u gl.Uniform, v float32) {
	r.record("Uniform1f", u, v)
}

func (r *Recorder) Uniform2f(u gl.Uniform, v0, v1 float32) {
	r.record("Uniform2f", u, v0, v1)
}

func (r *Recorder) Uniform3f(u gl.Uniform, v0, v1, v2 float32) {
	r.record("Uniform3f", u, v0, v1, v2)
}

func (r *Recorder) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", u, v0, v1, v2, v3)
}

func (r *Recorder) Uniform1i(u gl.Uniform, v int32) {
	r.record("Uniform1i", u, v)
}

func (r *Recorder) Uniform1fv(u gl.Uniform, v []float32) {
	r.record("Uniform1fv", u, append([]float32(nil), v...))
}

func (r *Recorder) Uniform2fv(u gl.Uniform, v []float32) {
	r.record("Uniform2fv", u, append([]float32(nil), v...))
}

func (r *Recorder) Uniform3fv(u gl.Uniform, v []float32) {
	r.record("Uniform3fv", u, append([]float32(nil), v...))
}

func (r *Recorder) Uniform4fv(u gl.Uniform, v []float32) {
	r.record("Uniform4fv", u, append([]float32(nil), v...))
}

func (r *Recorder) UniformMatrix3fv(u gl.Uniform, transpose bool, m []float32) {
	r.record("UniformMatrix3fv", u, transpose, append([]float32(nil), m...))
}

func (r *Recorder) UniformMatrix4fv(u gl.Uniform, transpose bool, m []float32) {
	r.record("UniformMatrix4fv", u, transpose, append([]float32(nil), m...))
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

// VertexAttribPointer records the call. The last argument is the buffer
// bound to GL_ARRAY_BUFFER at the time of the call.
//
func (r *Recorder) VertexAttribPointer(a gl.Attrib, size int32, typ gl.Enum, normalized bool, stride, offset int32) {
	r.record("VertexAttribPointer", a, size, typ, normalized, stride, offset, r.bound)
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	b := gl.Buffer(r.id())
	r.buffers[b] = nil
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	if target == gl.GL_ARRAY_BUFFER {
		r.bound = b
	}
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferData(target gl.Enum, data []float32, usage gl.Enum) {
	if target == gl.GL_ARRAY_BUFFER {
		if _, ok := r.buffers[r.bound]; ok {
			r.buffers[r.bound] = append([]float32(nil), data...)
		}
	}
	r.record("BufferData", target, append([]float32(nil), data...), usage)
}

func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	delete(r.buffers, b)
	r.record("DeleteBuffer", b)
}

func (r *Recorder) CreateTexture() gl.Texture {
	t := gl.Texture(r.id())
	r.textures[t] = true
	r.record("CreateTexture")
	return t
}

func (r *Recorder) ActiveTexture(unit gl.Enum) {
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexImage2D(target gl.Enum, level, width, height int32, pix []uint8) {
	r.record("TexImage2D", target, level, width, height, len(pix))
}

func (r *Recorder) DeleteTexture(t gl.Texture) {
	delete(r.textures, t)
	r.record("DeleteTexture", t)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) Enable(capability gl.Enum) {
	r.record("Enable", capability)
}

func (r *Recorder) BlendFunc(sfactor, dfactor gl.Enum) {
	r.record("BlendFunc", sfactor, dfactor)
}
