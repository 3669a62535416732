package glsprite

import (
	"github.com/db47h/glsprite/gl"
	"github.com/pkg/errors"
)

// A Material is a linked shader program together with the table of its active
// inputs.
//
// If either shader stage fails to compile or the program fails to link, the
// diagnostic is logged and the Material is disabled: Use and Set do nothing
// and Err returns the failure.
//
type Material struct {
	ctx     gl.Context
	program gl.Program
	shaders [2]gl.Shader
	params  ParameterTable
	err     error
}

// NewMaterial compiles the vertex and fragment shader sources, links them and
// builds the parameter table of the resulting program. It never fails; see
// Enabled and Err.
//
func NewMaterial(ctx gl.Context, vertex, fragment string) *Material {
	m := &Material{ctx: ctx}
	log := Logger()

	vs, verr := gl.NewShader(ctx, gl.GL_VERTEX_SHADER, vertex)
	if verr != nil {
		log.Error("shader compilation failed", "stage", "vertex", "log", verr.(*gl.CompileError).Log)
	}
	fs, ferr := gl.NewShader(ctx, gl.GL_FRAGMENT_SHADER, fragment)
	if ferr != nil {
		log.Error("shader compilation failed", "stage", "fragment", "log", ferr.(*gl.CompileError).Log)
	}
	switch {
	case verr != nil && ferr == nil:
		ctx.DeleteShader(fs)
		m.err = verr
		return m
	case ferr != nil && verr == nil:
		ctx.DeleteShader(vs)
		m.err = ferr
		return m
	case verr != nil:
		m.err = verr
		return m
	}

	p, err := gl.NewProgram(ctx, vs, fs)
	if err != nil {
		log.Error("program link failed", "log", err.(*gl.LinkError).Log)
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		m.err = err
		return m
	}
	ctx.DetachShader(p, vs)
	ctx.DetachShader(p, fs)

	m.program = p
	m.shaders = [2]gl.Shader{vs, fs}
	m.params = NewParameterTable(ctx, p)
	log.Debug("material ready", "program", p, "inputs", m.params.Len())
	return m
}

// Enabled returns true if the program linked successfully.
//
func (m *Material) Enabled() bool {
	return m.program != 0
}

// Err returns the compile or link error that disabled the material, or nil.
// The returned error is a *gl.CompileError or a *gl.LinkError.
//
func (m *Material) Err() error {
	return m.err
}

// Params returns the parameter table of the program. It is empty if the
// material is disabled.
//
func (m *Material) Params() ParameterTable {
	return m.params
}

// Use makes the material's program current. Uniform values set with Set
// apply to the current program.
//
func (m *Material) Use() {
	if m.program != 0 {
		m.ctx.UseProgram(m.program)
	}
}

// Set uploads v to the named program input. The program must be current; see
// Use.
//
// Setting a name that is not an active input of the program does nothing and
// makes no GL call.
//
// For uniforms, the upload depends on the declared type: float, vecN, mat3
// and mat4 uniforms take a value with 1, N, 9 or 16 float components (matrices
// in column-major order, never transposed), sampler2D uniforms take a Sampler
// and int uniforms an Int. Float arrays of Size elements also accept up to
// Size elements' worth of components, uploaded from element 0. Sampler and
// int arrays only have their first element set.
//
// For attributes, v must be an Attrib. The attribute array is enabled and
// set up to read floats from the buffer currently bound to GL_ARRAY_BUFFER,
// with as many components per vertex as the declared type has.
//
// Passing a value that does not fit the declared type is a programming error
// and panics.
//
func (m *Material) Set(name string, v Value) {
	p, ok := m.params.Lookup(name)
	if !ok {
		return
	}
	if v == nil {
		panic(mismatch(p, v))
	}
	if p.Kind == Attribute {
		a, ok := v.(Attrib)
		if !ok {
			panic(mismatch(p, v))
		}
		loc := gl.Attrib(p.Location)
		m.ctx.EnableVertexAttribArray(loc)
		m.ctx.VertexAttribPointer(loc, int32(p.Type.Components()), gl.GL_FLOAT, a.Normalized, int32(a.Stride), int32(a.Offset))
		return
	}

	loc := gl.Uniform(p.Location)
	switch p.Type {
	case TypeSampler2D:
		s, ok := v.(Sampler)
		if !ok {
			panic(mismatch(p, v))
		}
		m.ctx.Uniform1i(loc, int32(s))
		return
	case TypeInt:
		i, ok := v.(Int)
		if !ok {
			panic(mismatch(p, v))
		}
		m.ctx.Uniform1i(loc, int32(i))
		return
	}

	var buf [16]float32
	c := v.components(buf[:0])
	n := p.Type.Components()
	count := len(c) / n
	if len(c) == 0 || len(c)%n != 0 || count > int(max(p.Size, 1)) {
		panic(mismatch(p, v))
	}
	if count > 1 {
		m.setArray(p.Type, loc, c)
		return
	}
	switch p.Type {
	case TypeFloat:
		m.ctx.Uniform1f(loc, c[0])
	case TypeVec2:
		m.ctx.Uniform2f(loc, c[0], c[1])
	case TypeVec3:
		m.ctx.Uniform3f(loc, c[0], c[1], c[2])
	case TypeVec4:
		m.ctx.Uniform4f(loc, c[0], c[1], c[2], c[3])
	case TypeMat3:
		m.ctx.UniformMatrix3fv(loc, false, c)
	case TypeMat4:
		m.ctx.UniformMatrix4fv(loc, false, c)
	}
}

// setArray uploads consecutive elements of an array uniform, starting at
// element 0.
//
func (m *Material) setArray(t DataType, loc gl.Uniform, c []float32) {
	switch t {
	case TypeFloat:
		m.ctx.Uniform1fv(loc, c)
	case TypeVec2:
		m.ctx.Uniform2fv(loc, c)
	case TypeVec3:
		m.ctx.Uniform3fv(loc, c)
	case TypeVec4:
		m.ctx.Uniform4fv(loc, c)
	case TypeMat3:
		m.ctx.UniformMatrix3fv(loc, false, c)
	case TypeMat4:
		m.ctx.UniformMatrix4fv(loc, false, c)
	}
}

// SetFloats is a shorthand for m.Set(name, Floats(v)).
//
func (m *Material) SetFloats(name string, v ...float32) {
	m.Set(name, Floats(v))
}

func mismatch(p Parameter, v Value) error {
	return errors.Errorf("glsprite: cannot set %s %s %q from %T %v", p.Type, p.Kind, p.Name, v, v)
}

// Delete releases the program and its shaders.
//
func (m *Material) Delete() {
	if m.program == 0 {
		return
	}
	m.ctx.DeleteProgram(m.program)
	for _, s := range m.shaders {
		m.ctx.DeleteShader(s)
	}
	m.program = 0
	m.shaders = [2]gl.Shader{}
	m.params = ParameterTable{}
}
