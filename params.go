package glsprite

import (
	"sort"
	"strings"

	"github.com/db47h/glsprite/gl"
)

// Kind tells uniforms and attributes apart.
//
type Kind uint8

const (
	Uniform Kind = iota
	Attribute
)

func (k Kind) String() string {
	if k == Attribute {
		return "attribute"
	}
	return "uniform"
}

// DataType is the declared GLSL type of a program input.
//
type DataType uint8

// Supported input types.
//
const (
	TypeFloat DataType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeInt
)

var dataTypes = [...]struct {
	name string
	n    int
}{
	TypeFloat:     {"float", 1},
	TypeVec2:      {"vec2", 2},
	TypeVec3:      {"vec3", 3},
	TypeVec4:      {"vec4", 4},
	TypeMat3:      {"mat3", 9},
	TypeMat4:      {"mat4", 16},
	TypeSampler2D: {"sampler2D", 1},
	TypeInt:       {"int", 1},
}

func (t DataType) String() string {
	if int(t) < len(dataTypes) {
		return dataTypes[t].name
	}
	return "invalid"
}

// Components returns the number of scalar components of a value of type t.
//
func (t DataType) Components() int {
	if int(t) < len(dataTypes) {
		return dataTypes[t].n
	}
	return 0
}

func dataTypeOf(typ gl.Enum) (DataType, bool) {
	switch typ {
	case gl.GL_FLOAT:
		return TypeFloat, true
	case gl.GL_FLOAT_VEC2:
		return TypeVec2, true
	case gl.GL_FLOAT_VEC3:
		return TypeVec3, true
	case gl.GL_FLOAT_VEC4:
		return TypeVec4, true
	case gl.GL_FLOAT_MAT3:
		return TypeMat3, true
	case gl.GL_FLOAT_MAT4:
		return TypeMat4, true
	case gl.GL_SAMPLER_2D:
		return TypeSampler2D, true
	case gl.GL_INT:
		return TypeInt, true
	}
	return 0, false
}

// A Parameter describes an active program input.
//
type Parameter struct {
	Name     string
	Kind     Kind
	Type     DataType
	Size     int32 // number of array elements, 1 for non-array inputs
	Location int32 // uniform location or attribute index
}

// ParameterTable maps the names of the active inputs of a linked program to
// their descriptors. It is built once and never modified.
//
type ParameterTable struct {
	params map[string]Parameter
}

// NewParameterTable queries the active uniforms and attributes of the linked
// program p. Inputs the compiler optimized out are not reported by OpenGL and
// are therefore absent. Array uniforms are stored under their base name.
// Inputs of unsupported types and built-in attributes are skipped.
//
func NewParameterTable(ctx gl.Context, p gl.Program) ParameterTable {
	t := ParameterTable{params: make(map[string]Parameter)}
	log := Logger()

	n := ctx.GetProgrami(p, gl.GL_ACTIVE_UNIFORMS)
	for i := uint32(0); i < uint32(n); i++ {
		name, size, typ := ctx.GetActiveUniform(p, i)
		name = strings.TrimSuffix(name, "[0]")
		dt, ok := dataTypeOf(typ)
		if !ok {
			log.Warn("unsupported uniform type", "name", name, "type", uint32(typ))
			continue
		}
		loc := ctx.GetUniformLocation(p, name)
		if loc < 0 {
			continue
		}
		t.params[name] = Parameter{Name: name, Kind: Uniform, Type: dt, Size: size, Location: int32(loc)}
	}

	n = ctx.GetProgrami(p, gl.GL_ACTIVE_ATTRIBUTES)
	for i := uint32(0); i < uint32(n); i++ {
		name, size, typ := ctx.GetActiveAttrib(p, i)
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		dt, ok := dataTypeOf(typ)
		if !ok || dt.Components() > 4 || dt == TypeSampler2D || dt == TypeInt {
			log.Warn("unsupported attribute type", "name", name, "type", uint32(typ))
			continue
		}
		loc := ctx.GetAttribLocation(p, name)
		if loc < 0 {
			continue
		}
		t.params[name] = Parameter{Name: name, Kind: Attribute, Type: dt, Size: size, Location: int32(loc)}
	}
	return t
}

// Lookup returns the descriptor for the named input.
//
func (t ParameterTable) Lookup(name string) (Parameter, bool) {
	p, ok := t.params[name]
	return p, ok
}

// Len returns the number of inputs in the table.
//
func (t ParameterTable) Len() int {
	return len(t.params)
}

// Names returns the sorted input names.
//
func (t ParameterTable) Names() []string {
	names := make([]string, 0, len(t.params))
	for k := range t.params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
