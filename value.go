package glsprite

// A Value can be passed to Material.Set. Float values (Float, Floats, Vec2,
// Vec3, Vec4, Mat3, Mat4) are accepted by float, vector and matrix uniforms
// with a matching number of components, or a multiple of it for arrays.
// Sampler and Int are accepted by sampler2D and int uniforms, and Attrib by
// attributes.
//
type Value interface {
	// components appends the float components of the value to dst. Values
	// without float components return dst unchanged.
	components(dst []float32) []float32
}

// Float is a float uniform value.
//
type Float float32

// Floats is a uniform value given as raw components. Matrices are in
// column-major order. Array elements follow each other.
//
type Floats []float32

// Vec3 is a vec3 uniform value.
//
type Vec3 [3]float32

// Vec4 is a vec4 uniform value.
//
type Vec4 [4]float32

// Mat4 is a mat4 uniform value in column-major order.
//
type Mat4 [16]float32

// Sampler is a sampler2D uniform value: a texture unit index.
//
type Sampler int32

// Int is an int uniform value.
//
type Int int32

// Attrib describes how an attribute reads its data from the buffer currently
// bound to GL_ARRAY_BUFFER. The number of components per vertex is the one of
// the attribute's declared type. The zero value reads tightly packed floats
// starting at offset 0.
//
type Attrib struct {
	Normalized bool
	Stride     int // in bytes, 0 for tightly packed
	Offset     int // in bytes
}

func (v Float) components(dst []float32) []float32 { return append(dst, float32(v)) }
func (v Floats) components(dst []float32) []float32 { return append(dst, v...) }
func (v Vec3) components(dst []float32) []float32 { return append(dst, v[:]...) }
func (v Vec4) components(dst []float32) []float32 { return append(dst, v[:]...) }
func (v Mat4) components(dst []float32) []float32 { return append(dst, v[:]...) }

func (Sampler) components(dst []float32) []float32 { return dst }
func (Int) components(dst []float32) []float32     { return dst }
func (Attrib) components(dst []float32) []float32  { return dst }
