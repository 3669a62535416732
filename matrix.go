package glsprite

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is a 3x3 matrix representing a 2D transform in homogeneous
// coordinates. Elements are stored in column-major order, the layout expected
// by glUniformMatrix3fv with transpose set to false:
//
//	| m[0] m[3] m[6] |
//	| m[1] m[4] m[7] |
//	| m[2] m[5] m[8] |
//
// Points are column vectors: m.Transform(p) computes m·(p.X, p.Y, 1). In a
// product a.Multiply(b), b is applied first.
//
// The zero value is not the identity; use Identity.
//
type Mat3 [9]float64

// Identity returns the identity transform.
//
func Identity() Mat3 {
	return Mat3(mgl64.Ident3())
}

// Translation returns a transform that translates points by v.
//
func Translation(v Vec2) Mat3 {
	return Mat3(mgl64.Translate2D(v.X, v.Y))
}

// Scaling returns a transform that scales points by v.X horizontally and v.Y
// vertically.
//
func Scaling(v Vec2) Mat3 {
	return Mat3(mgl64.Scale2D(v.X, v.Y))
}

// Rotation returns a transform that rotates points by angle radians around the
// origin, from the +X axis towards the +Y axis.
//
func Rotation(angle float64) Mat3 {
	return Mat3(mgl64.HomogRotate2D(angle))
}

// Multiply returns the matrix product m·n.
//
func (m Mat3) Multiply(n Mat3) Mat3 {
	return Mat3(mgl64.Mat3(m).Mul3(mgl64.Mat3(n)))
}

// Translate returns m·Translation(v): v is applied before m.
//
func (m Mat3) Translate(v Vec2) Mat3 {
	return m.Multiply(Translation(v))
}

// Scale returns m·Scaling(v).
//
func (m Mat3) Scale(v Vec2) Mat3 {
	return m.Multiply(Scaling(v))
}

// Rotate returns m·Rotation(angle).
//
func (m Mat3) Rotate(angle float64) Mat3 {
	return m.Multiply(Rotation(angle))
}

// Transform applies m to the point p. The homogeneous result is not divided
// by its third component; m is assumed to be affine.
//
func (m Mat3) Transform(p Vec2) Vec2 {
	r := mgl64.Mat3(m).Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Vec2{r[0], r[1]}
}

// At returns the element at the given row and column.
//
func (m Mat3) At(row, col int) float64 {
	return m[col*3+row]
}

// ApproxEqual reports whether all elements of m and n differ by at most eps.
//
func (m Mat3) ApproxEqual(n Mat3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

// Float32 returns the elements of m converted to float32, in column-major
// order.
//
func (m Mat3) Float32() [9]float32 {
	var f [9]float32
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8])
}

func (m Mat3) components(dst []float32) []float32 {
	for _, v := range m {
		dst = append(dst, float32(v))
	}
	return dst
}
