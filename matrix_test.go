package glsprite_test

import (
	"math"
	"testing"

	"github.com/db47h/glsprite"
)

const eps = 1e-12

// mul is a reference column-major product.
func mul(a, b glsprite.Mat3) glsprite.Mat3 {
	var r glsprite.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[k*3+row] * b[col*3+k]
			}
			r[col*3+row] = s
		}
	}
	return r
}

func vecEq(a, b glsprite.Vec2) bool {
	return math.Abs(a.X-b.X) <= 1e-9 && math.Abs(a.Y-b.Y) <= 1e-9
}

var testMats = []glsprite.Mat3{
	glsprite.Identity(),
	glsprite.Translation(glsprite.V(3, -2)),
	glsprite.Scaling(glsprite.V(2, 0.5)),
	glsprite.Rotation(math.Pi / 6),
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{0.5, -1, 0, 2, 0.25, 0, -3, 7, 1},
}

func TestMat3_Multiply(t *testing.T) {
	for i, a := range testMats {
		for j, b := range testMats {
			if got, want := a.Multiply(b), mul(a, b); !got.ApproxEqual(want, eps) {
				t.Errorf("%d*%d: got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestMat3_identity(t *testing.T) {
	id := glsprite.Identity()
	if id != (glsprite.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Fatalf("Identity() = %v", id)
	}
	for _, m := range testMats {
		if id.Multiply(m) != m || m.Multiply(id) != m {
			t.Errorf("identity product changed %v", m)
		}
	}
}

func TestMat3_associativity(t *testing.T) {
	for _, a := range testMats {
		for _, b := range testMats {
			for _, c := range testMats {
				l := a.Multiply(b).Multiply(c)
				r := a.Multiply(b.Multiply(c))
				if !l.ApproxEqual(r, 1e-9) {
					t.Fatalf("(ab)c = %v, a(bc) = %v", l, r)
				}
			}
		}
	}
}

func TestMat3_Translate(t *testing.T) {
	v := glsprite.V(5, -7)
	m := glsprite.Identity().Translate(v)
	if p := m.Transform(glsprite.Vec2{}); !p.Eq(v) {
		t.Errorf("origin maps to %v, want %v", p, v)
	}
	if m.At(0, 2) != 5 || m.At(1, 2) != -7 || m[6] != 5 || m[7] != -7 {
		t.Errorf("translation not in third column: %v", m)
	}

	// with a non identity linear part, translation is applied first
	s := glsprite.Scaling(glsprite.V(2, 3))
	got := s.Translate(glsprite.V(1, 1)).Transform(glsprite.Vec2{})
	if want := glsprite.V(2, 3); !vecEq(got, want) {
		t.Errorf("S·T(1,1) maps origin to %v, want %v", got, want)
	}
	if !s.Translate(v).ApproxEqual(mul(s, glsprite.Translation(v)), eps) {
		t.Error("Translate is not a homogeneous product")
	}
}

func TestMat3_Scale(t *testing.T) {
	m := glsprite.Identity().Scale(glsprite.V(3, 4))
	if p := m.Transform(glsprite.V(1, 1)); !p.Eq(glsprite.V(3, 4)) {
		t.Errorf("(1,1) maps to %v, want (3,4)", p)
	}
	tr := glsprite.Translation(glsprite.V(10, 20)).Scale(glsprite.V(2, 2))
	if p := tr.Transform(glsprite.V(1, 1)); !vecEq(p, glsprite.V(12, 22)) {
		t.Errorf("T·S maps (1,1) to %v, want (12,22)", p)
	}
}

func TestMat3_Rotate(t *testing.T) {
	m := glsprite.Identity().Rotate(math.Pi / 2)
	if p := m.Transform(glsprite.V(1, 0)); !vecEq(p, glsprite.V(0, 1)) {
		t.Errorf("(1,0) rotated by pi/2 = %v, want (0,1)", p)
	}
}

func TestMat3_Float32(t *testing.T) {
	m := glsprite.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	f := m.Float32()
	for i := range f {
		if f[i] != float32(m[i]) {
			t.Fatalf("element %d: got %g, want %g", i, f[i], m[i])
		}
	}
	if m.At(2, 0) != 3 || m.At(0, 1) != 4 {
		t.Errorf("At does not follow column-major layout")
	}
}
