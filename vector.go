package glsprite

import (
	"fmt"
	"image"
	"math"
)

// Vec2 is a 2D vector or point.
//
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2          { return Vec2{x, y} }
func VPt(p image.Point) Vec2       { return Vec2{float64(p.X), float64(p.Y)} }
func (v Vec2) Add(w Vec2) Vec2     { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2     { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Mul(k float64) Vec2  { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Div(k float64) Vec2  { return Vec2{v.X / k, v.Y / k} }
func (v Vec2) MulV(w Vec2) Vec2    { return Vec2{v.X * w.X, v.Y * w.Y} }
func (v Vec2) DivV(w Vec2) Vec2    { return Vec2{v.X / w.X, v.Y / w.Y} }
func (v Vec2) Floor() Vec2         { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }
func (v Vec2) Eq(w Vec2) bool      { return v.X == w.X && v.Y == w.Y }
func (v Vec2) Float32() [2]float32 { return [2]float32{float32(v.X), float32(v.Y)} }

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

func (v Vec2) components(dst []float32) []float32 {
	return append(dst, float32(v.X), float32(v.Y))
}
