// Package glsprite draws textured quads with OpenGL.
//
// A Material wraps a linked shader program together with the table of its
// active inputs, discovered once at link time, and uploads values to those
// inputs by name. A Sprite owns a Material, a texture and two vertex buffers
// and draws one frame of a sprite sheet per call to Render.
//
// All types in this package must be used from the goroutine that owns the GL
// context.
//
package glsprite

import (
	"image"

	"github.com/db47h/glsprite/gl"
)

// A View maps world coordinates to clip space for a framebuffer.
//
// World coordinates are in pixels at zoom 1, with (0,0) at the top-left of the
// view and the Y axis pointing down.
//
// Bounds uses the same orientation: framebuffer pixels with (0,0) at the
// top-left corner of the framebuffer, like cursor positions. Viewport converts
// it to GL window coordinates.
//
type View struct {
	Bounds image.Rectangle // framebuffer pixels covered by the view, origin top-left
	Origin Vec2            // world coordinates of the top-left point
	Zoom   float64         // 0 is treated as 1
}

func (v *View) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// CenterOn sets the view origin so that the world point p is at the center of
// the view.
//
func (v *View) CenterOn(p Vec2) {
	z := v.zoom()
	v.Origin = p.Sub(VPt(v.Bounds.Size()).Div(2 * z))
}

// WorldTransform returns the transform from world coordinates to clip space.
// Drivers recompute it whenever Bounds, Origin or Zoom change and pass it to
// Sprite.Render.
//
func (v *View) WorldTransform() Mat3 {
	sz := VPt(v.Bounds.Size())
	if sz.X == 0 || sz.Y == 0 {
		return Identity()
	}
	z := v.zoom()
	return Translation(Vec2{-1, 1}).
		Scale(Vec2{2 * z / sz.X, -2 * z / sz.Y}).
		Translate(v.Origin.Mul(-1))
}

// ScreenToWorld converts framebuffer pixel coordinates, origin top-left, to
// world coordinates.
//
func (v *View) ScreenToWorld(p image.Point) Vec2 {
	return VPt(p.Sub(v.Bounds.Min)).Div(v.zoom()).Add(v.Origin)
}

// Viewport sets the GL viewport to the view bounds in a framebuffer of size
// fb. GL places the viewport by its lower-left corner, so the Y coordinate is
// flipped.
//
func (v *View) Viewport(ctx gl.Context, fb image.Point) {
	b := v.Bounds
	ctx.Viewport(int32(b.Min.X), int32(fb.Y-b.Max.Y), int32(b.Dx()), int32(b.Dy()))
}
