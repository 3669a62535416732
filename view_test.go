package glsprite_test

import (
	"image"
	"testing"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/gl/gltest"
)

func TestView_WorldTransform(t *testing.T) {
	v := glsprite.View{Bounds: image.Rect(0, 0, 800, 600)}
	m := v.WorldTransform()
	for _, td := range []struct {
		p, want glsprite.Vec2
	}{
		{glsprite.V(0, 0), glsprite.V(-1, 1)},
		{glsprite.V(800, 600), glsprite.V(1, -1)},
		{glsprite.V(400, 300), glsprite.V(0, 0)},
	} {
		if got := m.Transform(td.p); !vecEq(got, td.want) {
			t.Errorf("%v maps to %v, want %v", td.p, got, td.want)
		}
	}

	v.Zoom = 2
	v.CenterOn(glsprite.V(100, 100))
	if got := v.WorldTransform().Transform(glsprite.V(100, 100)); !vecEq(got, glsprite.Vec2{}) {
		t.Errorf("center maps to %v, want (0,0)", got)
	}
	if got := v.ScreenToWorld(image.Pt(400, 300)); !vecEq(got, glsprite.V(100, 100)) {
		t.Errorf("ScreenToWorld(center) = %v, want (100,100)", got)
	}

	var empty glsprite.View
	if empty.WorldTransform() != glsprite.Identity() {
		t.Error("empty view must yield the identity")
	}
}

func TestView_Viewport(t *testing.T) {
	ctx := gltest.New()
	v := glsprite.View{Bounds: image.Rect(10, 20, 110, 220)}
	v.Viewport(ctx, image.Pt(200, 300))
	if cs := ctx.Find("Viewport"); len(cs) != 1 || cs[0].String() != "Viewport(10, 80, 100, 200)" {
		t.Errorf("got %v", ctx.Calls)
	}
}

func TestView_offsetBounds(t *testing.T) {
	// a view covering the bottom-right quarter of a 200x100 framebuffer
	v := glsprite.View{Bounds: image.Rect(100, 50, 200, 100), Zoom: 2}
	if p := v.ScreenToWorld(image.Pt(100, 50)); !p.Eq(glsprite.Vec2{}) {
		t.Errorf("top-left of the view maps to %v, want world origin", p)
	}
	if p := v.ScreenToWorld(image.Pt(200, 100)); !p.Eq(glsprite.V(50, 25)) {
		t.Errorf("bottom-right of the view maps to %v, want (50,25)", p)
	}
	ctx := gltest.New()
	v.Viewport(ctx, image.Pt(200, 100))
	if cs := ctx.Find("Viewport"); len(cs) != 1 || cs[0].String() != "Viewport(100, 0, 100, 50)" {
		t.Errorf("got %v", ctx.Calls)
	}
	// the world point under the view's top-left pixel lands on the top-left
	// corner of the viewport in clip space
	if p := v.WorldTransform().Transform(v.ScreenToWorld(v.Bounds.Min)); !p.Eq(glsprite.V(-1, 1)) {
		t.Errorf("clip position = %v, want (-1,1)", p)
	}
}
