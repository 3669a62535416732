package main

import (
	"image"
	"testing"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/gl/gltest"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCursorPixel(t *testing.T) {
	for _, td := range []struct {
		x, y    float64
		win, fb image.Point
		want    image.Point
	}{
		{10, 20, image.Pt(800, 600), image.Pt(800, 600), image.Pt(10, 20)},
		{10, 20, image.Pt(800, 600), image.Pt(1600, 1200), image.Pt(20, 40)},
		{10.75, 20.25, image.Pt(800, 600), image.Pt(1600, 1200), image.Pt(21, 40)},
		{10, 20, image.Point{}, image.Point{}, image.Pt(10, 20)},
	} {
		if got := cursorPixel(td.x, td.y, td.win, td.fb); got != td.want {
			t.Errorf("cursorPixel(%g, %g, %v, %v) = %v, want %v", td.x, td.y, td.win, td.fb, got, td.want)
		}
	}
}

func TestInfoBox(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	r := gltest.New()
	b := newInfoBox(r, f, 14, glsprite.DefaultVertexShader, glsprite.DefaultFragmentShader)
	s := b.sprite
	if !s.Loaded() {
		t.Fatal("info box sprite is pending")
	}
	sz := b.label.Size(infoTemplate)
	if got := s.Size(); !got.Eq(glsprite.VPt(sz)) {
		t.Errorf("sprite size = %v, want %v", got, sz)
	}
	if uv := s.UV(); !uv.Eq(glsprite.V(1, 1)) {
		t.Errorf("UV() = %v, want (1,1)", uv)
	}

	r.Reset()
	b.SetText("60 fps")
	c := r.Find("TexImage2D")
	if len(c) != 1 || c[0].Args[2] != int32(sz.X) || c[0].Args[3] != int32(sz.Y) {
		t.Errorf("TexImage2D calls after SetText: %v", c)
	}
	if got := s.Texture().Size(); got != sz {
		t.Errorf("texture size changed to %v", got)
	}

	b.Delete()
	if sh, p, buf, tx := r.Live(); sh+p+buf+tx != 0 {
		t.Errorf("leaked %d shaders, %d programs, %d buffers, %d textures", sh, p, buf, tx)
	}
}
