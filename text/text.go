// Package text renders strings into images that can be drawn as sprites.
//
// A Label rasterizes a single line of text once into an RGBA image. The image
// is handed to glsprite.NewSprite through Label.Image like any other sprite
// image, or re-uploaded with glsprite.Texture.Upload when the text changes.
//
package text

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/db47h/glsprite"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Hinting selects how to quantize a vector font's glyph nodes.
//
// This is a convenience duplicate of golang.org/x/image/font#Hinting
//
type Hinting int

const (
	HintingNone     Hinting = Hinting(font.HintingNone)
	HintingVertical         = Hinting(font.HintingVertical)
	HintingFull             = Hinting(font.HintingFull)
)

// NewFace returns a face for f at the given size in points, with a DPI of 72
// so that one point is one pixel.
//
func NewFace(f *truetype.Font, size float64, hinting Hinting) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.Hinting(hinting),
	})
}

// A Label draws single lines of text with a given face.
//
type Label struct {
	Face       font.Face
	Color      color.Color // text color, white if nil
	Background color.Color // transparent if nil
	Padding    int         // pixels around the text on each side
}

// Size returns the size of the image Render returns for s. The height depends
// only on the face metrics, so every string drawn with the same label has the
// same height.
//
func (l *Label) Size(s string) image.Point {
	m := l.Face.Metrics()
	w := font.MeasureString(l.Face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return image.Pt(w+2*l.Padding, h+2*l.Padding)
}

// Render returns a new image of size l.Size(s) with s drawn into it.
//
func (l *Label) Render(s string) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: l.Size(s)})
	l.Draw(dst, s)
	return dst
}

// Draw clears dst to the background color and draws s with its top-left
// corner at dst.Bounds().Min, clipped to dst.
//
func (l *Label) Draw(dst draw.Image, s string) {
	var bg image.Image = image.Transparent
	if l.Background != nil {
		bg = image.NewUniform(l.Background)
	}
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)

	var fg image.Image = image.White
	if l.Color != nil {
		fg = image.NewUniform(l.Color)
	}
	org := dst.Bounds().Min.Add(image.Pt(l.Padding, l.Padding))
	d := font.Drawer{
		Dst:  dst,
		Src:  fg,
		Face: l.Face,
		Dot:  fixed.P(org.X, org.Y+l.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// Image renders s and returns it as an ImageFuture that is already complete,
// ready to be passed to glsprite.NewSprite.
//
func (l *Label) Image(s string) glsprite.LoadedImage {
	return glsprite.LoadedImage{Image: l.Render(s)}
}
