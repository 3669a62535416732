package glsprite

import (
	"image"

	"github.com/db47h/glsprite/gl"
	"golang.org/x/image/draw"
)

// TextureFilter selects how to filter textures when minifying or magnifying.
//
type TextureFilter int32

// TextureFilter values map directly to their OpenGL equivalents.
//
const (
	Nearest TextureFilter = gl.GL_NEAREST
	Linear  TextureFilter = gl.GL_LINEAR
)

// TextureWrap selects how textures wrap when texture coordinates get outside of
// the range [0, 1].
//
type TextureWrap int32

// TextureWrap values map directly to their OpenGL equivalents.
//
const (
	Repeat         TextureWrap = gl.GL_REPEAT
	MirroredRepeat TextureWrap = gl.GL_MIRRORED_REPEAT
	ClampToEdge    TextureWrap = gl.GL_CLAMP_TO_EDGE
)

// A Texture is a 2D RGBA OpenGL texture.
//
type Texture struct {
	ctx    gl.Context
	width  int
	height int
	id     gl.Texture
}

type tp struct {
	wrapS, wrapT         TextureWrap
	minFilter, magFilter TextureFilter
}

// TextureParameter is implemented by functions setting texture parameters. See NewTexture.
//
type TextureParameter interface {
	set(*tp)
}

type textureOptionFunc func(*tp)

func (f textureOptionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the GL_TEXTURE_WRAP_S and GL_TEXTURE_WRAP_T texture parameters.
//
func Wrap(wrapS, wrapT TextureWrap) TextureParameter {
	return textureOptionFunc(func(p *tp) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the GL_TEXTURE_MIN_FILTER and GL_TEXTURE_MAG_FILTER texture parameters.
//
func Filter(min, mag TextureFilter) TextureParameter {
	return textureOptionFunc(func(p *tp) {
		p.minFilter = min
		p.magFilter = mag
	})
}

// NewTexture creates a new texture of the same dimensions as the source image.
// Regardless of the source image type, the resulting texture is always in RGBA
// format. The texture is left bound to GL_TEXTURE_2D on the active texture
// unit.
//
func NewTexture(ctx gl.Context, src image.Image, params ...TextureParameter) *Texture {
	t := &Texture{ctx: ctx, id: ctx.CreateTexture()}
	ctx.BindTexture(gl.GL_TEXTURE_2D, t.id)
	t.setParams(params...)
	t.upload(src)
	Logger().Debug("texture created", "id", t.id, "width", t.width, "height", t.height)
	return t
}

// Upload replaces the contents of the texture with src. The texture takes the
// dimensions of src and is left bound to GL_TEXTURE_2D on the active texture
// unit.
//
func (t *Texture) Upload(src image.Image) {
	t.ctx.BindTexture(gl.GL_TEXTURE_2D, t.id)
	t.upload(src)
}

func (t *Texture) upload(src image.Image) {
	var (
		pix []uint8
		sr  = src.Bounds()
		dr  = image.Rectangle{Max: sr.Size()}
	)
	if i, ok := src.(*image.RGBA); ok && i.Stride == 4*dr.Dx() && sr.Min == (image.Point{}) {
		pix = i.Pix
	} else {
		dst := image.NewRGBA(dr)
		draw.Draw(dst, dr, src, sr.Min, draw.Src)
		pix = dst.Pix
	}
	t.width, t.height = dr.Dx(), dr.Dy()
	t.ctx.TexImage2D(gl.GL_TEXTURE_2D, 0, int32(t.width), int32(t.height), pix)
}

// Parameters sets the given texture parameters.
//
func (t *Texture) Parameters(params ...TextureParameter) {
	if len(params) == 0 {
		return
	}
	t.ctx.BindTexture(gl.GL_TEXTURE_2D, t.id)
	t.setParams(params...)
}

func (t *Texture) setParams(params ...TextureParameter) {
	var tp tp
	for _, p := range params {
		p.set(&tp)
	}
	if tp.wrapS != 0 {
		t.ctx.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_WRAP_S, int32(tp.wrapS))
	}
	if tp.wrapT != 0 {
		t.ctx.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_WRAP_T, int32(tp.wrapT))
	}
	if tp.minFilter != 0 {
		t.ctx.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_MIN_FILTER, int32(tp.minFilter))
	}
	if tp.magFilter != 0 {
		t.ctx.TexParameteri(gl.GL_TEXTURE_2D, gl.GL_TEXTURE_MAG_FILTER, int32(tp.magFilter))
	}
}

// Bind binds the texture to GL_TEXTURE_2D on the active texture unit.
//
func (t *Texture) Bind() {
	t.ctx.BindTexture(gl.GL_TEXTURE_2D, t.id)
}

// Size returns the size of the texture.
//
func (t *Texture) Size() image.Point {
	return image.Point{t.width, t.height}
}

// NativeID returns the native identifier of the texture.
//
func (t *Texture) NativeID() gl.Texture {
	return t.id
}

// Delete deletes the texture.
//
func (t *Texture) Delete() {
	if t.id != 0 {
		t.ctx.DeleteTexture(t.id)
		t.id = 0
	}
}
