package glsprite

import (
	"image"
	"math"

	"github.com/db47h/glsprite/gl"
)

// DefaultSize is the size of a sprite frame when no Size option is given.
//
var DefaultSize = Vec2{32, 32}

// ImageFuture is a pending image load. OnComplete registers a function that
// is called exactly once, on the goroutine that owns the GL context, when the
// image is available or has failed to load.
//
// asset.Future implements ImageFuture.
//
type ImageFuture interface {
	OnComplete(func(img image.Image, err error))
}

// LoadedImage is an ImageFuture for an image that is already available.
// OnComplete calls its argument immediately.
//
type LoadedImage struct {
	image.Image
}

// OnComplete implements ImageFuture.
//
func (i LoadedImage) OnComplete(f func(img image.Image, err error)) {
	f(i.Image, nil)
}

// ParameterNames are the names of the shader inputs driven by a Sprite.
//
// The vertex shader is expected to compute
//
//	u_world * u_object * vec3(a_position, 1.0)
//
// and pass a_texCoord + u_frame to the fragment shader, which samples u_image.
//
type ParameterNames struct {
	Position string // vec2 attribute: quad vertex in sprite pixels
	TexCoord string // vec2 attribute: texture coordinates of the first frame
	Image    string // sampler2D uniform
	Frame    string // vec2 uniform: texture coordinate offset of the current frame
	World    string // mat3 uniform: world transform
	Object   string // mat3 uniform: sprite transform
}

// DefaultNames are the shader input names used unless overridden with the
// Names option.
//
var DefaultNames = ParameterNames{
	Position: "a_position",
	TexCoord: "a_texCoord",
	Image:    "u_image",
	Frame:    "u_frame",
	World:    "u_world",
	Object:   "u_object",
}

type spriteCfg struct {
	size  Vec2
	unit  int
	names ParameterNames
}

// SpriteOption is implemented by option functions passed as arguments to NewSprite.
//
type SpriteOption interface {
	set(*spriteCfg)
}

type spriteOptionFunc func(*spriteCfg)

func (f spriteOptionFunc) set(cfg *spriteCfg) {
	f(cfg)
}

// Size sets the size in pixels of one sprite frame.
//
func Size(sz Vec2) SpriteOption {
	return spriteOptionFunc(func(cfg *spriteCfg) {
		cfg.size = sz
	})
}

// TextureUnit sets the texture unit the sprite texture is bound to when
// rendering. The default is 0.
//
func TextureUnit(unit int) SpriteOption {
	return spriteOptionFunc(func(cfg *spriteCfg) {
		cfg.unit = unit
	})
}

// Names sets the names of the shader inputs driven by the sprite.
//
func Names(names ParameterNames) SpriteOption {
	return spriteOptionFunc(func(cfg *spriteCfg) {
		cfg.names = names
	})
}

// A Sprite draws one frame of a sprite sheet: a grid of equally sized frames
// in a single image.
//
// A Sprite is pending until its image has loaded. Pending sprites do not
// render. Once the image is available, the sprite uploads it as a texture,
// builds its vertex buffers and becomes ready for good.
//
type Sprite struct {
	ctx       gl.Context
	material  *Material
	texture   *Texture
	position  Vec2
	size      Vec2
	uv        Vec2
	geometry  gl.Buffer
	texCoords gl.Buffer
	unit      int
	names     ParameterNames
	loaded    bool
	done      bool
}

// NewSprite returns a new pending Sprite at the given world position, drawn
// with material m. The sprite takes ownership of m. The sprite becomes ready
// when img completes.
//
func NewSprite(ctx gl.Context, m *Material, img ImageFuture, position Vec2, opts ...SpriteOption) *Sprite {
	cfg := spriteCfg{size: DefaultSize, names: DefaultNames}
	for _, o := range opts {
		o.set(&cfg)
	}
	s := &Sprite{
		ctx:      ctx,
		material: m,
		position: position,
		size:     cfg.size,
		unit:     cfg.unit,
		names:    cfg.names,
	}
	img.OnComplete(s.complete)
	return s
}

// NewSpriteFromSource is like NewSprite but builds the sprite's material from
// the given shader sources.
//
func NewSpriteFromSource(ctx gl.Context, vertex, fragment string, img ImageFuture, position Vec2, opts ...SpriteOption) *Sprite {
	return NewSprite(ctx, NewMaterial(ctx, vertex, fragment), img, position, opts...)
}

func (s *Sprite) complete(img image.Image, err error) {
	if s.done {
		return
	}
	s.done = true
	if err != nil {
		Logger().Warn("sprite image not loaded", "error", err)
		return
	}
	if img == nil || img.Bounds().Empty() {
		Logger().Warn("sprite image is empty")
		return
	}
	s.setup(img)
}

func (s *Sprite) setup(img image.Image) {
	s.texture = NewTexture(s.ctx, img,
		Filter(Nearest, Nearest),
		Wrap(MirroredRepeat, MirroredRepeat))
	s.uv = s.size.DivV(VPt(s.texture.Size()))
	s.texCoords = s.newQuad(s.uv)
	s.geometry = s.newQuad(s.size)
	s.loaded = true
	Logger().Debug("sprite ready", "size", s.size, "uv", s.uv)
}

// newQuad creates a buffer holding two triangles covering (0,0)-(sz.X,sz.Y).
//
func (s *Sprite) newQuad(sz Vec2) gl.Buffer {
	w, h := float32(sz.X), float32(sz.Y)
	b := s.ctx.CreateBuffer()
	s.ctx.BindBuffer(gl.GL_ARRAY_BUFFER, b)
	s.ctx.BufferData(gl.GL_ARRAY_BUFFER, []float32{
		0, 0,
		w, 0,
		0, h,
		0, h,
		w, 0,
		w, h,
	}, gl.GL_STATIC_DRAW)
	return b
}

// Loaded returns true once the sprite is ready to render.
//
func (s *Sprite) Loaded() bool {
	return s.loaded
}

// Material returns the sprite's material.
//
func (s *Sprite) Material() *Material {
	return s.material
}

// Texture returns the sprite texture, or nil while the sprite is pending.
// Contents uploaded with Texture.Upload must keep the original dimensions for
// UV to remain valid.
//
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// Position returns the world position of the sprite's top-left corner.
//
func (s *Sprite) Position() Vec2 {
	return s.position
}

// SetPosition moves the sprite.
//
func (s *Sprite) SetPosition(p Vec2) {
	s.position = p
}

// Size returns the size of one frame in pixels.
//
func (s *Sprite) Size() Vec2 {
	return s.size
}

// UV returns the size of one frame in texture coordinates. It is zero until
// the sprite is loaded.
//
func (s *Sprite) UV() Vec2 {
	return s.uv
}

// FrameOffset returns the texture coordinate offset of the given frame.
// Frame indices are truncated towards negative infinity.
//
func (s *Sprite) FrameOffset(frame Vec2) Vec2 {
	return Vec2{math.Floor(frame.X) * s.uv.X, math.Floor(frame.Y) * s.uv.Y}
}

// Transform returns the object transform of the sprite.
//
func (s *Sprite) Transform() Mat3 {
	return Identity().Translate(s.position)
}

// Render draws the given frame of the sprite sheet using the world transform
// world. Frame (i, j) is the frame in column i and row j of the grid.
//
// Render does nothing while the sprite is pending or if its material is
// disabled. Otherwise it issues exactly one draw call of 6 vertices.
//
func (s *Sprite) Render(frame Vec2, world Mat3) {
	if !s.loaded || !s.material.Enabled() {
		return
	}
	m := s.material
	m.Use()

	s.ctx.ActiveTexture(gl.Enum(gl.GL_TEXTURE0 + s.unit))
	s.texture.Bind()
	m.Set(s.names.Image, Sampler(s.unit))

	s.ctx.BindBuffer(gl.GL_ARRAY_BUFFER, s.texCoords)
	m.Set(s.names.TexCoord, Attrib{})
	s.ctx.BindBuffer(gl.GL_ARRAY_BUFFER, s.geometry)
	m.Set(s.names.Position, Attrib{})

	m.Set(s.names.Frame, s.FrameOffset(frame))
	m.Set(s.names.World, world)
	m.Set(s.names.Object, s.Transform())

	s.ctx.DrawArrays(gl.GL_TRIANGLES, 0, 6)
}

// Delete releases the GL resources held by the sprite, including its
// material.
//
func (s *Sprite) Delete() {
	if s.loaded {
		s.ctx.DeleteBuffer(s.geometry)
		s.ctx.DeleteBuffer(s.texCoords)
		s.texture.Delete()
		s.texture = nil
		s.loaded = false
	}
	s.done = true
	s.material.Delete()
}
