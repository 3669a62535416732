package glsprite_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/gl/gltest"
)

type future struct {
	fn func(image.Image, error)
}

func (f *future) OnComplete(fn func(image.Image, error)) {
	f.fn = fn
}

func (f *future) complete(img image.Image, err error) {
	f.fn(img, err)
}

func newSprite(r *gltest.Recorder, pos glsprite.Vec2, opts ...glsprite.SpriteOption) (*glsprite.Sprite, *future) {
	var f future
	s := glsprite.NewSpriteFromSource(r, vsSrc, fsSrc, &f, pos, opts...)
	return s, &f
}

func TestSprite_pending(t *testing.T) {
	r := spriteInputs(gltest.New())
	s, f := newSprite(r, glsprite.V(1, 2))
	if f.fn == nil {
		t.Fatal("sprite did not register a completion callback")
	}
	if s.Loaded() {
		t.Fatal("sprite loaded before its image")
	}
	r.Reset()
	s.Render(glsprite.V(1, 1), glsprite.Identity())
	checkNoCalls(t, r)
}

func TestSprite_Render(t *testing.T) {
	r := spriteInputs(gltest.New())
	pos := glsprite.V(100, 50)
	s, f := newSprite(r, pos, glsprite.Size(glsprite.V(16, 16)))
	r.Reset()
	f.complete(image.NewRGBA(image.Rect(0, 0, 64, 64)), nil)
	if !s.Loaded() {
		t.Fatal("sprite not loaded")
	}
	if uv := s.UV(); !uv.Eq(glsprite.V(0.25, 0.25)) {
		t.Errorf("UV() = %v, want (0.25,0.25)", uv)
	}

	// texture parameters
	tp := r.Find("TexParameteri")
	want := map[gl.Enum]int32{
		gl.GL_TEXTURE_WRAP_S:     gl.GL_MIRRORED_REPEAT,
		gl.GL_TEXTURE_WRAP_T:     gl.GL_MIRRORED_REPEAT,
		gl.GL_TEXTURE_MIN_FILTER: gl.GL_NEAREST,
		gl.GL_TEXTURE_MAG_FILTER: gl.GL_NEAREST,
	}
	if len(tp) != len(want) {
		t.Fatalf("got %d TexParameteri calls, want %d", len(tp), len(want))
	}
	for _, c := range tp {
		if v, ok := want[c.Args[1].(gl.Enum)]; !ok || v != c.Args[2].(int32) {
			t.Errorf("unexpected %v", c)
		}
	}

	// quads
	bd := r.Find("BufferData")
	if len(bd) != 2 {
		t.Fatalf("got %d BufferData calls, want 2", len(bd))
	}
	checkCall(t, bd[0], "BufferData", gl.Enum(gl.GL_ARRAY_BUFFER), []float32{
		0, 0, .25, 0, 0, .25,
		0, .25, .25, 0, .25, .25,
	}, gl.Enum(gl.GL_STATIC_DRAW))
	checkCall(t, bd[1], "BufferData", gl.Enum(gl.GL_ARRAY_BUFFER), []float32{
		0, 0, 16, 0, 0, 16,
		0, 16, 16, 0, 16, 16,
	}, gl.Enum(gl.GL_STATIC_DRAW))
	buffers := r.Find("BindBuffer")
	texCoords, geometry := buffers[0].Args[1].(gl.Buffer), buffers[1].Args[1].(gl.Buffer)

	world := glsprite.Scaling(glsprite.V(0.5, 0.5))
	r.Reset()
	s.Render(glsprite.V(2, 1), world)

	draws := r.Find("DrawArrays")
	if len(draws) != 1 {
		t.Fatalf("got %d draw calls, want 1", len(draws))
	}
	checkCall(t, draws[0], "DrawArrays", gl.Enum(gl.GL_TRIANGLES), int32(0), int32(6))
	if last := r.Calls[len(r.Calls)-1]; last.Name != "DrawArrays" {
		t.Errorf("last call is %v", last)
	}
	checkCall(t, r.Calls[0], "UseProgram", gl.Program(3))
	checkCall(t, r.Find("ActiveTexture")[0], "ActiveTexture", gl.Enum(gl.GL_TEXTURE0))
	checkCall(t, r.Find("Uniform1i")[0], "Uniform1i", locImage, int32(0))
	checkCall(t, r.Find("Uniform2f")[0], "Uniform2f", locFrame, float32(0.5), float32(0.25))

	vap := r.Find("VertexAttribPointer")
	if len(vap) != 2 {
		t.Fatalf("got %d VertexAttribPointer calls, want 2", len(vap))
	}
	checkCall(t, vap[0], "VertexAttribPointer", locTexCoord, int32(2), gl.Enum(gl.GL_FLOAT), false, int32(0), int32(0), texCoords)
	checkCall(t, vap[1], "VertexAttribPointer", locPosition, int32(2), gl.Enum(gl.GL_FLOAT), false, int32(0), int32(0), geometry)

	mats := r.Find("UniformMatrix3fv")
	if len(mats) != 2 {
		t.Fatalf("got %d UniformMatrix3fv calls, want 2", len(mats))
	}
	w32, o32 := world.Float32(), glsprite.Translation(pos).Float32()
	checkCall(t, mats[0], "UniformMatrix3fv", locWorld, false, w32[:])
	checkCall(t, mats[1], "UniformMatrix3fv", locObject, false, o32[:])

	// frame indices are floored
	r.Reset()
	s.Render(glsprite.V(2.9, -0.5), world)
	checkCall(t, r.Find("Uniform2f")[0], "Uniform2f", locFrame, float32(0.5), float32(-0.25))

	// moving the sprite changes the object transform only
	s.SetPosition(glsprite.V(-3, 4))
	r.Reset()
	s.Render(glsprite.Vec2{}, world)
	o32 = glsprite.Translation(glsprite.V(-3, 4)).Float32()
	checkCall(t, r.Find("UniformMatrix3fv")[1], "UniformMatrix3fv", locObject, false, o32[:])
}

func TestSprite_loadError(t *testing.T) {
	buf := captureLog(t)
	r := spriteInputs(gltest.New())
	s, f := newSprite(r, glsprite.Vec2{})
	r.Reset()
	f.complete(nil, errors.New("load image asset x.png: file does not exist"))
	if s.Loaded() {
		t.Fatal("sprite loaded after a failed load")
	}
	s.Render(glsprite.Vec2{}, glsprite.Identity())
	checkNoCalls(t, r)
	if !strings.Contains(buf.String(), "x.png") {
		t.Errorf("load error not logged:\n%s", buf)
	}

	// late success is ignored
	f.complete(image.NewRGBA(image.Rect(0, 0, 32, 32)), nil)
	if s.Loaded() {
		t.Error("sprite completed twice")
	}
	checkNoCalls(t, r)
}

func TestSprite_emptyImage(t *testing.T) {
	r := spriteInputs(gltest.New())
	s, f := newSprite(r, glsprite.Vec2{})
	r.Reset()
	f.complete(image.NewRGBA(image.Rectangle{}), nil)
	if s.Loaded() {
		t.Error("sprite loaded from an empty image")
	}
	checkNoCalls(t, r)
}

func TestSprite_completeOnce(t *testing.T) {
	r := spriteInputs(gltest.New())
	s, f := newSprite(r, glsprite.Vec2{})
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	f.complete(img, nil)
	f.complete(img, nil)
	if n := r.Count("CreateTexture"); n != 1 {
		t.Errorf("created %d textures, want 1", n)
	}
	if uv := s.UV(); !uv.Eq(glsprite.V(1, 1)) {
		t.Errorf("default 32x32 size gives UV %v, want (1,1)", uv)
	}
}

func TestSprite_disabledMaterial(t *testing.T) {
	r := spriteInputs(gltest.New())
	r.LinkError = "link failed"
	s, f := newSprite(r, glsprite.Vec2{})
	f.complete(image.NewRGBA(image.Rect(0, 0, 32, 32)), nil)
	if !s.Loaded() {
		t.Fatal("texture not loaded")
	}
	r.Reset()
	s.Render(glsprite.V(1, 0), glsprite.Identity())
	checkNoCalls(t, r)
}

func TestSprite_options(t *testing.T) {
	r := gltest.New()
	r.Attribs = []gltest.Var{
		{Name: "pos", Type: gl.GL_FLOAT_VEC2},
		{Name: "uv", Type: gl.GL_FLOAT_VEC2},
	}
	r.Uniforms = []gltest.Var{
		{Name: "tex", Type: gl.GL_SAMPLER_2D},
		{Name: "frame", Type: gl.GL_FLOAT_VEC2},
		{Name: "world", Type: gl.GL_FLOAT_MAT3},
		{Name: "object", Type: gl.GL_FLOAT_MAT3},
	}
	names := glsprite.ParameterNames{Position: "pos", TexCoord: "uv", Image: "tex", Frame: "frame", World: "world", Object: "object"}
	s, f := newSprite(r, glsprite.Vec2{}, glsprite.Names(names), glsprite.TextureUnit(3), glsprite.Size(glsprite.V(8, 4)))
	f.complete(image.NewRGBA(image.Rect(0, 0, 16, 16)), nil)
	if sz := s.Size(); !sz.Eq(glsprite.V(8, 4)) {
		t.Errorf("Size() = %v", sz)
	}
	r.Reset()
	s.Render(glsprite.V(1, 1), glsprite.Identity())
	checkCall(t, r.Find("ActiveTexture")[0], "ActiveTexture", gl.Enum(gl.GL_TEXTURE0+3))
	checkCall(t, r.Find("Uniform1i")[0], "Uniform1i", gl.Uniform(0), int32(3))
	checkCall(t, r.Find("Uniform2f")[0], "Uniform2f", gl.Uniform(1), float32(0.5), float32(0.25))
	if n := r.Count("VertexAttribPointer"); n != 2 {
		t.Errorf("got %d VertexAttribPointer calls, want 2", n)
	}
	if n := r.Count("UniformMatrix3fv"); n != 2 {
		t.Errorf("got %d UniformMatrix3fv calls, want 2", n)
	}
}

func TestSprite_Delete(t *testing.T) {
	r := spriteInputs(gltest.New())
	s, f := newSprite(r, glsprite.Vec2{})
	f.complete(image.NewRGBA(image.Rect(0, 0, 32, 32)), nil)
	s.Delete()
	if s.Texture() != nil {
		t.Error("deleted sprite still has a texture")
	}
	if sh, p, b, tx := r.Live(); sh+p+b+tx != 0 {
		t.Errorf("leaked %d shaders, %d programs, %d buffers, %d textures", sh, p, b, tx)
	}
	r.Reset()
	s.Render(glsprite.Vec2{}, glsprite.Identity())
	checkNoCalls(t, r)
}

func TestSprite_LoadedImage(t *testing.T) {
	r := spriteInputs(gltest.New())
	s := glsprite.NewSpriteFromSource(r, vsSrc, fsSrc,
		glsprite.LoadedImage{Image: image.NewRGBA(image.Rect(0, 0, 48, 12))},
		glsprite.Vec2{}, glsprite.Size(glsprite.V(12, 12)))
	if !s.Loaded() {
		t.Fatal("sprite with an available image is pending")
	}
	if uv := s.UV(); !uv.Eq(glsprite.V(0.25, 1)) {
		t.Errorf("UV() = %v, want (0.25, 1)", uv)
	}
	if sz := s.Texture().Size(); sz != image.Pt(48, 12) {
		t.Errorf("texture size = %v", sz)
	}
}

func TestNewDefaultSprite(t *testing.T) {
	r := spriteInputs(gltest.New())
	var f future
	s := glsprite.NewDefaultSprite(r, &f, glsprite.Vec2{})
	srcs := r.Find("ShaderSource")
	if len(srcs) != 2 ||
		srcs[0].Args[1] != glsprite.DefaultVertexShader ||
		srcs[1].Args[1] != glsprite.DefaultFragmentShader {
		t.Fatal("default shader sources not used")
	}
	for _, name := range []string{"a_position", "a_texCoord", "u_image", "u_frame", "u_world", "u_object"} {
		if !strings.Contains(glsprite.DefaultVertexShader+glsprite.DefaultFragmentShader, name) {
			t.Errorf("default shaders do not declare %s", name)
		}
	}
	f.complete(image.NewRGBA(image.Rect(0, 0, 32, 32)), nil)
	r.Reset()
	s.Render(glsprite.Vec2{}, glsprite.Identity())
	if n := r.Count("DrawArrays"); n != 1 {
		t.Errorf("got %d draw calls, want 1", n)
	}
}
