package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/app"
	"github.com/db47h/glsprite/app/event"
	"github.com/db47h/glsprite/asset"
	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/loop"
	"github.com/db47h/glsprite/text"
	"github.com/golang/freetype/truetype"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/font/gofont/goregular"
)

type animSprite struct {
	*glsprite.Sprite
	cols, rows int
	fps        float64
}

// frameAt returns the grid coordinates of the frame to display after elapsed
// time. Frames are played left to right, then top to bottom.
//
func frameAt(elapsed time.Duration, fps float64, cols, rows int) glsprite.Vec2 {
	n := cols * rows
	if n <= 1 || fps <= 0 {
		return glsprite.Vec2{}
	}
	i := int(math.Floor(elapsed.Seconds()*fps)) % n
	return glsprite.V(float64(i%cols), float64(i/cols))
}

// cursorPixel converts a cursor position in screen coordinates to framebuffer
// pixels. The two differ on HiDPI displays.
//
func cursorPixel(x, y float64, win, fb image.Point) image.Point {
	if win.X > 0 && win.Y > 0 {
		x *= float64(fb.X) / float64(win.X)
		y *= float64(fb.Y) / float64(win.Y)
	}
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// infoBox is a frame rate readout drawn in screen space at the top-left
// corner of the window.
//
type infoBox struct {
	label  text.Label
	img    *image.RGBA
	sprite *glsprite.Sprite
}

const infoTemplate = "0000 fps"

func newInfoBox(ctx gl.Context, f *truetype.Font, size float64, vs, fs string) *infoBox {
	b := &infoBox{label: text.Label{
		Face:       text.NewFace(f, size, text.HintingFull),
		Background: color.RGBA{A: 192},
		Padding:    2,
	}}
	b.img = image.NewRGBA(image.Rectangle{Max: b.label.Size(infoTemplate)})
	b.label.Draw(b.img, "")
	b.sprite = glsprite.NewSpriteFromSource(ctx, vs, fs,
		glsprite.LoadedImage{Image: b.img},
		glsprite.Vec2{},
		glsprite.Size(glsprite.VPt(b.img.Bounds().Size())))
	return b
}

// SetText redraws the box. Text wider than infoTemplate is clipped.
//
func (b *infoBox) SetText(s string) {
	b.label.Draw(b.img, s)
	if t := b.sprite.Texture(); t != nil {
		t.Upload(b.img)
	}
}

func (b *infoBox) Delete() {
	b.sprite.Delete()
	b.label.Face.Close()
}

type game struct {
	cfg     *Config
	ldr     *asset.Loader
	bar     *progressbar.ProgressBar
	ctx     gl.Context
	view    glsprite.View
	world   glsprite.Mat3
	sprites []animSprite
	elapsed time.Duration
	timer   loop.Timer
	shown   time.Time
	mouse   image.Point
	screen  glsprite.Mat3
	info    *infoBox
}

func (g *game) Init(w app.Window) error {
	g.ctx = w.Context()
	vs, err := g.shader(g.cfg.Assets.Vertex, glsprite.DefaultVertexShader)
	if err != nil {
		return err
	}
	fs, err := g.shader(g.cfg.Assets.Fragment, glsprite.DefaultFragmentShader)
	if err != nil {
		return err
	}
	for _, sc := range g.cfg.Sprites {
		s := glsprite.NewSpriteFromSource(g.ctx, vs, fs,
			g.ldr.Image(sc.Image),
			glsprite.V(sc.Position[0], sc.Position[1]),
			glsprite.Size(glsprite.V(sc.Size[0], sc.Size[1])))
		g.sprites = append(g.sprites, animSprite{s, sc.Frames[0], sc.Frames[1], sc.FPS})
	}
	if g.cfg.Info.Show {
		f, err := g.font(g.cfg.Assets.Font)
		if err != nil {
			return err
		}
		g.info = newInfoBox(g.ctx, f, g.cfg.Info.FontSize, vs, fs)
	}

	// Give the decoders a head start; sprites still pending after this are
	// picked up by Dispatch in Update.
	if err := g.ldr.Wait(); err != nil {
		glsprite.Logger().Warn("some assets failed to load", "error", err)
	}
	g.bar.Finish()

	g.ctx.Enable(gl.GL_BLEND)
	g.ctx.BlendFunc(gl.GL_SRC_ALPHA, gl.GL_ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(g.ctx, g.cfg.ClearColor())
	g.view.Zoom = g.cfg.Zoom
	g.resize(w.FrameBufferSize())
	return nil
}

// shader returns the named shader source, or def if name is empty.
//
func (g *game) shader(name, def string) (string, error) {
	if name == "" {
		g.bar.Add(1)
		return def, nil
	}
	src, err := g.ldr.File(name)
	if err != nil {
		return "", err
	}
	return string(src), nil
}

// font returns the named font, or the built-in Go font if name is empty.
//
func (g *game) font(name string) (*truetype.Font, error) {
	if name == "" {
		g.bar.Add(1)
		return truetype.Parse(goregular.TTF)
	}
	return g.ldr.Font(name)
}

func (g *game) resize(sz image.Point) {
	g.view.Bounds = image.Rectangle{Max: sz}
	g.world = g.view.WorldTransform()
	screen := glsprite.View{Bounds: g.view.Bounds}
	g.screen = screen.WorldTransform()
}

func (g *game) OnFrameBufferSize(_ app.Window, width, height int) {
	g.resize(image.Pt(width, height))
}

func (g *game) OnEvent(w app.Window, e event.Interface) {
	switch e := e.(type) {
	case event.CursorPos:
		g.mouse = cursorPixel(e.X, e.Y, w.Size(), w.FrameBufferSize())
	case event.Scroll:
		// keep the world point under the cursor in place
		p := g.view.ScreenToWorld(g.mouse)
		switch {
		case e.DY < 0:
			g.view.Zoom /= 1.1
		case e.DY > 0:
			g.view.Zoom *= 1.1
		}
		g.view.Origin = g.view.Origin.Add(p).Sub(g.view.ScreenToWorld(g.mouse))
		g.world = g.view.WorldTransform()
	case event.Key:
		if e.Action == event.Press && e.Name == "0" {
			g.view.Origin = glsprite.Vec2{}
			g.view.Zoom = g.cfg.Zoom
			g.world = g.view.WorldTransform()
		}
	}
}

func (g *game) Update(dt time.Duration) {
	g.ldr.Dispatch()
	g.elapsed += dt
}

func (g *game) Render(w app.Window, f loop.Frame) {
	g.timer.Add(f.Time)
	g.ctx.Clear(gl.GL_COLOR_BUFFER_BIT)
	for _, s := range g.sprites {
		s.Render(frameAt(g.elapsed, s.fps, s.cols, s.rows), g.world)
	}
	if g.info != nil {
		g.info.sprite.Render(glsprite.Vec2{}, g.screen)
	}
	if f.Start.Sub(g.shown) >= time.Second {
		g.shown = f.Start
		fps := fmt.Sprintf("%.0f fps", g.timer.AveragePerSecond())
		if g.info != nil {
			g.info.SetText(fps)
		} else {
			w.SetTitle(g.cfg.Window.Title + " - " + fps)
		}
	}
}

func (g *game) Terminate() error {
	for _, s := range g.sprites {
		s.Delete()
	}
	g.sprites = nil
	if g.info != nil {
		g.info.Delete()
		g.info = nil
	}
	return g.ldr.Close()
}
