package app

import (
	"fmt"
	"image"
	"time"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/app/event"
	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/gl/gl21"
	"github.com/db47h/glsprite/loop"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// DriverVersion returns the GLFW and OpenGL versions in use. It must be called
// after Main has called Init.
//
func DriverVersion() string {
	if d, ok := drv.(*glfwDriver); ok && d.w != nil {
		return fmt.Sprintf("GLFW %s - %s", glfw.GetVersionString(), d.w.ctx.Version())
	}
	return "GLFW " + glfw.GetVersionString()
}

var drv driver = new(glfwDriver)

type glfwDriver struct {
	w *window
	a Interface
}

func (d *glfwDriver) init(a Interface, opts ...WindowOption) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init GLFW")
	}
	d.a = a

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Samples, 4)

	if err := d.createWindow(opts...); err != nil {
		glfw.Terminate()
		return err
	}

	w := d.w
	if h, ok := a.(FrameBufferSizeHandler); ok {
		w.onFrameBufferSize = h
	}
	if h, ok := a.(EventHandler); ok {
		w.onEvent = h
	}
	glsprite.Logger().Info("window created", "driver", DriverVersion(), "framebuffer", w.fb)
	return nil
}

func (d *glfwDriver) terminate() {
	if d.w != nil {
		d.w.glfw.Destroy()
		d.w = nil
	}
	glfw.Terminate()
}

func (d *glfwDriver) createWindow(opts ...WindowOption) error {
	cfg := defaultConfig()
	for _, o := range opts {
		o.set(&cfg)
	}

	var (
		monitor *glfw.Monitor
		width   = cfg.w
		height  = cfg.h
	)
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	if cfg.hidden || (!cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0) {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	w, err := glfw.CreateWindow(width, height, cfg.title, monitor, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	if !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0 {
		w.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			w.Show()
		}
	}

	w.MakeContextCurrent()
	ctx, err := gl21.Init(glfw.GetProcAddress)
	if err != nil {
		w.Destroy()
		return err
	}
	glfw.SwapInterval(cfg.vsync)

	fw, fh := w.GetFramebufferSize()
	d.w = &window{glfw: w, ctx: ctx, fb: image.Pt(fw, fh)}
	ctx.Viewport(0, 0, int32(fw), int32(fh))
	w.SetFramebufferSizeCallback(d.w.frameBufferSizeCallback)
	w.SetKeyCallback(d.w.keyCallback)
	w.SetScrollCallback(d.w.scrollCallback)
	w.SetCursorPosCallback(d.w.cursorPosCallback)
	return nil
}

func (d *glfwDriver) run(a Interface) {
	l := loop.FixedStep{}
	if t, ok := a.(Timing); ok {
		l.DT = t.Timestep()
	}
	glfw.PollEvents()
	l.Run(&runner{w: d.w, a: a})
}

func (d *glfwDriver) window() Window {
	return d.w
}

// runner adapts an Interface to loop.FixedStepUpdater.
//
type runner struct {
	w     *window
	a     Interface
	first bool
}

func (r *runner) ProcessEvents() bool {
	if r.first {
		r.w.glfw.SwapBuffers()
	}
	r.first = true
	glfw.PollEvents()
	return r.w.glfw.ShouldClose()
}

func (r *runner) Update(dt time.Duration) {
	r.a.Update(dt)
}

func (r *runner) Render(f loop.Frame) {
	r.a.Render(r.w, f)
}

type window struct {
	fb                image.Point
	glfw              *glfw.Window
	ctx               *gl21.Context
	onFrameBufferSize FrameBufferSizeHandler
	onEvent           EventHandler
}

func (w *window) NativeHandle() interface{} {
	return w.glfw
}

func (w *window) Context() gl.Context {
	return w.ctx
}

func (w *window) Size() image.Point {
	width, height := w.glfw.GetSize()
	return image.Pt(width, height)
}

func (w *window) FrameBufferSize() image.Point {
	return w.fb
}

func (w *window) SetTitle(title string) {
	w.glfw.SetTitle(title)
}

func (w *window) Close() {
	w.glfw.SetShouldClose(true)
}

func (w *window) event(e event.Interface) {
	if h := w.onEvent; h != nil {
		h.OnEvent(w, e)
	}
}

func (w *window) frameBufferSizeCallback(_ *glfw.Window, width int, height int) {
	w.fb = image.Pt(width, height)
	w.ctx.Viewport(0, 0, int32(width), int32(height))
	if h := w.onFrameBufferSize; h != nil {
		h.OnFrameBufferSize(w, width, height)
	}
	w.event(event.FrameBufferSize{Width: width, Height: height})
}

func (w *window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.glfw.SetShouldClose(true)
		return
	}
	var a event.Action
	switch action {
	case glfw.Press:
		a = event.Press
	case glfw.Repeat:
		a = event.Repeat
	}
	w.event(event.Key{Code: int(key), Name: glfw.GetKeyName(key, scancode), Action: a})
}

func (w *window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.event(event.Scroll{DX: xoff, DY: yoff})
}

func (w *window) cursorPosCallback(_ *glfw.Window, x, y float64) {
	w.event(event.CursorPos{X: x, Y: y})
}
