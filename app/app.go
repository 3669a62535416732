// Package app opens a window with an OpenGL 2.1 context and runs an
// application in a fixed-timestep loop.
//
package app

import (
	"image"
	"runtime"
	"time"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/app/event"
	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/loop"
)

func init() {
	runtime.LockOSThread()
}

// Main opens a window, calls a.Init, runs the main loop until the window is
// closed, then calls a.Terminate. It must be called from the main goroutine.
//
// Terminate is called even if Init fails, so that resources acquired before
// the failure are released. In that case the Init error is returned.
//
func Main(a Interface, opts ...WindowOption) error {
	if err := drv.init(a, opts...); err != nil {
		return err
	}
	defer drv.terminate()
	if err := a.Init(drv.window()); err != nil {
		if terr := a.Terminate(); terr != nil {
			glsprite.Logger().Error("terminate after failed init", "error", terr)
		}
		return err
	}
	drv.run(a)
	return a.Terminate()
}

// Window is an application window together with its GL context.
//
type Window interface {
	NativeHandle() interface{}
	Context() gl.Context
	// Size is in screen coordinates, the unit of cursor positions.
	// FrameBufferSize is in pixels. They differ on HiDPI displays.
	Size() image.Point
	FrameBufferSize() image.Point
	SetTitle(title string)
	Close()
}

type driver interface {
	init(Interface, ...WindowOption) error
	terminate()
	run(Interface)
	window() Window
}

// Interface is implemented by applications run by Main.
//
// Update is called at a fixed timestep and Render once per frame, both from
// the goroutine that owns the GL context.
//
type Interface interface {
	Init(Window) error
	Terminate() error

	Update(dt time.Duration)
	Render(w Window, f loop.Frame)
}

// FrameBufferSizeHandler is implemented by applications that want to be
// notified of framebuffer size changes. The GL viewport is already updated to
// cover the whole framebuffer when OnFrameBufferSize is called.
//
type FrameBufferSizeHandler interface {
	OnFrameBufferSize(w Window, width, height int)
}

// EventHandler is implemented by applications that handle input events.
//
type EventHandler interface {
	OnEvent(w Window, e event.Interface)
}

// Timing is implemented by applications that want a timestep other than
// loop.DefaultDT.
//
type Timing interface {
	Timestep() time.Duration
}

// WindowOption is implemented by option functions passed as arguments to Main.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	fullScreen bool
	hidden     bool
	x, y, w, h int
	title      string
	vsync      int
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

// Title sets the window title.
//
func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

// Pos sets the window position.
//
func Pos(x, y int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.x, cfg.y = x, y
	})
}

// Size sets the window size. The default is 800x600.
//
func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

// FullScreen opens a full screen window on the primary monitor.
//
func FullScreen() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fullScreen = true
	})
}

// Visible sets the initial visibility of the window.
//
func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// SwapInterval sets the swap interval. The default is 1.
//
func SwapInterval(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.vsync = n
	})
}

func defaultConfig() winCfg {
	return winCfg{title: "glsprite", x: -1, y: -1, w: 800, h: 600, vsync: 1}
}
