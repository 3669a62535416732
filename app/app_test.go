package app

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/gl/gltest"
	"github.com/db47h/glsprite/loop"
)

type testWindow struct{ ctx *gltest.Recorder }

func (w testWindow) NativeHandle() interface{}    { return nil }
func (w testWindow) Context() gl.Context          { return w.ctx }
func (w testWindow) Size() image.Point            { return image.Pt(800, 600) }
func (w testWindow) FrameBufferSize() image.Point { return image.Pt(800, 600) }
func (w testWindow) SetTitle(string)              {}
func (w testWindow) Close()                       {}

type testDriver struct {
	ran, terminated bool
}

func (d *testDriver) init(Interface, ...WindowOption) error { return nil }
func (d *testDriver) terminate()                            { d.terminated = true }
func (d *testDriver) run(Interface)                         { d.ran = true }
func (d *testDriver) window() Window                        { return testWindow{gltest.New()} }

type testApp struct {
	initErr    error
	terminated int
}

func (a *testApp) Init(Window) error         { return a.initErr }
func (a *testApp) Terminate() error          { a.terminated++; return nil }
func (a *testApp) Update(time.Duration)      {}
func (a *testApp) Render(Window, loop.Frame) {}

func withDriver(t *testing.T) *testDriver {
	t.Helper()
	d := new(testDriver)
	old := drv
	drv = d
	t.Cleanup(func() { drv = old })
	return d
}

func TestMain_initError(t *testing.T) {
	d := withDriver(t)
	errInit := errors.New("no shaders")
	a := &testApp{initErr: errInit}
	if err := Main(a); err != errInit {
		t.Errorf("Main() = %v, want %v", err, errInit)
	}
	if a.terminated != 1 {
		t.Errorf("Terminate called %d times, want 1", a.terminated)
	}
	if d.ran {
		t.Error("main loop ran after a failed init")
	}
	if !d.terminated {
		t.Error("driver not terminated")
	}
}

func TestMain(t *testing.T) {
	d := withDriver(t)
	a := new(testApp)
	if err := Main(a); err != nil {
		t.Fatal(err)
	}
	if !d.ran || !d.terminated || a.terminated != 1 {
		t.Errorf("ran: %v, driver terminated: %v, app terminated %d times", d.ran, d.terminated, a.terminated)
	}
}
