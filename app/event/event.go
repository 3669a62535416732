// Package event defines the input events delivered to app.EventHandler.
//
package event

// Interface is implemented by all events.
//
type Interface interface{}

// Action tells key presses, repeats and releases apart.
//
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Key is a key event. Code is the driver specific key code.
//
type Key struct {
	Code   int
	Name   string
	Action Action
}

// Scroll is a mouse wheel or touchpad scroll event.
//
type Scroll struct {
	DX, DY float64
}

// CursorPos is a cursor move event, in window coordinates relative to the top
// left corner.
//
type CursorPos struct {
	X, Y float64
}

// FrameBufferSize is sent when the framebuffer is resized.
//
type FrameBufferSize struct {
	Width, Height int
}
