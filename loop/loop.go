// Package loop provides simple and fixed-timestep event loops.
//
package loop

import (
	"time"
)

// EventProcessor wraps the ProcessEvents method.
//
// It is up to the implementation to either poll events or wait for events.
// Applications using a wait-for-event model should however only use the Simple
// event loop.
//
// Graphical applications that need to swap buffers should swap their buffers in
// their ProcessEvents method, before actually processing events.
//
type EventProcessor interface {
	ProcessEvents() (quit bool)
}

// Frame describes the frame being rendered.
//
type Frame struct {
	Start time.Time     // time stamp at the beginning of the loop iteration
	Time  time.Duration // duration of the previous loop iteration, clamped to MaxFT
	Alpha float64       // fraction of a timestep left in the accumulator, in [0, 1)
}

// FixedStepUpdater is the interface implemented by applications run by
// FixedStep.
//
type FixedStepUpdater interface {
	EventProcessor
	Update(timestep time.Duration)
	Render(f Frame)
}

// SimpleUpdater is the interface implemented by applications run by Simple.
//
type SimpleUpdater interface {
	EventProcessor
	Update()
	Render(f Frame)
}

// Simple provides a very simple event loop suited for applications that use a
// wait-for-event model.
//
type Simple struct {
	ticker *time.Ticker
	minFT  time.Duration
	clock  func() time.Time
}

// MinFrameTime sets the minimum frame time.
//
// If the t value is greater than 0, the frame rate will be clamped
// to time.Second/t.
//
func (l *Simple) MinFrameTime(t time.Duration) {
	if t == l.minFT {
		return
	}
	l.stopTicker()
	l.minFT = t
	if l.minFT > 0 {
		l.ticker = time.NewTicker(l.minFT)
	}
}

func (l *Simple) now() time.Time {
	if l.ticker != nil {
		return <-l.ticker.C
	}
	if l.clock != nil {
		return l.clock()
	}
	return time.Now()
}

func (l *Simple) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// Run runs the loop until a.ProcessEvents returns true.
//
func (l *Simple) Run(a SimpleUpdater) {
	prev := l.now()
	for !a.ProcessEvents() {
		now := l.now()
		a.Update()
		a.Render(Frame{Start: now, Time: now.Sub(prev)})
		prev = now
	}
	l.stopTicker()
}

// FixedStep runs updates at a fixed timestep and renders once per loop
// iteration.
//
type FixedStep struct {
	Simple
	MaxFT time.Duration // maximum frame time
	DT    time.Duration // timestep
}

// Default timings for FixedStep.
//
const (
	DefaultDT    time.Duration = time.Second / 240
	DefaultMaxFT time.Duration = time.Second / 4
)

// Run runs the loop until a.ProcessEvents returns true. Each iteration calls
// Update as many times as there are whole timesteps in the time accumulated
// since the previous iteration, then calls Render once.
//
func (l *FixedStep) Run(a FixedStepUpdater) {
	if l.DT <= 0 {
		l.DT = DefaultDT
	}
	if l.MaxFT <= 0 {
		l.MaxFT = DefaultMaxFT
	}

	var (
		tPrev = l.now()
		tAcc  time.Duration
	)
	for !a.ProcessEvents() {
		now := l.now()
		ft := now.Sub(tPrev)
		if ft > l.MaxFT {
			ft = l.MaxFT
		}
		tAcc += ft
		tPrev = now
		for ; tAcc >= l.DT; tAcc -= l.DT {
			a.Update(l.DT)
		}
		a.Render(Frame{Start: now, Time: ft, Alpha: float64(tAcc) / float64(l.DT)})
	}
	l.stopTicker()
}
