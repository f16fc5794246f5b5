package scribble

import (
	"fmt"
	"math/rand/v2"
)

// RenderLoop paints one randomly placed square per frame, forever, until it
// is stopped.
//
// The frame callback resubmits itself to the FrameScheduler after every
// square. Instead of holding a reference to its own closure, the loop keeps
// a running flag and a generation counter: a frame whose generation no
// longer matches, or which fires after Stop, returns without drawing or
// rescheduling, which ends the chain.
//
// RenderLoop is not safe for concurrent use; the host invokes frame
// callbacks one at a time on the same goroutine that calls Start and Stop.
type RenderLoop struct {
	surface   Surface
	scheduler FrameScheduler
	rnd       *rand.Rand
	onFault   func(error)

	size  float64
	rng   float64
	clear bool

	running    bool
	generation uint64
	handle     FrameHandle
	frames     uint64
	err        error
}

// NewRenderLoop creates a stopped loop painting into s with frames from
// sch. A nil rnd uses the global math/rand/v2 source.
func NewRenderLoop(s Surface, sch FrameScheduler, cfg Config, rnd *rand.Rand) *RenderLoop {
	return &RenderLoop{
		surface:   s,
		scheduler: sch,
		rnd:       rnd,
		size:      cfg.SquareSize,
		rng:       cfg.SquareRange,
		clear:     cfg.ClearEachFrame,
	}
}

// SetFaultHandler installs fn to be called when a frame request is rejected
// while the loop is running.
func (l *RenderLoop) SetFaultHandler(fn func(error)) {
	l.onFault = fn
}

// Start requests the first frame. It fails with ErrLoopRunning if the loop
// is already running, or with a wrapped ErrScheduleRejected if the scheduler
// refuses the request, in which case the loop stays stopped.
func (l *RenderLoop) Start() error {
	if l.running {
		return ErrLoopRunning
	}
	l.generation++
	l.running = true
	l.err = nil
	if err := l.schedule(); err != nil {
		l.running = false
		return err
	}
	Logger().Info("scribble: render loop started", "handle", uint64(l.handle))
	return nil
}

// Stop ends the loop. The frame already scheduled still fires once, sees
// the loop stopped and returns without drawing or rescheduling.
func (l *RenderLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	Logger().Info("scribble: render loop stopped", "frames", l.frames)
}

// Cancel stops the loop and drops the pending frame request, so no further
// callback fires at all.
func (l *RenderLoop) Cancel() {
	l.Stop()
	if l.handle != 0 {
		l.scheduler.CancelFrame(l.handle)
		l.handle = 0
	}
}

// Running reports whether the loop will paint on its next frame.
func (l *RenderLoop) Running() bool {
	return l.running
}

// Handle returns the handle of the most recent frame request, or 0 if none
// is pending.
func (l *RenderLoop) Handle() FrameHandle {
	return l.handle
}

// Frames returns the number of squares painted so far.
func (l *RenderLoop) Frames() uint64 {
	return l.frames
}

// Err returns the scheduling error that terminated the loop, if any.
func (l *RenderLoop) Err() error {
	return l.err
}

func (l *RenderLoop) schedule() error {
	gen := l.generation
	h, err := l.scheduler.RequestFrame(func() { l.onFrame(gen) })
	if err != nil {
		l.handle = 0
		return fmt.Errorf("%w: %w", ErrScheduleRejected, err)
	}
	l.handle = h
	return nil
}

func (l *RenderLoop) onFrame(gen uint64) {
	if gen != l.generation {
		return
	}
	if !l.running {
		l.handle = 0
		return
	}
	if l.clear {
		l.surface.Clear()
	}
	x, y := l.random()*l.rng, l.random()*l.rng
	l.surface.FillRect(x, y, l.size, l.size)
	l.frames++

	if err := l.schedule(); err != nil {
		l.running = false
		l.err = err
		Logger().Error("scribble: render loop aborted", "err", err, "frames", l.frames)
		if l.onFault != nil {
			l.onFault(err)
		}
	}
}

func (l *RenderLoop) random() float64 {
	if l.rnd != nil {
		return l.rnd.Float64()
	}
	return rand.Float64()
}
