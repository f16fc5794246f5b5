package scribble

import (
	"math/rand/v2"

	"github.com/gogpu/gpucontext"
)

// Option configures Initialize.
type Option func(*appOptions)

type appOptions struct {
	rnd     *rand.Rand
	onFault func(error)
}

// WithRand sets the random source used to place animation squares.
// Tests use it to make square positions deterministic.
func WithRand(r *rand.Rand) Option {
	return func(o *appOptions) {
		o.rnd = r
	}
}

// WithFaultHandler installs fn to be called when the render loop is
// aborted because a frame request was rejected.
func WithFaultHandler(fn func(error)) Option {
	return func(o *appOptions) {
		o.onFault = fn
	}
}

// App is a running scribble session: a drag tracker wired to the host's
// pointer events and a render loop wired to the host's frame scheduler, both
// drawing into the same surface.
type App struct {
	cfg     Config
	tracker *DragTracker
	loop    *RenderLoop
}

// Initialize validates cfg, registers the drag tracker with events and
// starts the render loop on sch. Every collaborator is required; a missing
// one is a setup failure.
//
// Example:
//
//	app, err := scribble.Initialize(scribble.DefaultConfig(), surf, queue, events)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
func Initialize(cfg Config, s Surface, sch FrameScheduler, events gpucontext.PointerEventSource, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case s == nil:
		return nil, ErrNoSurface
	case sch == nil:
		return nil, ErrNoScheduler
	case events == nil:
		return nil, ErrNoEventSource
	}

	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		cfg:     cfg,
		tracker: NewDragTracker(s, cfg),
		loop:    NewRenderLoop(s, sch, cfg, o.rnd),
	}
	a.loop.SetFaultHandler(o.onFault)

	events.OnPointer(a.tracker.HandlePointer)
	if err := a.loop.Start(); err != nil {
		return nil, err
	}

	Logger().Info("scribble: initialized",
		"width", cfg.Width, "height", cfg.Height,
		"marker", cfg.MarkerStyle, "clearEachFrame", cfg.ClearEachFrame)
	return a, nil
}

// Config returns the configuration the app was initialized with.
func (a *App) Config() Config {
	return a.cfg
}

// Tracker returns the app's drag tracker.
func (a *App) Tracker() *DragTracker {
	return a.tracker
}

// Loop returns the app's render loop.
func (a *App) Loop() *RenderLoop {
	return a.loop
}

// Close cancels the render loop. Pointer handlers stay registered with the
// host, which offers no way to remove them, and keep drawing strokes.
func (a *App) Close() {
	a.loop.Cancel()
}
