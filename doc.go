// Package scribble draws freehand strokes from pointer drags while a
// background animation paints small random squares every frame.
//
// # Overview
//
// scribble is a small demonstration of two patterns that show up in every
// interactive 2D program:
//
//   - wiring pointer input to immediate-mode drawing (DragTracker)
//   - a per-frame task that reschedules itself until told to stop (RenderLoop)
//
// Both draw into the same Surface, an HTML-canvas-like drawing context.
// The host supplies the surface, the frame scheduler and the pointer events;
// nothing in this package touches a window system directly.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/scribble"
//	    "github.com/gogpu/scribble/frames"
//	    "github.com/gogpu/scribble/surface"
//	)
//
//	cfg := scribble.DefaultConfig()
//	style, _ := cfg.Style()
//	surf := surface.NewImageSurface(cfg.Width, cfg.Height, style)
//	queue := frames.NewQueue()
//
//	app, err := scribble.Initialize(cfg, surf, queue, events)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Host frame callback:
//	queue.Tick()
//
// # Hosts
//
//   - cmd/scribble: gogpu window, or offscreen with -headless
//   - cmd/scribble-web: browser canvas via WebAssembly (package web)
//
// # Threading
//
// Everything runs on the host's event goroutine. Pointer handlers and frame
// callbacks never block and are never invoked concurrently. DragTracker,
// RenderLoop and App are not safe for concurrent use; SetLogger and Logger
// are.
package scribble
