// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frames provides a host-side frame scheduler for scribble.
//
// Queue implements scribble.FrameScheduler with requestAnimationFrame
// semantics: callbacks requested during a tick run on the next tick, and a
// cancelled callback never runs. The host decides when a tick happens. A
// gogpu window ticks the queue from its OnDraw callback; a headless run
// drives it with Run.
//
//	queue := frames.NewQueue()
//	app.OnDraw(func(dc *gogpu.Context) {
//	    queue.Tick()
//	    if queue.Len() > 0 && token == nil {
//	        token = app.StartAnimation()
//	    }
//	    ...
//	})
//
// Hosts without an animation mechanism can pass WithWaker instead, so the
// queue asks for a redraw whenever the first request arrives.
package frames
