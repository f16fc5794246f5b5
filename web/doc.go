// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package web hosts scribble in a browser when compiled to js/wasm.
//
// Setup creates a bordered <canvas id="canvas"> sized from the config,
// appends it to the document body and wraps its 2D context as a
// scribble.Surface. Scheduler maps frame requests onto
// requestAnimationFrame, and PointerSource forwards the canvas's
// pointerdown, pointermove and pointerup events with offsetX and offsetY as
// canvas coordinates.
//
//	page, err := web.Setup(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := scribble.Initialize(cfg, page.Surface(), web.NewScheduler(), page.PointerSource())
//
// The conversion helpers in this package build on every platform; the DOM
// bindings require GOOS=js GOARCH=wasm.
package web
