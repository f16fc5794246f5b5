// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
)

// CanvasID is the id of the canvas element created by Setup.
const CanvasID = "canvas"

// Page is the browser host: a canvas element and its 2D context.
type Page struct {
	canvas js.Value
	ctx    js.Value
	width  int
	height int
	style  scribble.Style

	listeners []listener
}

type listener struct {
	event string
	fn    js.Func
}

// Setup creates the drawing canvas, sized from cfg with a solid border,
// appends it to the document body and acquires its 2D context.
func Setup(cfg scribble.Config) (*Page, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("%w: no document", scribble.ErrNoSurface)
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return nil, fmt.Errorf("%w: document has no body", scribble.ErrNoSurface)
	}

	canvas := doc.Call("createElement", "canvas")
	if !canvas.Truthy() {
		return nil, fmt.Errorf("%w: createElement(canvas) failed", scribble.ErrNoSurface)
	}
	canvas.Set("id", CanvasID)
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)
	canvas.Get("style").Set("border", "solid")
	body.Call("appendChild", canvas)

	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: canvas has no 2d context", scribble.ErrNoSurface)
	}

	p := &Page{
		canvas: canvas,
		ctx:    ctx,
		width:  cfg.Width,
		height: cfg.Height,
		style:  style,
	}
	ctx.Set("strokeStyle", cssColor(style.Stroke))
	ctx.Set("fillStyle", cssColor(style.Fill))
	ctx.Set("lineWidth", style.LineWidth)
	if style.Background != nil {
		p.Clear()
	}

	scribble.Logger().Info("web: canvas ready", "width", cfg.Width, "height", cfg.Height)
	return p, nil
}

// Surface returns the page as a scribble.Surface.
func (p *Page) Surface() scribble.Surface {
	return p
}

// Canvas returns the canvas element.
func (p *Page) Canvas() js.Value {
	return p.canvas
}

// BeginPath calls ctx.beginPath.
func (p *Page) BeginPath() {
	p.ctx.Call("beginPath")
}

// MoveTo calls ctx.moveTo.
func (p *Page) MoveTo(x, y float64) {
	p.ctx.Call("moveTo", x, y)
}

// LineTo calls ctx.lineTo.
func (p *Page) LineTo(x, y float64) {
	p.ctx.Call("lineTo", x, y)
}

// Stroke calls ctx.stroke.
func (p *Page) Stroke() {
	p.ctx.Call("stroke")
}

// FillRect calls ctx.fillRect.
func (p *Page) FillRect(x, y, w, h float64) {
	p.ctx.Call("fillRect", x, y, w, h)
}

// StrokeRect calls ctx.strokeRect.
func (p *Page) StrokeRect(x, y, w, h float64) {
	p.ctx.Call("strokeRect", x, y, w, h)
}

// Clear erases the canvas, then paints the background if the style has
// one. The current path is kept.
func (p *Page) Clear() {
	p.ctx.Call("clearRect", 0, 0, p.width, p.height)
	if p.style.Background == nil {
		return
	}
	p.ctx.Set("fillStyle", cssColor(p.style.Background))
	p.ctx.Call("fillRect", 0, 0, p.width, p.height)
	p.ctx.Set("fillStyle", cssColor(p.style.Fill))
}

// PointerSource returns the canvas's pointer events as a
// gpucontext.PointerEventSource.
func (p *Page) PointerSource() gpucontext.PointerEventSource {
	return pointerSource{page: p}
}

type pointerSource struct {
	page *Page
}

func (s pointerSource) OnPointer(fn func(gpucontext.PointerEvent)) {
	for _, name := range []string{eventPointerDown, eventPointerMove, eventPointerUp} {
		s.page.listen(name, fn)
	}
}

func (p *Page) listen(name string, fn func(gpucontext.PointerEvent)) {
	typ, _ := pointerEventType(name)
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		fn(readPointer(args[0]).event(typ))
		return nil
	})
	p.canvas.Call("addEventListener", name, cb)
	p.listeners = append(p.listeners, listener{event: name, fn: cb})
}

func readPointer(e js.Value) domPointer {
	return domPointer{
		ID:        e.Get("pointerId").Int(),
		OffsetX:   e.Get("offsetX").Float(),
		OffsetY:   e.Get("offsetY").Float(),
		Pressure:  e.Get("pressure").Float(),
		Width:     e.Get("width").Float(),
		Height:    e.Get("height").Float(),
		Type:      e.Get("pointerType").String(),
		IsPrimary: e.Get("isPrimary").Bool(),
		Button:    e.Get("button").Int(),
		Buttons:   e.Get("buttons").Int(),
		TimeStamp: e.Get("timeStamp").Float(),
	}
}

// Close removes the event listeners and releases their callbacks.
func (p *Page) Close() {
	for _, l := range p.listeners {
		p.canvas.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	p.listeners = nil
}
