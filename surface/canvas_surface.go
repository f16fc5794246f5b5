// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
)

// CanvasSurface is a scribble.Surface that draws into a ggcanvas.Canvas,
// for presentation in a gogpu window.
//
// Every drawing call marks the canvas dirty; the host presents it once per
// frame with Present.
//
//	cs, err := surface.NewCanvasSurface(app.GPUContextProvider(), 640, 480, style)
//	...
//	app.OnDraw(func(dc *gogpu.Context) {
//	    queue.Tick()
//	    cs.Present(dc.SurfaceView(), dc.SurfaceSize())
//	})
type CanvasSurface struct {
	*painter
	canvas *ggcanvas.Canvas
}

// Ensure CanvasSurface implements scribble.Surface.
var _ scribble.Surface = (*CanvasSurface)(nil)

// NewCanvasSurface creates a GPU-presented surface of the given logical
// size, cleared to the style's background.
func NewCanvasSurface(provider gpucontext.DeviceProvider, width, height int, style scribble.Style) (*CanvasSurface, error) {
	canvas, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("surface: create canvas: %w", err)
	}
	s := &CanvasSurface{canvas: canvas}
	s.painter = newPainter(canvas.Context, canvas.MarkDirty, style)
	s.Clear()
	return s, nil
}

// Size returns the canvas size in logical pixels.
func (s *CanvasSurface) Size() (width, height int) {
	return s.canvas.Size()
}

// Resize changes the canvas size. The canvas contents are discarded and
// cleared to the background.
func (s *CanvasSurface) Resize(width, height int) error {
	if err := s.canvas.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize canvas: %w", err)
	}
	s.Clear()
	return nil
}

// Context returns the underlying gg context, or nil after Close.
func (s *CanvasSurface) Context() *gg.Context {
	return s.canvas.Context()
}

// Present uploads pending changes and draws the canvas into the window
// surface view.
func (s *CanvasSurface) Present(view gpucontext.TextureView, width, height uint32) error {
	return s.canvas.RenderDirect(view, width, height)
}

// Close releases the canvas and its GPU resources.
func (s *CanvasSurface) Close() error {
	return s.canvas.Close()
}
