// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/scribble"
)

// ImageSurface is an offscreen scribble.Surface rendered by gg's software
// rasterizer.
//
// Example:
//
//	s := surface.NewImageSurface(640, 480, scribble.DefaultStyle())
//	defer s.Close()
//
//	s.BeginPath()
//	s.MoveTo(10, 10)
//	s.LineTo(100, 100)
//	s.Stroke()
//
//	err := s.Save("out.png")
type ImageSurface struct {
	*painter
	dc     *gg.Context
	width  int
	height int
}

// Ensure ImageSurface implements scribble.Surface.
var _ scribble.Surface = (*ImageSurface)(nil)

// NewImageSurface creates an offscreen surface cleared to the style's
// background. Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int, style scribble.Style) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s := &ImageSurface{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
	s.painter = newPainter(s.context, func() {}, style)
	s.Clear()
	return s
}

func (s *ImageSurface) context() *gg.Context {
	return s.dc
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.height
}

// Context returns the underlying gg context, or nil after Close.
func (s *ImageSurface) Context() *gg.Context {
	return s.dc
}

// Image returns the current surface contents, flushing shapes queued on a
// GPU accelerator first.
func (s *ImageSurface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	if err := s.dc.FlushGPU(); err != nil {
		scribble.Logger().Warn("surface: gpu flush failed", "err", err)
	}
	return s.dc.Image()
}

// Save encodes the surface contents to path; see Encode for the formats.
func (s *ImageSurface) Save(path string) error {
	if s.dc == nil {
		return ErrClosed
	}
	return SaveImage(path, s.Image())
}

// Close releases the gg context. Close is idempotent; drawing after Close
// is a no-op.
func (s *ImageSurface) Close() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}
