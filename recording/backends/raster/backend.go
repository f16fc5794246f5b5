// Package raster provides a raster backend for the recording system.
// It replays recordings onto a surface.ImageSurface, gg's software
// rasterizer.
//
// The raster backend serves multiple purposes:
//   - Export of headless sessions to PNG, BMP and TIFF
//   - Reference implementation for other backends
//   - Pixel-accurate comparison testing
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/scribble/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/recording"
	"github.com/gogpu/scribble/surface"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, ".png", ".bmp", ".tif", ".tiff")
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to a pixel image.
// It implements recording.StyledBackend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	surface *surface.ImageSurface
	style   scribble.Style
	format  surface.Format
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.StyledBackend = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend writing PNG from WriteTo.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{
		style:  scribble.DefaultStyle(),
		format: surface.FormatPNG,
	}
}

// SetStyle sets the paint used by the following Begin.
func (b *Backend) SetStyle(stroke, fill, background color.Color, lineWidth float64) {
	b.style = scribble.Style{
		Stroke:     stroke,
		Fill:       fill,
		Background: background,
		LineWidth:  lineWidth,
	}
}

// SetFormat selects the encoding used by WriteTo.
func (b *Backend) SetFormat(f surface.Format) {
	b.format = f
}

// Begin initializes the backend for rendering at the given dimensions,
// discarding any previous image.
func (b *Backend) Begin(width, height int) error {
	if b.surface != nil {
		_ = b.surface.Close()
	}
	b.surface = surface.NewImageSurface(width, height, b.style)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// BeginPath starts a new path.
func (b *Backend) BeginPath() {
	if b.surface != nil {
		b.surface.BeginPath()
	}
}

// MoveTo starts a new subpath at (x, y).
func (b *Backend) MoveTo(x, y float64) {
	if b.surface != nil {
		b.surface.MoveTo(x, y)
	}
}

// LineTo adds a line segment to (x, y).
func (b *Backend) LineTo(x, y float64) {
	if b.surface != nil {
		b.surface.LineTo(x, y)
	}
}

// Stroke strokes the current path.
func (b *Backend) Stroke() {
	if b.surface != nil {
		b.surface.Stroke()
	}
}

// FillRect fills a rectangle with the fill color.
func (b *Backend) FillRect(x, y, w, h float64) {
	if b.surface != nil {
		b.surface.FillRect(x, y, w, h)
	}
}

// StrokeRect outlines a rectangle with the stroke color.
func (b *Backend) StrokeRect(x, y, w, h float64) {
	if b.surface != nil {
		b.surface.StrokeRect(x, y, w, h)
	}
}

// Clear resets the image to the background color.
func (b *Backend) Clear() {
	if b.surface != nil {
		b.surface.Clear()
	}
}

// Width returns the image width, or 0 before Begin.
func (b *Backend) Width() int {
	if b.surface == nil {
		return 0
	}
	return b.surface.Width()
}

// Height returns the image height, or 0 before Begin.
func (b *Backend) Height() int {
	if b.surface == nil {
		return 0
	}
	return b.surface.Height()
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.surface == nil {
		return nil
	}
	return b.surface.Image()
}

// WriteTo encodes the image to w in the format chosen with SetFormat.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	img := b.Image()
	if img == nil {
		return 0, ErrNotStarted
	}
	var buf bytes.Buffer
	if err := surface.Encode(&buf, img, b.format); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// SaveToFile saves the image to path, picking the format from its
// extension.
func (b *Backend) SaveToFile(path string) error {
	if b.surface == nil {
		return ErrNotStarted
	}
	return b.surface.Save(path)
}

// Close releases the image.
func (b *Backend) Close() error {
	if b.surface == nil {
		return nil
	}
	err := b.surface.Close()
	b.surface = nil
	return err
}
