// Package svg provides an SVG backend for the recording system.
// It translates recorded drawing operations to SVG path elements using
// github.com/ajstarks/svgo.
//
// Every Stroke, FillRect and StrokeRect becomes one <path> element, so a
// session keeps its exact drawing order. Clear discards everything drawn so
// far and starts over from a background rectangle.
//
// # Example
//
//	import _ "github.com/gogpu/scribble/recording/backends/svg"
//
//	backend, _ := recording.NewBackendForPath("sketch.svg")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("sketch.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// ErrNotFinished is returned by output methods called before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend renders recordings to an SVG document.
// It implements recording.StyledBackend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width  int
	height int
	title  string

	style scribble.Style

	body     bytes.Buffer
	elements int

	path     strings.Builder
	open     bool // path has a current point
	segments int

	out      bytes.Buffer
	finished bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.StyledBackend = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend with the default style.
func NewBackend() *Backend {
	return &Backend{style: scribble.DefaultStyle()}
}

// SetStyle sets the paint used by the following drawing operations.
func (b *Backend) SetStyle(stroke, fill, background color.Color, lineWidth float64) {
	b.style = scribble.Style{
		Stroke:     stroke,
		Fill:       fill,
		Background: background,
		LineWidth:  lineWidth,
	}
	if b.style.LineWidth <= 0 {
		b.style.LineWidth = 1
	}
}

// SetTitle sets the document <title>.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// Begin starts a new document of the given size, painted with the
// background color.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.out.Reset()
	b.finished = false
	b.BeginPath()
	b.Clear()
	return nil
}

// End writes the document header, body and trailer.
func (b *Backend) End() error {
	b.out.Reset()
	doc := svgo.New(&b.out)
	doc.Start(b.width, b.height)
	if b.title != "" {
		doc.Title(b.title)
	}
	b.out.Write(b.body.Bytes())
	doc.End()
	b.finished = true
	return nil
}

// BeginPath discards the current path.
func (b *Backend) BeginPath() {
	b.path.Reset()
	b.open = false
	b.segments = 0
}

// MoveTo starts a new subpath at (x, y).
func (b *Backend) MoveTo(x, y float64) {
	fmt.Fprintf(&b.path, "M%s %s ", num(x), num(y))
	b.open = true
}

// LineTo adds a line segment to (x, y). Without a current point it acts
// as MoveTo.
func (b *Backend) LineTo(x, y float64) {
	if !b.open {
		b.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&b.path, "L%s %s ", num(x), num(y))
	b.segments++
}

// Stroke emits the current path as an unfilled stroked element. The path
// is kept.
func (b *Backend) Stroke() {
	if b.segments == 0 {
		return
	}
	b.emit(strings.TrimSpace(b.path.String()), b.strokeStyle())
}

// FillRect emits a filled rectangle without touching the current path.
func (b *Backend) FillRect(x, y, w, h float64) {
	b.emit(rectPath(x, y, w, h), "fill:"+paint(b.style.Fill)+opacity("fill", b.style.Fill)+";stroke:none")
}

// StrokeRect emits an outlined rectangle without touching the current
// path.
func (b *Backend) StrokeRect(x, y, w, h float64) {
	b.emit(rectPath(x, y, w, h), b.strokeStyle())
}

// Clear drops every element drawn so far and paints the background.
func (b *Backend) Clear() {
	b.body.Reset()
	b.elements = 0
	if b.style.Background == nil {
		return
	}
	b.emit(rectPath(0, 0, float64(b.width), float64(b.height)),
		"fill:"+paint(b.style.Background)+opacity("fill", b.style.Background)+";stroke:none")
}

// Elements returns the number of elements in the document body.
func (b *Backend) Elements() int {
	return b.elements
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.finished {
		return ErrNotFinished
	}
	if err := os.WriteFile(path, b.out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: save: %w", err)
	}
	return nil
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	if !b.finished {
		return nil
	}
	return b.out.Bytes()
}

func (b *Backend) emit(d, style string) {
	svgo.New(&b.body).Path(d, style)
	b.elements++
}

func (b *Backend) strokeStyle() string {
	return "fill:none;stroke:" + paint(b.style.Stroke) + opacity("stroke", b.style.Stroke) +
		";stroke-width:" + num(b.style.LineWidth)
}

func rectPath(x, y, w, h float64) string {
	return fmt.Sprintf("M%s %s H%s V%s H%s Z", num(x), num(y), num(x+w), num(y+h), num(x))
}

// paint formats c as an SVG color, "none" for nil or fully transparent.
func paint(c color.Color) string {
	if c == nil {
		return "none"
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return "none"
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}

// opacity returns the property suffix for a translucent color.
func opacity(prop string, c color.Color) string {
	if c == nil {
		return ""
	}
	_, _, _, a := c.RGBA()
	if a == 0 || a == 0xffff {
		return ""
	}
	return ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'f', 3, 64)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
