// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/scribble"
)

// painter implements the canvas path model on top of a gg.Context.
//
// gg consumes its path on Stroke and Fill, while canvas keeps the path
// until the next BeginPath and never lets FillRect touch it. painter keeps
// its own path and copies it into the context for every stroke, so both
// rules hold.
type painter struct {
	ctx    func() *gg.Context
	marked func()

	path *gg.Path
	open bool // path has a current point

	stroke    color.Color
	fill      color.Color
	bg        color.Color
	lineWidth float64
}

func newPainter(ctx func() *gg.Context, marked func(), style scribble.Style) *painter {
	p := &painter{
		ctx:    ctx,
		marked: marked,
		path:   gg.NewPath(),
	}
	p.setStyle(style)
	return p
}

func (p *painter) setStyle(style scribble.Style) {
	def := scribble.DefaultStyle()
	p.stroke = orColor(style.Stroke, def.Stroke)
	p.fill = orColor(style.Fill, def.Fill)
	p.bg = style.Background
	p.lineWidth = style.LineWidth
	if p.lineWidth <= 0 {
		p.lineWidth = def.LineWidth
	}
}

func orColor(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

func (p *painter) BeginPath() {
	p.path.Clear()
	p.open = false
}

func (p *painter) MoveTo(x, y float64) {
	p.path.MoveTo(x, y)
	p.open = true
}

// LineTo on an empty path only sets the current point, as in canvas.
func (p *painter) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.path.LineTo(x, y)
}

func (p *painter) Stroke() {
	dc := p.ctx()
	if dc == nil {
		return
	}
	dc.SetPath(p.path)
	dc.SetColor(p.stroke)
	dc.SetLineWidth(p.lineWidth)
	if err := dc.Stroke(); err != nil {
		scribble.Logger().Warn("surface: stroke failed", "err", err)
	}
	p.marked()
}

func (p *painter) FillRect(x, y, w, h float64) {
	dc := p.ctx()
	if dc == nil {
		return
	}
	dc.ClearPath()
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(p.fill)
	if err := dc.Fill(); err != nil {
		scribble.Logger().Warn("surface: fill failed", "err", err)
	}
	p.marked()
}

func (p *painter) StrokeRect(x, y, w, h float64) {
	dc := p.ctx()
	if dc == nil {
		return
	}
	dc.ClearPath()
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(p.stroke)
	dc.SetLineWidth(p.lineWidth)
	if err := dc.Stroke(); err != nil {
		scribble.Logger().Warn("surface: stroke rect failed", "err", err)
	}
	p.marked()
}

// Clear resets every pixel to the background color, or to transparent when
// the style has none.
func (p *painter) Clear() {
	dc := p.ctx()
	if dc == nil {
		return
	}
	if p.bg == nil {
		dc.Clear()
	} else {
		dc.ClearWithColor(gg.FromColor(p.bg))
	}
	p.marked()
}
