package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gpucontext"
)

type point struct {
	X, Y float64
}

// parseDrag parses a drag script: whitespace-separated "x,y" points. The
// first point is the press, the last the release, and any in between are
// moves.
func parseDrag(s string) ([]point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("drag %q: need at least a press and a release point", s)
	}
	pts := make([]point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("drag point %q: want x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %q: %w", f, err)
		}
		pts = append(pts, point{x, y})
	}
	return pts, nil
}

// scriptSource is a gpucontext.PointerEventSource fed from a drag script.
type scriptSource struct {
	handlers []func(gpucontext.PointerEvent)
}

func (s *scriptSource) OnPointer(fn func(gpucontext.PointerEvent)) {
	s.handlers = append(s.handlers, fn)
}

// play delivers pts as one primary-mouse drag.
func (s *scriptSource) play(pts []point) {
	for i, p := range pts {
		ev := gpucontext.PointerEvent{
			PointerID:   1,
			X:           p.X,
			Y:           p.Y,
			Width:       1,
			Height:      1,
			PointerType: gpucontext.PointerTypeMouse,
			IsPrimary:   true,
			Button:      gpucontext.ButtonNone,
			Buttons:     gpucontext.ButtonsLeft,
			Pressure:    0.5,
		}
		switch i {
		case 0:
			ev.Type = gpucontext.PointerDown
			ev.Button = gpucontext.ButtonLeft
		case len(pts) - 1:
			ev.Type = gpucontext.PointerUp
			ev.Button = gpucontext.ButtonLeft
			ev.Buttons = gpucontext.ButtonsNone
			ev.Pressure = 0
		default:
			ev.Type = gpucontext.PointerMove
		}
		for _, fn := range s.handlers {
			fn(ev)
		}
	}
}
