package scribble

import "github.com/gogpu/gpucontext"

// DragTracker turns pointer press, move and release events into strokes on
// a Surface.
//
// Each move while drawing strokes one short segment and then restarts the
// path at the new point, so a drag renders as a chain of micro-segments
// rather than one growing path. Release strokes a final segment and marks
// the end of the stroke with a small square.
//
// DragTracker is not safe for concurrent use; the host delivers pointer
// events one at a time.
type DragTracker struct {
	surface     Surface
	drawing     bool
	markerSize  float64
	markerStyle string
}

// NewDragTracker creates an idle tracker drawing into s with the marker
// settings of cfg.
func NewDragTracker(s Surface, cfg Config) *DragTracker {
	return &DragTracker{
		surface:     s,
		markerSize:  cfg.MarkerSize,
		markerStyle: cfg.MarkerStyle,
	}
}

// Drawing reports whether a drag is in progress.
func (t *DragTracker) Drawing() bool {
	return t.drawing
}

// PointerDown starts a stroke at (x, y).
func (t *DragTracker) PointerDown(x, y float64) {
	t.surface.BeginPath()
	t.surface.MoveTo(x, y)
	t.drawing = true
}

// PointerMove extends the stroke to (x, y). It does nothing when no drag is
// in progress.
func (t *DragTracker) PointerMove(x, y float64) {
	if !t.drawing {
		return
	}
	t.surface.LineTo(x, y)
	t.surface.Stroke()
	t.surface.BeginPath()
	t.surface.MoveTo(x, y)
}

// PointerUp ends the stroke at (x, y) and draws the end marker.
//
// It is not guarded by the drag state: a release without a preceding press
// still strokes a segment from wherever the current path ends and draws the
// marker.
func (t *DragTracker) PointerUp(x, y float64) {
	t.drawing = false
	t.surface.LineTo(x, y)
	t.surface.Stroke()
	if t.markerStyle == MarkerOutline {
		t.surface.StrokeRect(x, y, t.markerSize, t.markerSize)
		return
	}
	t.surface.FillRect(x, y, t.markerSize, t.markerSize)
}

// HandlePointer dispatches a unified pointer event. Only the primary
// pointer draws; enter, leave and cancel events are ignored.
func (t *DragTracker) HandlePointer(ev gpucontext.PointerEvent) {
	if !ev.IsPrimary {
		Logger().Debug("scribble: ignoring secondary pointer",
			"id", ev.PointerID, "type", ev.PointerType.String())
		return
	}
	switch ev.Type {
	case gpucontext.PointerDown:
		t.PointerDown(ev.X, ev.Y)
	case gpucontext.PointerMove:
		t.PointerMove(ev.X, ev.Y)
	case gpucontext.PointerUp:
		t.PointerUp(ev.X, ev.Y)
	default:
		Logger().Debug("scribble: ignoring pointer event", "type", ev.Type.String())
	}
}
