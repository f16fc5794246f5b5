package scribble

// Surface is the 2D drawing context both the drag tracker and the render
// loop draw into. It follows HTML canvas semantics:
//
//   - BeginPath discards the current path.
//   - MoveTo starts a new subpath; LineTo extends it. LineTo on an empty
//     path behaves like MoveTo.
//   - Stroke renders the current path without discarding it.
//   - FillRect and StrokeRect render a rectangle without touching the
//     current path.
//   - Clear resets every pixel to the surface background.
//
// Implementations live in surface/ (gg-backed), recording/ (command
// capture) and web/ (browser canvas). Surfaces are not safe for concurrent
// use; the host serializes every call.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	Clear()
}
