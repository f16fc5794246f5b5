package recording

import (
	"image/color"
	"io"
)

// Backend is the interface that all export backends must implement.
// Backends receive the recorded Surface operations and translate them to
// their output format (raster pixels, SVG elements, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Implement every Target method (even if no-op for some)
//  3. Keep canvas path semantics: Stroke keeps the current path, FillRect
//     and StrokeRect leave it untouched
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	Target

	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, SaveToFile) can be used.
	End() error
}

// StyledBackend is implemented by backends whose paint can be configured.
// SetStyle must be called before Begin.
type StyledBackend interface {
	Backend

	// SetStyle sets the stroke and fill paint, the background used by
	// Clear, and the stroke width.
	SetStyle(stroke, fill, background color.Color, lineWidth float64)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
