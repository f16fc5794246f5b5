package recording

import "fmt"

// CommandType identifies the type of a command.
// Each command type corresponds to one Surface operation.
type CommandType uint8

const (
	// Path commands
	CmdBeginPath CommandType = iota // Discard the current path
	CmdMoveTo                       // Start a subpath
	CmdLineTo                       // Extend the current subpath

	// Drawing commands
	CmdStroke     // Stroke the current path
	CmdFillRect   // Fill a rectangle
	CmdStrokeRect // Stroke a rectangle
	CmdClear      // Reset the surface to its background
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPath:  "BeginPath",
	CmdMoveTo:     "MoveTo",
	CmdLineTo:     "LineTo",
	CmdStroke:     "Stroke",
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
	CmdClear:      "Clear",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether commands of this type put pixels on the surface.
// Path construction commands do not.
func (c CommandType) IsDraw() bool {
	switch c {
	case CmdStroke, CmdFillRect, CmdStrokeRect, CmdClear:
		return true
	default:
		return false
	}
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// String formats the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new subpath at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a straight segment to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes the outline of an axis-aligned rectangle.
type StrokeRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// ClearCommand resets the surface to its background.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }
