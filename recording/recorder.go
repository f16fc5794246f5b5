package recording

// Target is anything a recording can be replayed onto. Its method set is
// the scribble Surface interface, so every scribble surface (gg-backed,
// browser, or another Recorder) is a Target.
type Target interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	Clear()
}

// Recorder captures Surface operations as commands instead of rasterizing
// them. It is the surface used by tests to observe exactly what was drawn,
// and by the headless host to export a session to any registered backend.
//
// Example:
//
//	rec := recording.NewRecorder(640, 480)
//	rec.BeginPath()
//	rec.MoveTo(10, 10)
//	rec.LineTo(20, 20)
//	rec.Stroke()
//	r := rec.FinishRecording()
//	r.Playback(backend)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// Ensure Recorder is a Target.
var _ Target = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the recording width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the recording height.
func (r *Recorder) Height() int {
	return r.height
}

// BeginPath records a BeginPathCommand.
func (r *Recorder) BeginPath() {
	r.commands = append(r.commands, BeginPathCommand{})
}

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveToCommand{X: x, Y: y})
}

// LineTo records a LineToCommand.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineToCommand{X: x, Y: y})
}

// Stroke records a StrokeCommand.
func (r *Recorder) Stroke() {
	r.commands = append(r.commands, StrokeCommand{})
}

// FillRect records a FillRectCommand.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.commands = append(r.commands, FillRectCommand{Rect: NewRect(x, y, w, h)})
}

// StrokeRect records a StrokeRectCommand.
func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.commands = append(r.commands, StrokeRectCommand{Rect: NewRect(x, y, w, h)})
}

// Clear records a ClearCommand.
func (r *Recorder) Clear() {
	r.commands = append(r.commands, ClearCommand{})
}

// Commands returns the commands recorded so far. The slice is shared with
// the Recorder and must not be modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording of the commands captured
// so far. The Recorder remains usable; later commands do not affect the
// returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Target or Backend.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the recording width.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the recording height.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Draws returns the commands that put pixels on the surface, in order.
func (r *Recording) Draws() []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type().IsDraw() {
			out = append(out, c)
		}
	}
	return out
}

// Replay issues every recorded command on t, in order.
func (r *Recording) Replay(t Target) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginPathCommand:
			t.BeginPath()
		case MoveToCommand:
			t.MoveTo(c.X, c.Y)
		case LineToCommand:
			t.LineTo(c.X, c.Y)
		case StrokeCommand:
			t.Stroke()
		case FillRectCommand:
			t.FillRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
		case StrokeRectCommand:
			t.StrokeRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
		case ClearCommand:
			t.Clear()
		}
	}
}

// Playback replays the recording to the given backend, bracketed by
// Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	r.Replay(backend)
	return backend.End()
}
