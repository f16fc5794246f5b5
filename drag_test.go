package scribble

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble/recording"
)

func newTestTracker(cfg Config) (*DragTracker, *recording.Recorder) {
	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	return NewDragTracker(rec, cfg), rec
}

func assertCommands(t *testing.T, got, want []recording.Command) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestDragTrackerScenario(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	tr.PointerDown(10, 10)
	tr.PointerMove(20, 20)
	tr.PointerUp(30, 30)

	assertCommands(t, rec.Commands(), []recording.Command{
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 10, Y: 10},
		recording.LineToCommand{X: 20, Y: 20},
		recording.StrokeCommand{},
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 20, Y: 20},
		recording.LineToCommand{X: 30, Y: 30},
		recording.StrokeCommand{},
		recording.FillRectCommand{Rect: recording.NewRect(30, 30, 10, 10)},
	})
	if tr.Drawing() {
		t.Error("Drawing() = true after release, want false")
	}
}

func TestDragTrackerDownSetsDrawing(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	if tr.Drawing() {
		t.Fatal("new tracker should be idle")
	}
	tr.PointerDown(5, 7)
	if !tr.Drawing() {
		t.Error("Drawing() = false after press, want true")
	}
	assertCommands(t, rec.Commands(), []recording.Command{
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 5, Y: 7},
	})
}

func TestDragTrackerStrokeCount(t *testing.T) {
	for _, moves := range []int{0, 1, 5, 20} {
		tr, rec := newTestTracker(DefaultConfig())

		tr.PointerDown(0, 0)
		for i := 1; i <= moves; i++ {
			tr.PointerMove(float64(i), float64(i))
		}
		tr.PointerUp(100, 100)

		r := rec.FinishRecording()
		if got := r.Count(recording.CmdStroke); got != moves+1 {
			t.Errorf("moves=%d: strokes = %d, want %d", moves, got, moves+1)
		}
		if got := r.Count(recording.CmdFillRect); got != 1 {
			t.Errorf("moves=%d: fills = %d, want 1", moves, got)
		}
	}
}

func TestDragTrackerMoveWhileIdle(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	tr.PointerMove(1, 1)
	tr.PointerMove(2, 2)
	if rec.Len() != 0 {
		t.Errorf("idle moves recorded %v, want nothing", rec.Commands())
	}

	// Also idle after a completed drag.
	tr.PointerDown(0, 0)
	tr.PointerUp(1, 1)
	n := rec.Len()
	tr.PointerMove(50, 50)
	if rec.Len() != n {
		t.Errorf("move after release recorded %v", rec.Commands()[n:])
	}
}

func TestDragTrackerUpWhileIdle(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	tr.PointerUp(40, 40)

	assertCommands(t, rec.Commands(), []recording.Command{
		recording.LineToCommand{X: 40, Y: 40},
		recording.StrokeCommand{},
		recording.FillRectCommand{Rect: recording.NewRect(40, 40, 10, 10)},
	})
	if tr.Drawing() {
		t.Error("Drawing() = true after idle release")
	}
}

func TestDragTrackerOutlineMarker(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig().WithMarker(6, MarkerOutline))

	tr.PointerDown(1, 1)
	tr.PointerUp(2, 3)

	cmds := rec.Commands()
	last := cmds[len(cmds)-1]
	want := recording.StrokeRectCommand{Rect: recording.NewRect(2, 3, 6, 6)}
	if last != want {
		t.Errorf("marker = %#v, want %#v", last, want)
	}
	if n := rec.FinishRecording().Count(recording.CmdFillRect); n != 0 {
		t.Errorf("fills = %d, want 0", n)
	}
}

func TestDragTrackerSecondDrag(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	tr.PointerDown(0, 0)
	tr.PointerUp(10, 10)
	rec.Reset()

	tr.PointerDown(50, 50)
	tr.PointerMove(60, 60)

	assertCommands(t, rec.Commands(), []recording.Command{
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 50, Y: 50},
		recording.LineToCommand{X: 60, Y: 60},
		recording.StrokeCommand{},
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 60, Y: 60},
	})
}

func TestDragTrackerHandlePointer(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())
	src := &fakePointerSource{}
	src.OnPointer(tr.HandlePointer)

	src.send(gpucontext.PointerDown, 10, 10)
	src.send(gpucontext.PointerMove, 20, 20)
	src.send(gpucontext.PointerUp, 30, 30)

	r := rec.FinishRecording()
	if r.Count(recording.CmdStroke) != 2 || r.Count(recording.CmdFillRect) != 1 {
		t.Errorf("HandlePointer drag produced %v", r.Commands())
	}
}

func TestDragTrackerIgnoresOtherEvents(t *testing.T) {
	tr, rec := newTestTracker(DefaultConfig())

	tr.HandlePointer(gpucontext.PointerEvent{Type: gpucontext.PointerDown, X: 1, Y: 1, IsPrimary: false, PointerID: 2})
	if tr.Drawing() || rec.Len() != 0 {
		t.Errorf("secondary pointer started a drag: %v", rec.Commands())
	}

	for _, typ := range []gpucontext.PointerEventType{gpucontext.PointerEnter, gpucontext.PointerLeave, gpucontext.PointerCancel} {
		tr.HandlePointer(gpucontext.PointerEvent{Type: typ, X: 1, Y: 1, IsPrimary: true})
	}
	if rec.Len() != 0 {
		t.Errorf("enter/leave/cancel recorded %v", rec.Commands())
	}
}
