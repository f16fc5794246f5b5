package scribble

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble/recording"
)

// fakeMouse is an EventSource with only the legacy mouse callbacks.
type fakeMouse struct {
	gpucontext.NullEventSource
	press   func(gpucontext.MouseButton, float64, float64)
	move    func(float64, float64)
	release func(gpucontext.MouseButton, float64, float64)
}

func (m *fakeMouse) OnMousePress(fn func(gpucontext.MouseButton, float64, float64))   { m.press = fn }
func (m *fakeMouse) OnMouseMove(fn func(float64, float64))                            { m.move = fn }
func (m *fakeMouse) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) { m.release = fn }

// fakeUnified is an EventSource that also delivers pointer events.
type fakeUnified struct {
	gpucontext.NullEventSource
	handler func(gpucontext.PointerEvent)
}

func (u *fakeUnified) OnPointer(fn func(gpucontext.PointerEvent)) { u.handler = fn }

func TestPointerSourceNil(t *testing.T) {
	if PointerSource(nil) != nil {
		t.Error("PointerSource(nil) should be nil")
	}
}

func TestPointerSourcePassThrough(t *testing.T) {
	u := &fakeUnified{}
	got := PointerSource(u)
	if got != gpucontext.PointerEventSource(u) {
		t.Errorf("PointerSource returned %T, want the source itself", got)
	}
}

func TestPointerSourceAdaptsMouse(t *testing.T) {
	m := &fakeMouse{}
	var got []gpucontext.PointerEvent
	PointerSource(m).OnPointer(func(ev gpucontext.PointerEvent) { got = append(got, ev) })

	m.press(gpucontext.MouseButtonLeft, 10, 10)
	m.move(20, 20)
	m.release(gpucontext.MouseButtonLeft, 30, 30)
	m.move(40, 40)

	tests := []struct {
		typ     gpucontext.PointerEventType
		x       float64
		button  gpucontext.Button
		buttons gpucontext.Buttons
	}{
		{gpucontext.PointerDown, 10, gpucontext.ButtonLeft, gpucontext.ButtonsLeft},
		{gpucontext.PointerMove, 20, gpucontext.ButtonNone, gpucontext.ButtonsLeft},
		{gpucontext.PointerUp, 30, gpucontext.ButtonLeft, gpucontext.ButtonsNone},
		{gpucontext.PointerMove, 40, gpucontext.ButtonNone, gpucontext.ButtonsNone},
	}
	if len(got) != len(tests) {
		t.Fatalf("events = %d, want %d", len(got), len(tests))
	}
	for i, tt := range tests {
		ev := got[i]
		if ev.Type != tt.typ || ev.X != tt.x || ev.Y != tt.x {
			t.Errorf("event %d = %v at (%v,%v), want %v at (%v,%v)", i, ev.Type, ev.X, ev.Y, tt.typ, tt.x, tt.x)
		}
		if ev.Button != tt.button || ev.Buttons != tt.buttons {
			t.Errorf("event %d buttons = %v/%v, want %v/%v", i, ev.Button, ev.Buttons, tt.button, tt.buttons)
		}
		if !ev.IsPrimary || ev.PointerID != mousePointerID || ev.PointerType != gpucontext.PointerTypeMouse {
			t.Errorf("event %d is not the primary mouse pointer: %+v", i, ev)
		}
	}
	if got[0].Pressure != 0.5 || got[2].Pressure != 0 {
		t.Errorf("pressure = %v / %v, want 0.5 held and 0 released", got[0].Pressure, got[2].Pressure)
	}
}

func TestPointerSourceButtons(t *testing.T) {
	tests := []struct {
		in      gpucontext.MouseButton
		button  gpucontext.Button
		buttons gpucontext.Buttons
	}{
		{gpucontext.MouseButtonLeft, gpucontext.ButtonLeft, gpucontext.ButtonsLeft},
		{gpucontext.MouseButtonRight, gpucontext.ButtonRight, gpucontext.ButtonsRight},
		{gpucontext.MouseButtonMiddle, gpucontext.ButtonMiddle, gpucontext.ButtonsMiddle},
	}
	for _, tt := range tests {
		if got := buttonFor(tt.in); got != tt.button {
			t.Errorf("buttonFor(%v) = %v, want %v", tt.in, got, tt.button)
		}
		if got := buttonsFor(tt.in); got != tt.buttons {
			t.Errorf("buttonsFor(%v) = %v, want %v", tt.in, got, tt.buttons)
		}
	}
}

func TestPointerSourceDrivesTracker(t *testing.T) {
	m := &fakeMouse{}
	rec := recording.NewRecorder(100, 100)
	tr := NewDragTracker(rec, DefaultConfig())
	PointerSource(m).OnPointer(tr.HandlePointer)

	m.press(gpucontext.MouseButtonLeft, 10, 10)
	m.move(20, 20)
	m.release(gpucontext.MouseButtonLeft, 30, 30)

	r := rec.FinishRecording()
	if r.Count(recording.CmdStroke) != 2 || r.Count(recording.CmdFillRect) != 1 {
		t.Errorf("mouse drag produced %v", r.Commands())
	}
}
