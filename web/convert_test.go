// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package web

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/recording"
)

func TestPointerEventType(t *testing.T) {
	tests := []struct {
		name string
		want gpucontext.PointerEventType
		ok   bool
	}{
		{"pointerdown", gpucontext.PointerDown, true},
		{"pointermove", gpucontext.PointerMove, true},
		{"pointerup", gpucontext.PointerUp, true},
		{"pointercancel", gpucontext.PointerCancel, true},
		{"mousedown", 0, false},
	}
	for _, tt := range tests {
		got, ok := pointerEventType(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("pointerEventType(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPointerType(t *testing.T) {
	tests := map[string]gpucontext.PointerType{
		"mouse": gpucontext.PointerTypeMouse,
		"pen":   gpucontext.PointerTypePen,
		"touch": gpucontext.PointerTypeTouch,
		"":      gpucontext.PointerTypeMouse,
	}
	for in, want := range tests {
		if got := pointerType(in); got != want {
			t.Errorf("pointerType(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDOMPointerEvent(t *testing.T) {
	p := domPointer{
		ID:        7,
		OffsetX:   12.5,
		OffsetY:   30,
		Pressure:  0.5,
		Width:     1,
		Height:    1,
		Type:      "pen",
		IsPrimary: true,
		Button:    0,
		Buttons:   1,
		TimeStamp: 1500,
	}
	ev := p.event(gpucontext.PointerDown)

	if ev.Type != gpucontext.PointerDown {
		t.Errorf("Type = %v, want PointerDown", ev.Type)
	}
	if ev.PointerID != 7 || ev.X != 12.5 || ev.Y != 30 {
		t.Errorf("id/pos = %d (%v,%v), want 7 (12.5,30)", ev.PointerID, ev.X, ev.Y)
	}
	if ev.PointerType != gpucontext.PointerTypePen || !ev.IsPrimary {
		t.Errorf("PointerType = %v, IsPrimary = %v", ev.PointerType, ev.IsPrimary)
	}
	if ev.Button != gpucontext.ButtonLeft || !ev.Buttons.HasLeft() {
		t.Errorf("Button = %v, Buttons = %v, want left", ev.Button, ev.Buttons)
	}
	if ev.Timestamp != 1500*time.Millisecond {
		t.Errorf("Timestamp = %v, want 1.5s", ev.Timestamp)
	}
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{nil, "transparent"},
		{color.RGBA{}, "transparent"},
		{color.Black, "#000000"},
		{color.RGBA{R: 255, G: 128, A: 255}, "#ff8000"},
		{color.NRGBA{R: 255, A: 128}, "rgba(255,0,0,0.502)"},
	}
	for _, tt := range tests {
		if got := cssColor(tt.in); got != tt.want {
			t.Errorf("cssColor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// noRAFScheduler fails the way Scheduler does in a window without
// requestAnimationFrame.
type noRAFScheduler struct{}

func (noRAFScheduler) RequestFrame(func()) (scribble.FrameHandle, error) {
	return 0, ErrNoAnimationFrame
}

func (noRAFScheduler) CancelFrame(scribble.FrameHandle) {}

func TestNoAnimationFrameError(t *testing.T) {
	cfg := scribble.DefaultConfig()
	loop := scribble.NewRenderLoop(recording.NewRecorder(cfg.Width, cfg.Height),
		noRAFScheduler{}, cfg, rand.New(rand.NewPCG(1, 2)))

	err := loop.Start()
	if !errors.Is(err, scribble.ErrScheduleRejected) || !errors.Is(err, ErrNoAnimationFrame) {
		t.Fatalf("Start() error = %v, want ErrScheduleRejected wrapping ErrNoAnimationFrame", err)
	}
	if n := strings.Count(err.Error(), scribble.ErrScheduleRejected.Error()); n != 1 {
		t.Errorf("error %q repeats %q %d times, want once", err, scribble.ErrScheduleRejected, n)
	}
}
