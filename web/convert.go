// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package web

import (
	"errors"
	"image/color"
	"strconv"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrNoAnimationFrame is returned by Scheduler when the global object has
// no requestAnimationFrame.
var ErrNoAnimationFrame = errors.New("web: requestAnimationFrame unavailable")

// DOM names of the pointer events a Page listens to.
const (
	eventPointerDown = "pointerdown"
	eventPointerMove = "pointermove"
	eventPointerUp   = "pointerup"
)

// pointerEventType maps a DOM event name to its gpucontext type.
func pointerEventType(name string) (gpucontext.PointerEventType, bool) {
	switch name {
	case eventPointerDown:
		return gpucontext.PointerDown, true
	case eventPointerMove:
		return gpucontext.PointerMove, true
	case eventPointerUp:
		return gpucontext.PointerUp, true
	case "pointercancel":
		return gpucontext.PointerCancel, true
	case "pointerenter":
		return gpucontext.PointerEnter, true
	case "pointerleave":
		return gpucontext.PointerLeave, true
	default:
		return 0, false
	}
}

// pointerType maps the DOM pointerType string.
func pointerType(s string) gpucontext.PointerType {
	switch s {
	case "touch":
		return gpucontext.PointerTypeTouch
	case "pen":
		return gpucontext.PointerTypePen
	default:
		return gpucontext.PointerTypeMouse
	}
}

// domPointer holds the PointerEvent fields read from the DOM.
type domPointer struct {
	ID        int
	OffsetX   float64
	OffsetY   float64
	Pressure  float64
	Width     float64
	Height    float64
	Type      string
	IsPrimary bool
	Button    int
	Buttons   int
	TimeStamp float64 // milliseconds
}

func (p domPointer) event(typ gpucontext.PointerEventType) gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   p.ID,
		X:           p.OffsetX,
		Y:           p.OffsetY,
		Pressure:    float32(p.Pressure),
		Width:       float32(p.Width),
		Height:      float32(p.Height),
		PointerType: pointerType(p.Type),
		IsPrimary:   p.IsPrimary,
		Button:      gpucontext.Button(p.Button),
		Buttons:     gpucontext.Buttons(p.Buttons),
		Timestamp:   time.Duration(p.TimeStamp * float64(time.Millisecond)),
	}
}

// cssColor formats c for fillStyle and strokeStyle.
func cssColor(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	cf, _ := colorful.MakeColor(c)
	if a == 0xffff {
		return cf.Clamped().Hex()
	}
	r, g, b := cf.Clamped().RGB255()
	return "rgba(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + "," +
		strconv.FormatFloat(float64(a)/0xffff, 'f', 3, 64) + ")"
}
