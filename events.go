package scribble

import "github.com/gogpu/gpucontext"

// PointerSource returns a unified pointer event source for src.
//
// Hosts that already implement gpucontext.PointerEventSource are returned
// as is. Otherwise the mouse callbacks of src are adapted: press, move and
// release become PointerDown, PointerMove and PointerUp events of a primary
// mouse pointer. A nil src yields nil.
func PointerSource(src gpucontext.EventSource) gpucontext.PointerEventSource {
	if src == nil {
		return nil
	}
	if pes, ok := src.(gpucontext.PointerEventSource); ok {
		return pes
	}
	return mouseSource{src: src}
}

// mouseSource adapts the legacy mouse callbacks of an EventSource.
type mouseSource struct {
	src gpucontext.EventSource
}

// mousePointerID is the W3C pointerId conventionally used for the mouse.
const mousePointerID = 1

func (m mouseSource) OnPointer(fn func(gpucontext.PointerEvent)) {
	var buttons gpucontext.Buttons

	m.src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		buttons |= buttonsFor(b)
		fn(mouseEvent(gpucontext.PointerDown, x, y, buttonFor(b), buttons))
	})
	m.src.OnMouseMove(func(x, y float64) {
		fn(mouseEvent(gpucontext.PointerMove, x, y, gpucontext.ButtonNone, buttons))
	})
	m.src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		buttons &^= buttonsFor(b)
		fn(mouseEvent(gpucontext.PointerUp, x, y, buttonFor(b), buttons))
	})
}

func mouseEvent(typ gpucontext.PointerEventType, x, y float64, b gpucontext.Button, bs gpucontext.Buttons) gpucontext.PointerEvent {
	var pressure float32
	if bs != gpucontext.ButtonsNone {
		pressure = 0.5
	}
	return gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   mousePointerID,
		X:           x,
		Y:           y,
		Pressure:    pressure,
		Width:       1,
		Height:      1,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Button:      b,
		Buttons:     bs,
	}
}

func buttonFor(b gpucontext.MouseButton) gpucontext.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return gpucontext.ButtonLeft
	case gpucontext.MouseButtonRight:
		return gpucontext.ButtonRight
	case gpucontext.MouseButtonMiddle:
		return gpucontext.ButtonMiddle
	default:
		return gpucontext.ButtonNone
	}
}

func buttonsFor(b gpucontext.MouseButton) gpucontext.Buttons {
	switch b {
	case gpucontext.MouseButtonLeft:
		return gpucontext.ButtonsLeft
	case gpucontext.MouseButtonRight:
		return gpucontext.ButtonsRight
	case gpucontext.MouseButtonMiddle:
		return gpucontext.ButtonsMiddle
	default:
		return gpucontext.ButtonsNone
	}
}
