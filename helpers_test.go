package scribble

import (
	"errors"

	"github.com/gogpu/gpucontext"
)

var errFakeReject = errors.New("fake: frame rejected")

// fakeScheduler queues frame callbacks until tick is called.
type fakeScheduler struct {
	next       FrameHandle
	pending    map[FrameHandle]func()
	order      []FrameHandle
	requests   int
	cancelled  []FrameHandle
	rejectNext bool
	rejectAll  bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[FrameHandle]func())}
}

func (s *fakeScheduler) RequestFrame(fn func()) (FrameHandle, error) {
	s.requests++
	if s.rejectAll || s.rejectNext {
		s.rejectNext = false
		return 0, errFakeReject
	}
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next, nil
}

func (s *fakeScheduler) CancelFrame(h FrameHandle) {
	s.cancelled = append(s.cancelled, h)
	delete(s.pending, h)
}

// tick runs the callbacks pending at the time of the call and returns how
// many ran.
func (s *fakeScheduler) tick() int {
	batch := s.order
	s.order = nil
	ran := 0
	for _, h := range batch {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn()
		ran++
	}
	return ran
}

func (s *fakeScheduler) len() int {
	return len(s.pending)
}

// fakePointerSource records the registered handler.
type fakePointerSource struct {
	handler func(gpucontext.PointerEvent)
}

func (f *fakePointerSource) OnPointer(fn func(gpucontext.PointerEvent)) {
	f.handler = fn
}

func (f *fakePointerSource) send(typ gpucontext.PointerEventType, x, y float64) {
	f.handler(gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   1,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
	})
}
