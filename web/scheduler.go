// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"sync"
	"syscall/js"

	"github.com/gogpu/scribble"
)

// Scheduler is a scribble.FrameScheduler over requestAnimationFrame.
type Scheduler struct {
	mu      sync.Mutex
	pending map[scribble.FrameHandle]js.Func
}

// Ensure Scheduler implements scribble.FrameScheduler.
var _ scribble.FrameScheduler = (*Scheduler)(nil)

// NewScheduler returns a scheduler bound to the global window.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[scribble.FrameHandle]js.Func)}
}

// RequestFrame calls window.requestAnimationFrame. The browser's request
// id is the handle.
func (s *Scheduler) RequestFrame(fn func()) (scribble.FrameHandle, error) {
	raf := js.Global().Get("requestAnimationFrame")
	if raf.Type() != js.TypeFunction {
		return 0, ErrNoAnimationFrame
	}

	var h scribble.FrameHandle
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		s.mu.Lock()
		delete(s.pending, h)
		s.mu.Unlock()
		cb.Release()
		fn()
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	h = scribble.FrameHandle(js.Global().Call("requestAnimationFrame", cb).Int())
	s.pending[h] = cb
	return h, nil
}

// CancelFrame calls window.cancelAnimationFrame and releases the callback.
func (s *Scheduler) CancelFrame(h scribble.FrameHandle) {
	s.mu.Lock()
	cb, ok := s.pending[h]
	delete(s.pending, h)
	s.mu.Unlock()
	if !ok {
		return
	}
	js.Global().Call("cancelAnimationFrame", int(h))
	cb.Release()
}
