// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frames

import (
	"errors"
	"sync"

	"github.com/gogpu/scribble"
)

// Errors returned by Queue.
var (
	// ErrClosed is returned by RequestFrame after Close.
	ErrClosed = errors.New("frames: queue closed")

	// ErrNilCallback is returned by RequestFrame for a nil callback.
	ErrNilCallback = errors.New("frames: nil frame callback")
)

// Waker is notified when a frame is requested on an idle queue, so the host
// can schedule a redraw. gpucontext.WindowProvider satisfies it.
type Waker interface {
	RequestRedraw()
}

// Option configures a Queue.
type Option func(*Queue)

// WithWaker sets the waker called when the queue goes from empty to
// non-empty.
func WithWaker(w Waker) Option {
	return func(q *Queue) {
		q.waker = w
	}
}

type request struct {
	id        scribble.FrameHandle
	fn        func()
	cancelled bool
}

// Queue is a frame scheduler ticked by its host.
//
// Queue is safe for concurrent use. Callbacks run on the goroutine calling
// Tick, without the queue lock held, so they may request or cancel frames.
type Queue struct {
	mu      sync.Mutex
	next    scribble.FrameHandle
	pending []*request
	batch   []*request // taken by the running Tick
	waker   Waker
	closed  bool
	ticks   uint64
}

// Ensure Queue implements scribble.FrameScheduler.
var _ scribble.FrameScheduler = (*Queue)(nil)

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// RequestFrame schedules fn for the next tick and returns its handle.
// Handles start at 1 and are never reused.
func (q *Queue) RequestFrame(fn func()) (scribble.FrameHandle, error) {
	if fn == nil {
		return 0, ErrNilCallback
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0, ErrClosed
	}
	q.next++
	id := q.next
	wake := len(q.pending) == 0 && q.waker != nil
	q.pending = append(q.pending, &request{id: id, fn: fn})
	waker := q.waker
	q.mu.Unlock()

	if wake {
		waker.RequestRedraw()
	}
	return id, nil
}

// CancelFrame drops the pending request h. Unknown, delivered and zero
// handles are ignored.
func (q *Queue) CancelFrame(h scribble.FrameHandle) {
	if h == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for i, r := range q.pending {
		if r.id == h {
			r.cancelled = true
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for _, r := range q.batch {
		if r.id == h {
			r.cancelled = true
			return
		}
	}
}

// Tick runs every callback that was pending when Tick was called, in
// request order, and returns how many ran. Callbacks requested while the
// tick runs wait for the next tick. A callback cancelled by an earlier one
// in the same tick is skipped.
func (q *Queue) Tick() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.batch = batch
	q.ticks++
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.batch = nil
		q.mu.Unlock()
	}()

	ran := 0
	for _, r := range batch {
		q.mu.Lock()
		skip := r.cancelled || q.closed
		q.mu.Unlock()
		if skip {
			continue
		}
		r.fn()
		ran++
	}
	return ran
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Ticks returns how many times Tick has been called.
func (q *Queue) Ticks() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ticks
}

// Close drops every pending request. Later RequestFrame calls fail with
// ErrClosed. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	for _, r := range q.pending {
		r.cancelled = true
	}
	n := len(q.pending)
	q.pending = nil
	q.closed = true
	scribble.Logger().Debug("frames: queue closed", "dropped", n)
}
