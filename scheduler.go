package scribble

// FrameHandle identifies a pending frame request. The zero value means
// "no frame scheduled".
type FrameHandle uint64

// FrameScheduler is the host's "request next frame" facility, the
// equivalent of window.requestAnimationFrame.
//
// RequestFrame arranges for fn to be called once at the next paint
// opportunity and returns a handle for the pending request. Frames requested
// while a frame callback runs are delivered on the following frame, never the
// current one.
//
// CancelFrame drops a pending request. Cancelling an unknown or already
// delivered handle is a no-op.
type FrameScheduler interface {
	RequestFrame(fn func()) (FrameHandle, error)
	CancelFrame(h FrameHandle)
}
