package scribble

import "errors"

// Setup failures. Initialize returns these (possibly wrapped) when a
// required host collaborator is missing.
var (
	// ErrNoSurface is returned when no Canvas Surface is available.
	ErrNoSurface = errors.New("scribble: no drawing surface")

	// ErrNoScheduler is returned when no frame scheduler is available.
	ErrNoScheduler = errors.New("scribble: no frame scheduler")

	// ErrNoEventSource is returned when no pointer event source is available.
	ErrNoEventSource = errors.New("scribble: no pointer event source")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("scribble: invalid config")
)

// Render loop failures.
var (
	// ErrScheduleRejected wraps an error returned by FrameScheduler.RequestFrame.
	// The render loop never retries a rejected request.
	ErrScheduleRejected = errors.New("scribble: frame request rejected")

	// ErrLoopRunning is returned by RenderLoop.Start when the loop is already running.
	ErrLoopRunning = errors.New("scribble: render loop already running")
)
