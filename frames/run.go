// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frames

import (
	"context"
	"time"

	"github.com/gogpu/scribble"
)

// Run ticks q every interval until n ticks have run, the queue drains, or
// ctx is done, and returns the number of ticks. A non-positive n runs until
// the queue drains or ctx is done. A zero interval ticks back to back.
//
// Run is the headless stand-in for a display's refresh cycle.
func Run(ctx context.Context, q *Queue, interval time.Duration, n int) (int, error) {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	done := 0
	for n <= 0 || done < n {
		if q.Len() == 0 {
			scribble.Logger().Debug("frames: queue drained", "ticks", done)
			return done, nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return done, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return done, err
		}
		q.Tick()
		done++
	}
	return done, nil
}
