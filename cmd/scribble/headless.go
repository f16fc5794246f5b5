package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/frames"
	"github.com/gogpu/scribble/recording"
	_ "github.com/gogpu/scribble/recording/backends/raster"
	_ "github.com/gogpu/scribble/recording/backends/svg"
)

type headlessOptions struct {
	frames int
	drag   string
	output string
	seed   uint64
}

// titled is implemented by backends whose documents carry a title.
type titled interface {
	SetTitle(string)
}

// runHeadless records a session into a Recorder and exports it through the
// backend registered for the output extension.
func runHeadless(cfg scribble.Config, opts headlessOptions) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	pts, err := parseDrag(opts.drag)
	if err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}
	backend, err := recording.NewBackendForPath(opts.output)
	if err != nil {
		return err
	}

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	queue := frames.NewQueue()
	defer queue.Close()
	events := &scriptSource{}

	var fault error
	app, err := scribble.Initialize(cfg, rec, queue, events,
		scribble.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))),
		scribble.WithFaultHandler(func(err error) { fault = err }),
	)
	if err != nil {
		return err
	}

	events.play(pts)
	ticks, err := frames.Run(context.Background(), queue, 0, opts.frames)
	app.Close()
	if err != nil {
		return err
	}
	if fault != nil {
		return fault
	}

	if sb, ok := backend.(recording.StyledBackend); ok {
		sb.SetStyle(style.Stroke, style.Fill, style.Background, style.LineWidth)
	}
	if tb, ok := backend.(titled); ok {
		tb.SetTitle(cfg.Title)
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		return fmt.Errorf("export %s: %w", opts.output, err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("export %s: backend cannot write files", opts.output)
	}
	if err := fb.SaveToFile(opts.output); err != nil {
		return err
	}

	scribble.Logger().Info("headless session exported",
		"path", opts.output,
		"frames", ticks,
		"commands", rec.Len())
	return nil
}
