package main

import (
	"log"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/frames"
	"github.com/gogpu/scribble/surface"
)

// runWindow hosts a session in a gogpu window. The frame queue is ticked
// from OnDraw, and an animation token keeps the window redrawing at VSync
// while frames are pending. A render loop fault closes the window and is
// returned.
func runWindow(cfg scribble.Config) error {
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	queue := frames.NewQueue()
	var (
		fault     error
		cs        *surface.CanvasSurface
		session   *scribble.App
		animToken *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if cs == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if provider.SurfaceFormat() == gputypes.TextureFormatUndefined {
				scribble.Logger().Warn("surface format not reported by device provider")
			}
			var err error
			cs, err = surface.NewCanvasSurface(provider, w, h, style)
			if err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
			session, err = scribble.Initialize(cfg, cs, queue, scribble.PointerSource(app.EventSource()),
				scribble.WithFaultHandler(func(err error) {
					fault = err
					app.Quit()
				}))
			if err != nil {
				log.Fatalf("Failed to initialize: %v", err)
			}
			scribble.Logger().Info("window ready", "backend", dc.Backend())
		}

		if _, err := fitCanvas(cs, w, h); err != nil {
			scribble.Logger().Warn("resize failed", "err", err)
		}

		queue.Tick()

		switch {
		case queue.Len() > 0 && animToken == nil:
			animToken = app.StartAnimation()
		case queue.Len() == 0 && animToken != nil:
			animToken.Stop()
			animToken = nil
		}

		sw, sh := dc.SurfaceSize()
		if err := cs.Present(dc.RenderTarget().SurfaceView(), sw, sh); err != nil {
			scribble.Logger().Warn("present failed", "err", err)
		}
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		if session != nil {
			session.Close()
		}
		queue.Close()
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return err
	}
	return fault
}

// resizable is a surface whose size follows the window.
type resizable interface {
	Size() (width, height int)
	Resize(width, height int) error
}

var _ resizable = (*surface.CanvasSurface)(nil)

// fitCanvas resizes s to w by h when its size differs and reports whether it
// did. Resizing clears the surface.
func fitCanvas(s resizable, w, h int) (bool, error) {
	if cw, ch := s.Size(); cw == w && ch == h {
		return false, nil
	}
	if err := s.Resize(w, h); err != nil {
		return false, err
	}
	return true, nil
}
