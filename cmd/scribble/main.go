// Command scribble is a freehand drawing pad with a background animation of
// random squares.
//
// By default it opens a gogpu window. With -headless it replays a scripted
// drag and a fixed number of animation frames offscreen, then exports the
// result:
//
//	scribble -headless -frames 30 -drag "10,10 20,20 30,30" -out sketch.svg
//
// The output format follows the file extension: .png, .bmp, .tif, .tiff or
// .svg.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/scribble"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		headless   = flag.Bool("headless", false, "render offscreen and export instead of opening a window")
		nframes    = flag.Int("frames", 60, "animation frames to render in headless mode")
		drag       = flag.String("drag", "", `drag script for headless mode, e.g. "10,10 20,20 30,30"`)
		output     = flag.String("out", "scribble.png", "output file in headless mode")
		seed       = flag.Uint64("seed", 1, "random seed for square placement in headless mode")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	scribble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := scribble.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = scribble.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if *headless {
		opts := headlessOptions{
			frames: *nframes,
			drag:   *drag,
			output: *output,
			seed:   *seed,
		}
		if err := runHeadless(cfg, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := runWindow(cfg); err != nil {
		log.Fatal(err)
	}
}
