//go:build js && wasm

// Command scribble-web runs scribble in a browser.
//
// Build with GOOS=js GOARCH=wasm and load the binary with wasm_exec.js. The
// page gets a bordered canvas; drag on it to draw while random squares are
// painted every animation frame.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/web"
)

func main() {
	scribble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := scribble.DefaultConfig().WithSize(640, 480)

	page, err := web.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to set up canvas: %v", err)
	}

	done := make(chan struct{})
	app, err := scribble.Initialize(cfg, page.Surface(), web.NewScheduler(), page.PointerSource(),
		scribble.WithFaultHandler(func(err error) {
			log.Printf("Render loop stopped: %v", err)
			close(done)
		}))
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Callbacks from the browser need the Go runtime alive.
	<-done
	app.Close()
	page.Close()
}
