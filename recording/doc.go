// Package recording captures scribble drawing operations as typed commands.
//
// A Recorder is a drop-in Surface: instead of rasterizing, it appends one
// command per call. The resulting Recording can be inspected (Commands,
// Count, Draws), replayed onto any other surface (Replay), or exported
// through a registered Backend (Playback).
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability, rather than a binary serialization
// format.
//
// # Commands
//
//   - Path commands (BeginPath, MoveTo, LineTo) build the current path
//   - Drawing commands (Stroke, FillRect, StrokeRect, Clear) put pixels on
//     the surface
//
// # Backends
//
// Backends register themselves by name and file extension:
//
//	import (
//	    _ "github.com/gogpu/scribble/recording/backends/raster" // .png .bmp .tif .tiff
//	    _ "github.com/gogpu/scribble/recording/backends/svg"    // .svg
//	)
//
//	backend, err := recording.NewBackendForPath("sketch.svg")
//	if err != nil {
//	    return err
//	}
//	if err := rec.FinishRecording().Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("sketch.svg")
package recording
