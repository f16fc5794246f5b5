// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides gg-backed implementations of scribble.Surface.
//
// ImageSurface draws offscreen with gg's software rasterizer and can be
// saved as PNG, BMP or TIFF. CanvasSurface draws into a ggcanvas.Canvas
// and is presented into a gogpu window once per frame.
//
// Both follow the HTML canvas path model: the current path survives Stroke
// and is only discarded by BeginPath, and the rectangle operations never
// touch it.
package surface
