package scribble

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Marker styles for the end-of-stroke square.
const (
	MarkerFill    = "fill"
	MarkerOutline = "outline"
)

// Config holds the tunables of a scribble session.
//
// Use DefaultConfig and the With methods to build one in code, or LoadConfig
// to read one from a TOML file:
//
//	cfg := scribble.DefaultConfig().
//	    WithTitle("Sketch").
//	    WithSize(800, 600)
type Config struct {
	// Title is the window title (desktop host only).
	Title string `toml:"title"`

	// Width and Height are the canvas size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// MarkerSize is the side of the square drawn where a stroke ends.
	MarkerSize float64 `toml:"marker_size"`

	// MarkerStyle is MarkerFill or MarkerOutline.
	MarkerStyle string `toml:"marker_style"`

	// SquareSize is the side of the square painted every frame.
	SquareSize float64 `toml:"square_size"`

	// SquareRange bounds the square position: both coordinates are uniform
	// in [0, SquareRange).
	SquareRange float64 `toml:"square_range"`

	// ClearEachFrame clears the surface before every animation square,
	// which also erases strokes.
	ClearEachFrame bool `toml:"clear_each_frame"`

	// LineWidth is the stroke width in pixels.
	LineWidth float64 `toml:"line_width"`

	// StrokeColor, FillColor and Background are hex colors ("#rrggbb" or "#rgb").
	StrokeColor string `toml:"stroke_color"`
	FillColor   string `toml:"fill_color"`
	Background  string `toml:"background"`
}

// DefaultConfig returns the configuration of the classic demo: a 640x480
// canvas, black 1px strokes, 10px filled end markers and 50px squares placed
// in the top-left 100x100 region.
func DefaultConfig() Config {
	return Config{
		Title:       "scribble",
		Width:       640,
		Height:      480,
		MarkerSize:  10,
		MarkerStyle: MarkerFill,
		SquareSize:  50,
		SquareRange: 100,
		LineWidth:   1,
		StrokeColor: "#000000",
		FillColor:   "#000000",
		Background:  "#ffffff",
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the canvas size set.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithMarker returns a copy of c with the end marker size and style set.
func (c Config) WithMarker(size float64, style string) Config {
	c.MarkerSize = size
	c.MarkerStyle = style
	return c
}

// WithSquares returns a copy of c with the animation square size and
// placement range set.
func (c Config) WithSquares(size, rng float64) Config {
	c.SquareSize = size
	c.SquareRange = rng
	return c
}

// WithClearEachFrame returns a copy of c with per-frame clearing toggled.
func (c Config) WithClearEachFrame(clear bool) Config {
	c.ClearEachFrame = clear
	return c
}

// WithColors returns a copy of c with the stroke, fill and background colors set.
func (c Config) WithColors(stroke, fill, background string) Config {
	c.StrokeColor = stroke
	c.FillColor = fill
	c.Background = background
	return c
}

// Validate reports the first problem found in c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	for _, f := range []struct {
		key string
		val float64
	}{
		{"marker_size", c.MarkerSize},
		{"square_size", c.SquareSize},
		{"square_range", c.SquareRange},
		{"line_width", c.LineWidth},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, f.key, f.val)
		}
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MarkerSize < 0:
		return fmt.Errorf("%w: marker_size %v", ErrInvalidConfig, c.MarkerSize)
	case c.MarkerStyle != MarkerFill && c.MarkerStyle != MarkerOutline:
		return fmt.Errorf("%w: marker_style %q", ErrInvalidConfig, c.MarkerStyle)
	case c.SquareSize < 0:
		return fmt.Errorf("%w: square_size %v", ErrInvalidConfig, c.SquareSize)
	case c.SquareRange <= 0:
		return fmt.Errorf("%w: square_range %v", ErrInvalidConfig, c.SquareRange)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line_width %v", ErrInvalidConfig, c.LineWidth)
	}
	for _, hc := range []struct{ key, val string }{
		{"stroke_color", c.StrokeColor},
		{"fill_color", c.FillColor},
		{"background", c.Background},
	} {
		if _, err := parseColor(hc.val); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, hc.key, err)
		}
	}
	return nil
}

// Style is the paint applied by gg-backed and exported surfaces.
type Style struct {
	Stroke     color.Color
	Fill       color.Color
	Background color.Color
	LineWidth  float64
}

// DefaultStyle returns the style of DefaultConfig.
func DefaultStyle() Style {
	s, _ := DefaultConfig().Style()
	return s
}

// Style converts the color strings of c into a Style.
func (c Config) Style() (Style, error) {
	stroke, err := parseColor(c.StrokeColor)
	if err != nil {
		return Style{}, fmt.Errorf("%w: stroke_color: %v", ErrInvalidConfig, err)
	}
	fill, err := parseColor(c.FillColor)
	if err != nil {
		return Style{}, fmt.Errorf("%w: fill_color: %v", ErrInvalidConfig, err)
	}
	bg, err := parseColor(c.Background)
	if err != nil {
		return Style{}, fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return Style{Stroke: stroke, Fill: fill, Background: bg, LineWidth: c.LineWidth}, nil
}

// parseColor accepts "#rrggbb" and "#rgb".
func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return c.Clamped(), nil
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates the
// result. Keys not present in data keep their default values; unknown keys
// are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scribble: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
