package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/scribble/recording"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Title   string   `xml:"title"`
	Paths   []struct {
		D     string `xml:"d,attr"`
		Style string `xml:"style,attr"`
	} `xml:"path"`
}

func parse(t *testing.T, data []byte) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid SVG: %v\n%s", err, data)
	}
	return doc
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("svg") {
		t.Fatal("svg backend not registered")
	}
	backend, err := recording.NewBackendForPath("out.SVG")
	if err != nil {
		t.Fatalf("NewBackendForPath failed: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend = %T, want *svg.Backend", backend)
	}
}

func TestBackendEmptyDocument(t *testing.T) {
	b := NewBackend()
	b.SetTitle("scribble")
	if err := b.Begin(640, 480); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	doc := parse(t, b.Bytes())
	if doc.Width != "640" || doc.Height != "480" {
		t.Errorf("size = %sx%s, want 640x480", doc.Width, doc.Height)
	}
	if doc.Title != "scribble" {
		t.Errorf("title = %q, want %q", doc.Title, "scribble")
	}
	// Background only.
	if len(doc.Paths) != 1 {
		t.Fatalf("paths = %d, want 1", len(doc.Paths))
	}
	if !strings.Contains(doc.Paths[0].Style, "fill:#ffffff") {
		t.Errorf("background style = %q", doc.Paths[0].Style)
	}
}

func TestBackendInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
}

func TestBackendDragSequence(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.BeginPath()
	rec.MoveTo(10, 10)
	rec.LineTo(20, 20)
	rec.Stroke()
	rec.BeginPath()
	rec.MoveTo(20, 20)
	rec.LineTo(30, 30)
	rec.Stroke()
	rec.FillRect(30, 30, 10, 10)

	b := NewBackend()
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatal(err)
	}

	doc := parse(t, b.Bytes())
	if len(doc.Paths) != 4 {
		t.Fatalf("paths = %d, want 4 (background, 2 strokes, marker)", len(doc.Paths))
	}
	wantD := []string{"M10 10 L20 20", "M20 20 L30 30", "M30 30 H40 V40 H30 Z"}
	for i, want := range wantD {
		if got := doc.Paths[i+1].D; got != want {
			t.Errorf("path %d d = %q, want %q", i+1, got, want)
		}
	}
	if s := doc.Paths[1].Style; !strings.Contains(s, "fill:none") || !strings.Contains(s, "stroke:#000000") {
		t.Errorf("stroke style = %q", s)
	}
	if s := doc.Paths[3].Style; !strings.Contains(s, "fill:#000000") || !strings.Contains(s, "stroke:none") {
		t.Errorf("marker style = %q", s)
	}
}

func TestBackendStrokeKeepsPath(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	b.BeginPath()
	b.MoveTo(1, 1)
	b.LineTo(2, 2)
	b.Stroke()
	b.FillRect(0, 0, 1, 1)
	b.Stroke()

	// background + stroke + rect + stroke
	if b.Elements() != 4 {
		t.Errorf("Elements() = %d, want 4", b.Elements())
	}

	b.BeginPath()
	b.Stroke()
	if b.Elements() != 4 {
		t.Errorf("Stroke of empty path emitted an element")
	}
}

func TestBackendLineToWithoutMove(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	b.BeginPath()
	b.LineTo(1, 2)
	b.LineTo(3, 4)
	b.Stroke()
	_ = b.End()

	doc := parse(t, b.Bytes())
	if got := doc.Paths[len(doc.Paths)-1].D; got != "M1 2 L3 4" {
		t.Errorf("d = %q, want %q", got, "M1 2 L3 4")
	}
}

func TestBackendClear(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	b.FillRect(0, 0, 5, 5)
	b.FillRect(5, 5, 5, 5)
	b.Clear()

	if b.Elements() != 1 {
		t.Errorf("Elements() after Clear = %d, want 1", b.Elements())
	}

	b.SetStyle(nil, nil, nil, 0)
	b.Clear()
	if b.Elements() != 0 {
		t.Errorf("Elements() after transparent Clear = %d, want 0", b.Elements())
	}
}

func TestBackendStyle(t *testing.T) {
	b := NewBackend()
	b.SetStyle(color.RGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 128}, nil, 2.5)
	_ = b.Begin(10, 10)
	b.StrokeRect(1, 1, 2, 2)
	b.FillRect(1, 1, 2, 2)
	_ = b.End()

	doc := parse(t, b.Bytes())
	if len(doc.Paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(doc.Paths))
	}
	if s := doc.Paths[0].Style; !strings.Contains(s, "stroke:#ff0000") || !strings.Contains(s, "stroke-width:2.5") {
		t.Errorf("stroke rect style = %q", s)
	}
	if s := doc.Paths[1].Style; !strings.Contains(s, "fill:#0000ff") || !strings.Contains(s, "fill-opacity:0.502") {
		t.Errorf("fill rect style = %q", s)
	}
}

func TestBackendOutputBeforeEnd(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); !errors.Is(err, ErrNotFinished) {
		t.Errorf("WriteTo before End error = %v, want ErrNotFinished", err)
	}
	if err := b.SaveToFile(filepath.Join(t.TempDir(), "x.svg")); !errors.Is(err, ErrNotFinished) {
		t.Errorf("SaveToFile before End error = %v, want ErrNotFinished", err)
	}
	if b.Bytes() != nil {
		t.Error("Bytes() before End should be nil")
	}
}

func TestBackendWriteToAndSave(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(20, 20)
	b.FillRect(0, 0, 10, 10)
	_ = b.End()

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("file contents differ from WriteTo output")
	}
}
