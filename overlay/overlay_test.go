package overlay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kwv/aoeguard/contour"
	"github.com/kwv/aoeguard/safezone"
)

func sampleSegments() []contour.Segment {
	red := contour.Color{R: 1, G: 0, B: 0, A: 1}
	return []contour.Segment{
		{A: safezone.Vec2{0, 0}, B: safezone.Vec2{10, 0}, Color: red, Thickness: 2},
		{A: safezone.Vec2{10, 0}, B: safezone.Vec2{10, 10}, Color: red, Thickness: 2},
	}
}

func TestRenderToSVGProducesWellFormedOutput(t *testing.T) {
	r := NewRenderer(100, 100, contour.Color{R: 1, G: 1, B: 1, A: 1})
	r.AddSegments(sampleSegments())
	r.AddMarker(safezone.Vec2{5, 5}, 2, contour.Color{R: 0, G: 1, B: 0, A: 1})

	var buf bytes.Buffer
	if err := r.RenderToSVG(&buf); err != nil {
		t.Fatalf("RenderToSVG returned an error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("expected SVG output to contain an <svg> tag, got: %q", out)
	}
}

func TestRenderToPNGProducesNonEmptyOutput(t *testing.T) {
	r := NewRenderer(64, 64, contour.Color{R: 1, G: 1, B: 1, A: 1})
	r.AddSegments(sampleSegments())

	var buf bytes.Buffer
	if err := r.RenderToPNG(&buf); err != nil {
		t.Fatalf("RenderToPNG returned an error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PNG output")
	}
	sig := buf.Bytes()[:8]
	want := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.Equal(sig, want) {
		t.Errorf("output does not start with the PNG signature: %v", sig)
	}
}

func TestRenderWithNoSegmentsOrMarkersStillRenders(t *testing.T) {
	r := NewRenderer(32, 32, contour.Color{R: 0, G: 0, B: 0, A: 1})
	var buf bytes.Buffer
	if err := r.RenderToSVG(&buf); err != nil {
		t.Fatalf("RenderToSVG returned an error on an empty scene: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty SVG output even for an empty scene")
	}
}

func TestClamp01BoundsColorChannels(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, c := range cases {
		if got := clamp01(c.in); got != c.want {
			t.Errorf("clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
