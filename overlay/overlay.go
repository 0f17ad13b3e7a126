// Package overlay adapts contour segments (and, optionally, marker
// points) into a drawable canvas image, writable as SVG or PNG. The
// contour builder never references this package; overlay is purely a
// consumer of its output.
package overlay

import (
	"image/png"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/kwv/aoeguard/contour"
	"github.com/kwv/aoeguard/safezone"
)

// canvasRenderer is the common surface both the SVG and PNG backends
// implement.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// Renderer draws a fixed-size overlay scene: a background, a set of
// contour segments (grouped by color+thickness into strokes), and a set
// of marker points (e.g. selected safe positions).
type Renderer struct {
	Width, Height float64
	Background    contour.Color
	Resolution    canvas.Resolution

	segments []contour.Segment
	markers  []marker
}

type marker struct {
	p      safezone.Vec2
	radius float64
	color  contour.Color
}

// NewRenderer returns a Renderer for a width x height canvas at a default
// PNG resolution of 300 DPI.
func NewRenderer(width, height float64, background contour.Color) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		Background: background,
		Resolution: canvas.DPI(300),
	}
}

// AddSegments queues contour segments for drawing. Coordinates are
// interpreted directly as canvas-space (X, Z): callers are responsible
// for any world-to-canvas transform before calling this.
func (r *Renderer) AddSegments(segments []contour.Segment) {
	r.segments = append(r.segments, segments...)
}

// AddMarker queues a filled circle marker at p, e.g. to highlight one of
// SafePositionQuery's results.
func (r *Renderer) AddMarker(p safezone.Vec2, radius float64, color contour.Color) {
	r.markers = append(r.markers, marker{p: p, radius: radius, color: color})
}

func toCanvasColor(c contour.Color) canvas.Color {
	return canvas.Color{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RenderToSVG writes the scene as an SVG to w.
func (r *Renderer) RenderToSVG(w io.Writer) error {
	svgRenderer := svg.New(w, r.Width, r.Height, nil)
	r.renderToCanvas(svgRenderer)
	return svgRenderer.Close()
}

// RenderToPNG writes the scene as a PNG to w.
func (r *Renderer) RenderToPNG(w io.Writer) error {
	rast := rasterizer.New(r.Width, r.Height, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast)
	return png.Encode(w, rast)
}

func (r *Renderer) renderToCanvas(renderer canvasRenderer) {
	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: toCanvasColor(r.Background)}
	bgStyle.Stroke = canvas.Paint{Color: canvas.Transparent}
	renderer.RenderPath(canvas.Rectangle(r.Width, r.Height), bgStyle, canvas.Identity)

	// Group segments by (color, thickness) so each stroke style issues
	// one RenderPath call instead of one per segment.
	type styleKey struct {
		color     contour.Color
		thickness float64
	}
	grouped := make(map[styleKey][]contour.Segment)
	var order []styleKey
	for _, s := range r.segments {
		key := styleKey{color: s.Color, thickness: s.Thickness}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], s)
	}

	for _, key := range order {
		style := canvas.DefaultStyle
		style.Fill = canvas.Paint{Color: canvas.Transparent}
		style.Stroke = canvas.Paint{Color: toCanvasColor(key.color)}
		style.StrokeWidth = key.thickness
		style.StrokeCapper = canvas.RoundCapper{}
		style.StrokeJoiner = canvas.RoundJoiner{}

		path := &canvas.Path{}
		for _, s := range grouped[key] {
			path.MoveTo(s.A.X, s.A.Z)
			path.LineTo(s.B.X, s.B.Z)
		}
		renderer.RenderPath(path, style, canvas.Identity)
	}

	for _, m := range r.markers {
		style := canvas.DefaultStyle
		style.Fill = canvas.Paint{Color: toCanvasColor(m.color)}
		style.Stroke = canvas.Paint{Color: canvas.Transparent}
		markerPath := canvas.Circle(m.radius).Translate(m.p.X, m.p.Z)
		renderer.RenderPath(markerPath, style, canvas.Identity)
	}
}
