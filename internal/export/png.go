package export

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PNGOptions controls raster output.
type PNGOptions struct {
	// Face draws labels; nil uses basicfont, which has no CJK glyphs, so
	// annotations it cannot draw fall back to FallbackAnnotation.
	Face font.Face
}

// FallbackAnnotation replaces annotation text the label face cannot draw.
const FallbackAnnotation = "e = c/a"

// LoadFontFace reads a TrueType font for PNG labels.
func LoadFontFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// RenderPNG rasterizes a scene into a gg context.
func RenderPNG(s viz.Scene, opts PNGOptions) *gg.Context {
	face := opts.Face
	if face == nil {
		face = basicfont.Face7x13
	}

	dc := gg.NewContext(int(s.Width), int(s.Height))
	dc.SetHexColor(string(viz.BackColor))
	dc.Clear()

	dc.SetHexColor(string(viz.GridColor))
	dc.SetLineWidth(1)
	for _, g := range s.Grid {
		dc.DrawLine(g.From.X, g.From.Y, g.To.X, g.To.Y)
	}
	dc.Stroke()

	dc.SetHexColor(string(viz.AxisColor))
	dc.SetLineWidth(2)
	for _, a := range s.Axes {
		dc.DrawLine(a.From.X, a.From.Y, a.To.X, a.To.Y)
	}
	dc.Stroke()

	dc.SetHexColor(string(s.Color))
	dc.SetLineWidth(viz.CurveStroke)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, p := range s.Paths {
		if len(p.Points) < 2 {
			continue
		}
		dc.NewSubPath()
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		if p.Closed {
			dc.ClosePath()
		}
	}
	dc.Stroke()

	dc.SetFontFace(face)
	for _, m := range s.Markers {
		dc.SetHexColor(string(viz.FocusColor))
		dc.DrawCircle(m.At.X, m.At.Y, viz.FocusRadius)
		dc.Fill()
		dc.DrawStringAnchored(m.Label, m.At.X, m.At.Y+15, 0.5, 0.5)
	}

	if a := s.Annotation; a != nil {
		dc.SetHexColor(string(s.Color))
		dc.DrawCircle(a.Dot.X, a.Dot.Y, viz.FocusRadius)
		dc.Fill()
		text := a.Text
		if !canDraw(face, text) {
			text = FallbackAnnotation
		}
		dc.DrawStringAnchored(text, a.At.X, a.At.Y, 0.5, 0.5)
	}
	return dc
}

// WritePNG encodes a scene as PNG.
func WritePNG(w io.Writer, s viz.Scene, opts PNGOptions) error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("export: scene %.0fx%.0f has no area", s.Width, s.Height)
	}
	if err := RenderPNG(s, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// canDraw reports whether a basicfont face covers every rune of s. basicfont
// substitutes U+FFFD silently, so its ranges are checked directly; other
// faces are trusted.
func canDraw(face font.Face, s string) bool {
	bf, ok := face.(*basicfont.Face)
	if !ok {
		return true
	}
	for _, r := range s {
		covered := false
		for _, rng := range bf.Ranges {
			if r >= rng.Low && r < rng.High {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
