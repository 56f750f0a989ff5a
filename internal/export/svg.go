package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

// SceneToSVG draws a scene as a standalone SVG document of the scene's size.
func SceneToSVG(s viz.Scene) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, viz.BackColor))

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">
`, viz.GridColor))
	for _, g := range s.Grid {
		writeLine(&sb, g)
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="2">
`, viz.AxisColor))
	for _, a := range s.Axes {
		writeLine(&sb, a)
	}
	sb.WriteString("</g>\n")

	for _, p := range s.Paths {
		if len(p.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.0f" stroke-linejoin="round" d="M`, s.Color, viz.CurveStroke))
		for i, pt := range p.Points {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", pt.X, pt.Y))
			}
		}
		if p.Closed {
			sb.WriteString(" Z")
		}
		sb.WriteString("\"/>\n")
	}

	for _, m := range s.Markers {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-size="12" font-family="monospace" text-anchor="middle">%s</text>
`, m.At.X, m.At.Y, viz.FocusRadius, viz.FocusColor, m.At.X, m.At.Y+15, viz.FocusColor, html.EscapeString(m.Label)))
	}

	if a := s.Annotation; a != nil {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-size="16" text-anchor="middle">%s</text>
`, a.Dot.X, a.Dot.Y, viz.FocusRadius, s.Color, a.At.X, a.At.Y, s.Color, html.EscapeString(a.Text)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format, keeping each cell's ink.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, viz.BackColor))

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			ink := canvas.InkAt(col, row)
			if ink == "" {
				ink = viz.AxisColor
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for _, d := range canvas.Dots(col, row) {
				cx := baseX + float64(d[0])*scale + scale/2
				cy := baseY + float64(d[1])*scale + scale/2
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, ink))
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeLine(sb *strings.Builder, s viz.Segment) {
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, s.From.X, s.From.Y, s.To.X, s.To.Y))
}
