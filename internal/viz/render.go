package viz

import (
	"fmt"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

// GridExtent bounds the integer reference grid on both axes.
const GridExtent = 10

// Scene colors shared by every backend.
const (
	GridColor  conic.Color = "#1e293b"
	AxisColor  conic.Color = "#475569"
	FocusColor conic.Color = "#ef4444"
	BackColor  conic.Color = "#0f172a"
)

const (
	CurveStroke = 3.0
	FocusRadius = 4.0

	// annotationLift places placeholder text above the origin, in plane units.
	annotationLift = 1.25
)

// Segment is a straight line in screen space.
type Segment struct {
	From ScreenPoint `json:"from"`
	To   ScreenPoint `json:"to"`
}

// Path is one polyline of the curve.
type Path struct {
	Points []ScreenPoint `json:"points"`
	Closed bool          `json:"closed"`
}

// Marker is a labelled focus point.
type Marker struct {
	At    ScreenPoint `json:"at"`
	Label string      `json:"label"`
}

// Annotation is placeholder text drawn when there is no curve.
type Annotation struct {
	Text string      `json:"text"`
	At   ScreenPoint `json:"at"`
	Dot  ScreenPoint `json:"dot"`
}

// Scene is a backend-neutral display list for one curve.
type Scene struct {
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	Origin       ScreenPoint `json:"origin"`
	Grid         []Segment   `json:"grid"`
	Axes         [2]Segment  `json:"axes"`
	Paths        []Path      `json:"paths"`
	Color        conic.Color `json:"color"`
	Markers      []Marker    `json:"markers"`
	Annotation   *Annotation `json:"annotation,omitempty"`
	Eccentricity float64     `json:"eccentricity"`
	Topic        conic.Topic `json:"topic"`
}

// Render turns a sampled curve into a scene on a width×height canvas. It
// never mutates its inputs.
func Render(curve conic.Curve, m Mapper, width, height float64) Scene {
	s := Scene{
		Width:        width,
		Height:       height,
		Origin:       ScreenPoint{m.OriginX, m.OriginY},
		Grid:         grid(m),
		Color:        curve.Color,
		Eccentricity: curve.Eccentricity,
		Topic:        curve.Topic,
	}
	s.Axes = [2]Segment{
		{From: ScreenPoint{0, m.OriginY}, To: ScreenPoint{width, m.OriginY}},
		{From: ScreenPoint{m.OriginX, 0}, To: ScreenPoint{m.OriginX, height}},
	}

	for _, b := range curve.Branches {
		if len(b) == 0 {
			continue
		}
		s.Paths = append(s.Paths, Path{Points: m.ToScreenAll(b), Closed: curve.Closed})
	}
	for i, f := range curve.Foci {
		s.Markers = append(s.Markers, Marker{At: m.ToScreen(f), Label: fmt.Sprintf("F%d", i+1)})
	}
	if curve.Annotation != "" {
		s.Annotation = &Annotation{
			Text: curve.Annotation,
			At:   ScreenPoint{m.OriginX, m.OriginY - annotationLift*m.Scale},
			Dot:  ScreenPoint{m.OriginX, m.OriginY},
		}
	}
	return s
}

// RenderLab renders onto the default 400×400 lab canvas.
func RenderLab(curve conic.Curve) Scene {
	return Render(curve, LabMapper(), LabWidth, LabHeight)
}

func grid(m Mapper) []Segment {
	out := make([]Segment, 0, 2*(2*GridExtent+1))
	for i := -GridExtent; i <= GridExtent; i++ {
		v := float64(i)
		out = append(out,
			Segment{From: m.ToScreen(conic.Pt(v, -GridExtent)), To: m.ToScreen(conic.Pt(v, GridExtent))},
			Segment{From: m.ToScreen(conic.Pt(-GridExtent, v)), To: m.ToScreen(conic.Pt(GridExtent, v))},
		)
	}
	return out
}
