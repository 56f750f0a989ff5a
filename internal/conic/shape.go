package conic

import "math"

// Sampling constants are tuned for visual smoothness only.
const (
	circleSegments  = 96
	ellipseSegments = 96

	hyperbolaLimit = 1.3 // |t| bound, stays clear of the asymptote at π/2
	hyperbolaSteps = 52

	parabolaSpan  = 8.0 // y ∈ [-span, span]
	parabolaStep  = 0.2
	parabolaClipX = 6.0
)

// Color is a display tag in #rrggbb form.
type Color string

const (
	ColorCircle    Color = "#00f3ff"
	ColorEllipse   Color = "#00ff9d"
	ColorHyperbola Color = "#ff00ff"
	ColorParabola  Color = "#ffcc00"
	ColorAdvanced  Color = "#a855f7"
	ColorNeutral   Color = "#ffffff"
)

// AdvancedAnnotation is shown in place of a curve on the advanced topic.
const AdvancedAnnotation = "离心率 e 决定形状"

// Curve is the sampled geometry of one topic.
type Curve struct {
	Topic        Topic     `json:"topic"`
	Branches     [][]Point `json:"branches"`
	Closed       bool      `json:"closed"`
	Foci         []Point   `json:"foci"`
	Eccentricity float64   `json:"eccentricity"`
	Color        Color     `json:"color"`
	Annotation   string    `json:"annotation,omitempty"`
}

// Empty reports whether the curve has nothing to plot.
func (c Curve) Empty() bool {
	for _, b := range c.Branches {
		if len(b) > 0 {
			return false
		}
	}
	return true
}

// Points returns every sampled point across branches.
func (c Curve) Points() []Point {
	n := 0
	for _, b := range c.Branches {
		n += len(b)
	}
	out := make([]Point, 0, n)
	for _, b := range c.Branches {
		out = append(out, b...)
	}
	return out
}

// Shape is a conic with concrete parameters. The method set is unexported so
// the variants below are the only implementations.
type Shape interface {
	Topic() Topic
	Eccentricity() float64
	Foci() []Point
	Sample() Curve
	sealed()
}

// Shape returns the variant for a plotted topic.
func (p Params) Shape(t Topic) (Shape, bool) {
	switch t {
	case TopicCircle:
		return Circle{R: p.Radius}, true
	case TopicEllipse:
		return Ellipse{A: p.SemiMajor, B: p.SemiMinor}, true
	case TopicHyperbola:
		return Hyperbola{A: p.SemiMajor, B: p.SemiMinor}, true
	case TopicParabola:
		return Parabola{P: p.FocalParameter}, true
	}
	return nil, false
}

// Sample produces the curve for a topic. Topics without a conic yield an
// empty curve; the advanced topic carries a placeholder annotation.
func Sample(t Topic, p Params) Curve {
	if s, ok := p.Shape(t); ok {
		return s.Sample()
	}
	c := Curve{Topic: t, Color: ColorNeutral}
	if t == TopicAdvanced {
		c.Color = ColorAdvanced
		c.Annotation = AdvancedAnnotation
	}
	return c
}

// Circle of radius R centered at the origin.
type Circle struct{ R float64 }

func (Circle) sealed() {}

func (Circle) Topic() Topic          { return TopicCircle }
func (Circle) Eccentricity() float64 { return 0 }
func (Circle) Foci() []Point         { return []Point{{0, 0}} }

func (c Circle) Sample() Curve {
	return Curve{
		Topic:        TopicCircle,
		Branches:     [][]Point{closedLoop(c.R, c.R, circleSegments)},
		Closed:       true,
		Foci:         c.Foci(),
		Eccentricity: 0,
		Color:        ColorCircle,
	}
}

// Ellipse x²/A² + y²/B² = 1. The major axis follows the larger of A and B.
type Ellipse struct{ A, B float64 }

func (Ellipse) sealed()      {}
func (Ellipse) Topic() Topic { return TopicEllipse }

// FocalDistance is c = sqrt(|A²-B²|).
func (e Ellipse) FocalDistance() float64 {
	return math.Sqrt(math.Abs(e.A*e.A - e.B*e.B))
}

func (e Ellipse) Eccentricity() float64 {
	m := math.Max(e.A, e.B)
	if m == 0 {
		return 0
	}
	return e.FocalDistance() / m
}

func (e Ellipse) Foci() []Point {
	c := e.FocalDistance()
	if e.A >= e.B {
		return []Point{{-c, 0}, {c, 0}}
	}
	return []Point{{0, -c}, {0, c}}
}

func (e Ellipse) Sample() Curve {
	return Curve{
		Topic:        TopicEllipse,
		Branches:     [][]Point{closedLoop(e.A, e.B, ellipseSegments)},
		Closed:       true,
		Foci:         e.Foci(),
		Eccentricity: e.Eccentricity(),
		Color:        ColorEllipse,
	}
}

// Hyperbola x²/A² - y²/B² = 1, opening left and right.
type Hyperbola struct{ A, B float64 }

func (Hyperbola) sealed()      {}
func (Hyperbola) Topic() Topic { return TopicHyperbola }

func (h Hyperbola) FocalDistance() float64 { return math.Hypot(h.A, h.B) }

func (h Hyperbola) Eccentricity() float64 {
	if h.A == 0 {
		return math.Inf(1)
	}
	return h.FocalDistance() / h.A
}

func (h Hyperbola) Foci() []Point {
	c := h.FocalDistance()
	return []Point{{-c, 0}, {c, 0}}
}

// Sample returns the right branch first, then the left one. Both use the
// closed form (±A·sec t, B·tan t) so they mirror each other across the y-axis.
func (h Hyperbola) Sample() Curve {
	right := make([]Point, 0, hyperbolaSteps+1)
	left := make([]Point, 0, hyperbolaSteps+1)
	step := 2 * hyperbolaLimit / hyperbolaSteps
	for i := 0; i <= hyperbolaSteps; i++ {
		t := -hyperbolaLimit + float64(i)*step
		sec := 1 / math.Cos(t)
		tan := math.Tan(t)
		right = append(right, Point{h.A * sec, h.B * tan})
		left = append(left, Point{-h.A * sec, h.B * tan})
	}
	return Curve{
		Topic:        TopicHyperbola,
		Branches:     [][]Point{right, left},
		Foci:         h.Foci(),
		Eccentricity: h.Eccentricity(),
		Color:        ColorHyperbola,
	}
}

// Parabola y² = 2Px, opening to the right.
type Parabola struct{ P float64 }

func (Parabola) sealed()               {}
func (Parabola) Topic() Topic          { return TopicParabola }
func (Parabola) Eccentricity() float64 { return 1 }
func (p Parabola) Foci() []Point       { return []Point{{p.P / 2, 0}} }

// Sample walks y over a fixed symmetric range and drops points past the
// horizontal clip bound.
func (p Parabola) Sample() Curve {
	n := int(math.Round(2 * parabolaSpan / parabolaStep))
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		y := -parabolaSpan + float64(i)*parabolaStep
		x := y * y / (2 * p.P)
		if math.Abs(x) < parabolaClipX {
			pts = append(pts, Point{x, y})
		}
	}
	return Curve{
		Topic:        TopicParabola,
		Branches:     [][]Point{pts},
		Foci:         p.Foci(),
		Eccentricity: 1,
		Color:        ColorParabola,
	}
}

// closedLoop samples (rx cos t, ry sin t) over [0, 2π) and repeats the first
// point at the end.
func closedLoop(rx, ry float64, segments int) []Point {
	pts := make([]Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		pts = append(pts, Point{rx * cos, ry * sin})
	}
	return append(pts, pts[0])
}
