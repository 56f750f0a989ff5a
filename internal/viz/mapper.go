package viz

import "github.com/yarayan327-hash/math-test-KSA-material/internal/conic"

// Lab canvas geometry used by the SVG and PNG backends.
const (
	LabWidth  = 400
	LabHeight = 400
	LabScale  = 40 // pixels per unit
)

// ScreenPoint is a point in rendering space (y grows downward).
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mapper converts between the mathematical plane and screen space.
type Mapper struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

// NewMapper centers the origin on a width×height canvas.
func NewMapper(width, height, scale float64) Mapper {
	return Mapper{Scale: scale, OriginX: width / 2, OriginY: height / 2}
}

// LabMapper is the mapper of the default 400×400 lab canvas.
func LabMapper() Mapper {
	return NewMapper(LabWidth, LabHeight, LabScale)
}

// ToScreen maps a plane point; the y-axis is inverted.
func (m Mapper) ToScreen(p conic.Point) ScreenPoint {
	return ScreenPoint{
		X: m.OriginX + p.X*m.Scale,
		Y: m.OriginY - p.Y*m.Scale,
	}
}

// FromScreen is the inverse of ToScreen.
func (m Mapper) FromScreen(s ScreenPoint) conic.Point {
	return conic.Point{
		X: (s.X - m.OriginX) / m.Scale,
		Y: (m.OriginY - s.Y) / m.Scale,
	}
}

func (m Mapper) ToScreenAll(pts []conic.Point) []ScreenPoint {
	out := make([]ScreenPoint, len(pts))
	for i, p := range pts {
		out[i] = m.ToScreen(p)
	}
	return out
}
