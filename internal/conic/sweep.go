package conic

// SweepPoint is the eccentricity of one shape in a parameter sweep.
type SweepPoint struct {
	Param        float64
	Eccentricity float64
}

// Sweep varies the semi-minor axis of a two-axis conic from bMin to bMax
// while holding a fixed, recording e at each step.
//
// Only the ellipse and hyperbola topics have a b axis; any other topic
// returns nil.
func Sweep(t Topic, a, bMin, bMax float64, steps int) []SweepPoint {
	if t != TopicEllipse && t != TopicHyperbola {
		return nil
	}
	if steps < 2 {
		steps = 2 // Prevent division by zero
	}
	step := (bMax - bMin) / float64(steps-1)

	out := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		b := bMin + float64(i)*step
		var s Shape = Ellipse{A: a, B: b}
		if t == TopicHyperbola {
			s = Hyperbola{A: a, B: b}
		}
		out = append(out, SweepPoint{Param: b, Eccentricity: s.Eccentricity()})
	}
	return out
}

// Eccentricities extracts the e column of a sweep for plotting.
func Eccentricities(pts []SweepPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Eccentricity
	}
	return out
}
