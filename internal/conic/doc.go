// Package conic provides the geometry core for conic-section visualization.
//
// The package maps shape parameters to sampled plane curves:
//
//   - [Topic]: closed set of lesson topics (landing, four conics, advanced)
//   - [Params]: per-topic numeric inputs (radius, semi-axes, focal parameter)
//   - [Shape]: sealed tagged union of [Circle], [Ellipse], [Hyperbola], [Parabola]
//   - [Curve]: sampled branches, foci and eccentricity ready for rendering
//
// # Example
//
//	p := conic.DefaultParams()
//	p.SemiMajor, p.SemiMinor = 5, 3
//	curve := conic.Sample(conic.TopicEllipse, p)
//	fmt.Printf("e = %.2f\n", curve.Eccentricity) // e = 0.80
//
// All functions are pure and safe for concurrent use.
package conic
