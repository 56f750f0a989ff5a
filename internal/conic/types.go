package conic

import (
	"fmt"
	"math"
	"strings"
)

// Topic is one of the fixed lesson topics.
type Topic int

const (
	TopicHome Topic = iota
	TopicCircle
	TopicEllipse
	TopicHyperbola
	TopicParabola
	TopicAdvanced
)

var topicNames = [...]string{
	TopicHome:      "home",
	TopicCircle:    "circle",
	TopicEllipse:   "ellipse",
	TopicHyperbola: "hyperbola",
	TopicParabola:  "parabola",
	TopicAdvanced:  "advanced",
}

// Topics returns every topic in navigation order.
func Topics() []Topic {
	return []Topic{TopicHome, TopicCircle, TopicEllipse, TopicHyperbola, TopicParabola, TopicAdvanced}
}

// Valid reports whether t belongs to the enumeration.
func (t Topic) Valid() bool {
	return t >= TopicHome && t <= TopicAdvanced
}

func (t Topic) String() string {
	if !t.Valid() {
		return fmt.Sprintf("topic(%d)", int(t))
	}
	return topicNames[t]
}

// HasCurve reports whether the topic is plotted by the sampler.
func (t Topic) HasCurve() bool {
	switch t {
	case TopicCircle, TopicEllipse, TopicHyperbola, TopicParabola:
		return true
	}
	return false
}

// ParseTopic resolves a topic by its lower-case name.
func ParseTopic(name string) (Topic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range topicNames {
		if n == name {
			return Topic(t), nil
		}
	}
	return TopicHome, fmt.Errorf("%w: %q", ErrUnknownTopic, name)
}

func (t Topic) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopic, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Topic) UnmarshalText(b []byte) error {
	v, err := ParseTopic(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Point is a point in the mathematical plane (y grows upward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Distance(o Point) float64 { return math.Hypot(p.X-o.X, p.Y-o.Y) }

// ParamName identifies one of the editable shape parameters.
type ParamName string

const (
	ParamRadius         ParamName = "r"
	ParamSemiMajor      ParamName = "a"
	ParamSemiMinor      ParamName = "b"
	ParamFocalParameter ParamName = "p"
)

// Range is a closed interval with a slider step.
type Range struct {
	Min, Max, Step float64
}

func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges mirrors the slider bounds of the visual lab.
var Ranges = map[ParamName]Range{
	ParamRadius:         {Min: 1, Max: 5, Step: 0.1},
	ParamSemiMajor:      {Min: 1.5, Max: 5, Step: 0.1},
	ParamSemiMinor:      {Min: 1.5, Max: 5, Step: 0.1},
	ParamFocalParameter: {Min: 0.5, Max: 4, Step: 0.1},
}

const (
	DefaultRadius         = 3.0
	DefaultSemiMajor      = 3.0
	DefaultSemiMinor      = 2.0
	DefaultFocalParameter = 2.0
)

// Params holds the shape inputs of every topic at once.
type Params struct {
	Radius         float64 `yaml:"radius" json:"radius"`
	SemiMajor      float64 `yaml:"semi_major" json:"semiMajor"`
	SemiMinor      float64 `yaml:"semi_minor" json:"semiMinor"`
	FocalParameter float64 `yaml:"focal_parameter" json:"focalParameter"`
}

func DefaultParams() Params {
	return Params{
		Radius:         DefaultRadius,
		SemiMajor:      DefaultSemiMajor,
		SemiMinor:      DefaultSemiMinor,
		FocalParameter: DefaultFocalParameter,
	}
}

// Get returns the value of a named parameter.
func (p Params) Get(name ParamName) (float64, error) {
	switch name {
	case ParamRadius:
		return p.Radius, nil
	case ParamSemiMajor:
		return p.SemiMajor, nil
	case ParamSemiMinor:
		return p.SemiMinor, nil
	case ParamFocalParameter:
		return p.FocalParameter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// With returns a copy of p with one parameter replaced.
func (p Params) With(name ParamName, v float64) (Params, error) {
	switch name {
	case ParamRadius:
		p.Radius = v
	case ParamSemiMajor:
		p.SemiMajor = v
	case ParamSemiMinor:
		p.SemiMinor = v
	case ParamFocalParameter:
		p.FocalParameter = v
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return p, nil
}

// Validate checks every value against its range.
func (p Params) Validate() error {
	for _, name := range []ParamName{ParamRadius, ParamSemiMajor, ParamSemiMinor, ParamFocalParameter} {
		v, _ := p.Get(name)
		r := Ranges[name]
		if !r.Contains(v) {
			return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrParameterBounds, name, v, r.Min, r.Max)
		}
	}
	return nil
}

// Clamped returns p with every value forced into its range.
func (p Params) Clamped() Params {
	p.Radius = Ranges[ParamRadius].Clamp(p.Radius)
	p.SemiMajor = Ranges[ParamSemiMajor].Clamp(p.SemiMajor)
	p.SemiMinor = Ranges[ParamSemiMinor].Clamp(p.SemiMinor)
	p.FocalParameter = Ranges[ParamFocalParameter].Clamp(p.FocalParameter)
	return p
}

// Editable lists the parameters a topic exposes, in slider order.
func Editable(t Topic) []ParamName {
	switch t {
	case TopicCircle:
		return []ParamName{ParamRadius}
	case TopicEllipse, TopicHyperbola:
		return []ParamName{ParamSemiMajor, ParamSemiMinor}
	case TopicParabola:
		return []ParamName{ParamFocalParameter}
	}
	return nil
}
