package control

import (
	"fmt"
	"math"
	"strconv"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

// Preset overlays stored slider values on a parameter set.
type Preset interface {
	Apply(t conic.Topic, base conic.Params) (conic.Params, error)
}

// Controller owns the selected topic and the shape parameters. Every change
// resamples the curve and re-renders the scene before returning.
type Controller struct {
	topic  conic.Topic
	params conic.Params

	mapper        viz.Mapper
	width, height float64

	curve conic.Curve
	scene viz.Scene
}

// New starts a controller on topic with params clamped into the slider
// ranges, rendering through m onto a width×height canvas.
func New(topic conic.Topic, params conic.Params, m viz.Mapper, width, height float64) (*Controller, error) {
	if !topic.Valid() {
		return nil, fmt.Errorf("%w: %d", conic.ErrUnknownTopic, int(topic))
	}
	c := &Controller{
		topic:  topic,
		params: params.Clamped(),
		mapper: m,
		width:  width,
		height: height,
	}
	c.recompute()
	return c, nil
}

// NewLab renders onto the 400×400 lab canvas.
func NewLab(topic conic.Topic, params conic.Params) (*Controller, error) {
	return New(topic, params, viz.LabMapper(), viz.LabWidth, viz.LabHeight)
}

func (c *Controller) Topic() conic.Topic   { return c.topic }
func (c *Controller) Params() conic.Params { return c.params }
func (c *Controller) Curve() conic.Curve   { return c.curve }
func (c *Controller) Scene() viz.Scene     { return c.scene }

// Editable lists the sliders of the current topic.
func (c *Controller) Editable() []conic.ParamName {
	return conic.Editable(c.topic)
}

// SetTopic switches topic. Parameters of every topic are retained.
func (c *Controller) SetTopic(t conic.Topic) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", conic.ErrUnknownTopic, int(t))
	}
	c.topic = t
	c.recompute()
	return nil
}

// Set assigns a parameter, clamped into its range, and returns the value
// actually stored.
func (c *Controller) Set(name conic.ParamName, v float64) (float64, error) {
	r, ok := conic.Ranges[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", conic.ErrUnknownParam, name)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s is NaN", conic.ErrParameterBounds, name)
	}
	v = r.Clamp(v)
	c.params, _ = c.params.With(name, v)
	c.recompute()
	return v, nil
}

// Nudge moves a parameter by steps slider increments, snapping to the step grid.
func (c *Controller) Nudge(name conic.ParamName, steps int) (float64, error) {
	r, ok := conic.Ranges[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", conic.ErrUnknownParam, name)
	}
	cur, _ := c.params.Get(name)
	next := math.Round((cur+float64(steps)*r.Step)/r.Step) * r.Step
	// Strip the float noise the multiply leaves behind (3.0000000000000004).
	next, _ = strconv.ParseFloat(strconv.FormatFloat(next, 'f', 6, 64), 64)
	return c.Set(name, next)
}

// ApplyPreset switches to t and overlays the preset values.
func (c *Controller) ApplyPreset(t conic.Topic, p Preset) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", conic.ErrUnknownTopic, int(t))
	}
	params, err := p.Apply(t, c.params)
	if err != nil {
		return err
	}
	c.topic = t
	c.params = params.Clamped()
	c.recompute()
	return nil
}

// Reset restores the default parameters, keeping the topic.
func (c *Controller) Reset() {
	c.params = conic.DefaultParams()
	c.recompute()
}

// Resize renders through a new mapper, for example after a terminal resize.
func (c *Controller) Resize(m viz.Mapper, width, height float64) {
	c.mapper, c.width, c.height = m, width, height
	c.recompute()
}

// EccentricityLabel is shown only for ellipse and hyperbola.
func (c *Controller) EccentricityLabel() string {
	switch c.topic {
	case conic.TopicEllipse, conic.TopicHyperbola:
		return fmt.Sprintf("e = %.2f", c.curve.Eccentricity)
	}
	return ""
}

// GetParams returns the current topic's sliders keyed by name.
func (c *Controller) GetParams() map[string]float64 {
	out := make(map[string]float64)
	for _, name := range c.Editable() {
		v, _ := c.params.Get(name)
		out[string(name)] = v
	}
	return out
}

// SetParam is Set keyed by a plain string.
func (c *Controller) SetParam(name string, value float64) error {
	_, err := c.Set(conic.ParamName(name), value)
	return err
}

func (c *Controller) recompute() {
	c.curve = conic.Sample(c.topic, c.params)
	c.scene = viz.Render(c.curve, c.mapper, c.width, c.height)
}
