package config

import (
	"fmt"
	"slices"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

// Preset is a named set of slider values for one topic.
type Preset struct {
	Description string                      `yaml:"description,omitempty"`
	Values      map[conic.ParamName]float64 `yaml:"values"`
}

// Apply overlays the preset on base. Every value must be editable on t and
// inside its slider range.
func (p *Preset) Apply(t conic.Topic, base conic.Params) (conic.Params, error) {
	editable := conic.Editable(t)
	out := base
	for name, v := range p.Values {
		if !slices.Contains(editable, name) {
			return base, fmt.Errorf("%w: %q is not editable on %s", conic.ErrUnknownParam, name, t)
		}
		if r := conic.Ranges[name]; !r.Contains(v) {
			return base, fmt.Errorf("%w: %s=%g not in [%g, %g]", conic.ErrParameterBounds, name, v, r.Min, r.Max)
		}
		out, _ = out.With(name, v)
	}
	return out, nil
}

var Presets = map[string]map[string]*Preset{
	"circle": {
		"unit": {
			Description: "unit circle",
			Values:      map[conic.ParamName]float64{conic.ParamRadius: 1},
		},
		"default": {
			Description: "radius 3",
			Values:      map[conic.ParamName]float64{conic.ParamRadius: 3},
		},
		"max": {
			Description: "largest slider radius",
			Values:      map[conic.ParamName]float64{conic.ParamRadius: 5},
		},
	},
	"ellipse": {
		"round": {
			Description: "a = b, e = 0",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 3, conic.ParamSemiMinor: 3},
		},
		"classic": {
			Description: "a = 5, b = 3, e = 0.8",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 5, conic.ParamSemiMinor: 3},
		},
		"tall": {
			Description: "foci on the y-axis",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 2, conic.ParamSemiMinor: 4},
		},
		"comet": {
			Description: "highly eccentric orbit",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 5, conic.ParamSemiMinor: 1.5},
		},
	},
	"hyperbola": {
		"equilateral": {
			Description: "a = b, e = sqrt(2)",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 3, conic.ParamSemiMinor: 3},
		},
		"narrow": {
			Description: "a = 3, b = 2",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 3, conic.ParamSemiMinor: 2},
		},
		"wide": {
			Description: "steep asymptotes",
			Values:      map[conic.ParamName]float64{conic.ParamSemiMajor: 1.5, conic.ParamSemiMinor: 5},
		},
	},
	"parabola": {
		"dish": {
			Description: "tight focus, p = 0.5",
			Values:      map[conic.ParamName]float64{conic.ParamFocalParameter: 0.5},
		},
		"default": {
			Description: "p = 2",
			Values:      map[conic.ParamName]float64{conic.ParamFocalParameter: 2},
		},
		"flat": {
			Description: "p = 4",
			Values:      map[conic.ParamName]float64{conic.ParamFocalParameter: 4},
		},
	},
}

// GetPreset looks a preset up in the config's own table first, then in the
// built-ins.
func (c *Config) GetPreset(topic, preset string) *Preset {
	if p, ok := c.Presets[topic][preset]; ok {
		return p
	}
	return GetPreset(topic, preset)
}

// ListPresets lists the built-in and configured presets of a topic.
func (c *Config) ListPresets(topic string) []string {
	names := ListPresets(topic)
	for name := range c.Presets[topic] {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func GetPreset(topic, preset string) *Preset {
	topicPresets, ok := Presets[topic]
	if !ok {
		return nil
	}
	p, ok := topicPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(topic string) []string {
	topicPresets, ok := Presets[topic]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(topicPresets))
	for name := range topicPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
