package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

// Level is the difficulty of a lesson module.
type Level int

const (
	LevelBasic Level = iota
	LevelIntermediate
	LevelChallenge
)

var levelLabels = [...]string{
	LevelBasic:        "基础",
	LevelIntermediate: "中档",
	LevelChallenge:    "拔高",
}

func (l Level) String() string {
	if l < LevelBasic || l > LevelChallenge {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelLabels[l]
}

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Icon is a navigation glyph.
type Icon int

const (
	IconRocket Icon = iota
	IconCircle
	IconOrbit
	IconActivity
	IconWifi
	IconZap
)

var iconGlyphs = [...]struct {
	name, glyph string
}{
	IconRocket:   {"rocket", "🚀"},
	IconCircle:   {"circle", "◯"},
	IconOrbit:    {"orbit", "⬭"},
	IconActivity: {"activity", "⋈"},
	IconWifi:     {"wifi", "◠"},
	IconZap:      {"zap", "⚡"},
}

func (i Icon) String() string { return iconGlyphs[i].name }

// Glyph is the terminal rendering of the icon.
func (i Icon) Glyph() string { return iconGlyphs[i].glyph }

func (i Icon) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// Accent is the highlight color of a topic.
type Accent int

const (
	AccentWhite Accent = iota
	AccentNeonBlue
	AccentNeonGreen
	AccentNeonPink
	AccentNeonYellow
	AccentPurple
)

var accentColors = [...]conic.Color{
	AccentWhite:      conic.ColorNeutral,
	AccentNeonBlue:   conic.ColorCircle,
	AccentNeonGreen:  conic.ColorEllipse,
	AccentNeonPink:   conic.ColorHyperbola,
	AccentNeonYellow: conic.ColorParabola,
	AccentPurple:     conic.ColorAdvanced,
}

// Color returns the accent as a display color.
func (a Accent) Color() conic.Color { return accentColors[a] }

func (a Accent) MarshalText() ([]byte, error) { return []byte(a.Color()), nil }

// Module is one lesson of a topic.
type Module struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Duration    string   `json:"duration,omitempty"`
	Level       Level    `json:"level"`
	KeyPoints   []string `json:"keyPoints"`
	Description string   `json:"description"`
}

// Entry is the catalog record of a topic.
type Entry struct {
	Topic     conic.Topic `json:"topic"`
	Title     string      `json:"title"`
	Formula   string      `json:"formula"`
	RealWorld string      `json:"realWorld"`
	Icon      Icon        `json:"icon"`
	Accent    Accent      `json:"color"`
	Modules   []Module    `json:"modules"`
}

// NavLabel is the short navigation label: the title up to its first space.
func (e Entry) NavLabel() string {
	label, _, _ := strings.Cut(e.Title, " ")
	return label
}

// KeyPointSummary renders modules as "title(kp1,kp2); title(kp3)".
func (e Entry) KeyPointSummary() string {
	parts := make([]string, len(e.Modules))
	for i, m := range e.Modules {
		parts[i] = m.Title + "(" + strings.Join(m.KeyPoints, ",") + ")"
	}
	return strings.Join(parts, "; ")
}

// Get returns a copy of the entry for t.
func Get(t conic.Topic) (Entry, error) {
	if !t.Valid() {
		return Entry{}, fmt.Errorf("catalog: %w: %d", conic.ErrUnknownTopic, int(t))
	}
	return clone(sections[t]), nil
}

// MustGet is Get for topics known to be valid.
func MustGet(t conic.Topic) Entry {
	e, err := Get(t)
	if err != nil {
		panic(err)
	}
	return e
}

// All returns every entry in navigation order.
func All() []Entry {
	out := make([]Entry, 0, len(sections))
	for _, t := range conic.Topics() {
		out = append(out, clone(sections[t]))
	}
	return out
}

func clone(e Entry) Entry {
	e.Modules = slices.Clone(e.Modules)
	for i := range e.Modules {
		e.Modules[i].KeyPoints = slices.Clone(e.Modules[i].KeyPoints)
	}
	return e
}
