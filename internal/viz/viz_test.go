package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

func TestMapperRoundTrip(t *testing.T) {
	mappers := []Mapper{
		LabMapper(),
		NewMapper(96, 80, 4),
		{Scale: 13.7, OriginX: -5, OriginY: 220.25},
	}
	points := []conic.Point{conic.Pt(0, 0), conic.Pt(1, 1), conic.Pt(-3.3, 7.1), conic.Pt(1e3, -1e-3), conic.Pt(-10, 10)}

	for _, m := range mappers {
		for _, p := range points {
			got := m.FromScreen(m.ToScreen(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("mapper %+v: round trip %v -> %v", m, p, got)
			}
		}
	}
}

func TestMapperInvertsY(t *testing.T) {
	m := LabMapper()
	if got := m.ToScreen(conic.Pt(0, 0)); got != (ScreenPoint{200, 200}) {
		t.Errorf("origin mapped to %v", got)
	}
	if got := m.ToScreen(conic.Pt(1, 1)); got != (ScreenPoint{240, 160}) {
		t.Errorf("(1,1) mapped to %v", got)
	}
}

func TestRenderGrid(t *testing.T) {
	s := RenderLab(conic.Sample(conic.TopicCircle, conic.DefaultParams()))

	if len(s.Grid) != 42 {
		t.Fatalf("expected 42 grid lines, got %d", len(s.Grid))
	}
	if s.Grid[0].From != (ScreenPoint{-200, 600}) || s.Grid[0].To != (ScreenPoint{-200, -200}) {
		t.Errorf("unexpected first grid line %+v", s.Grid[0])
	}
	if s.Axes[0].From.Y != 200 || s.Axes[1].From.X != 200 {
		t.Errorf("axes not through origin: %+v", s.Axes)
	}
}

func TestRenderMarkers(t *testing.T) {
	p := conic.DefaultParams()
	p.SemiMajor, p.SemiMinor = 5, 3
	curve := conic.Sample(conic.TopicEllipse, p)
	s := RenderLab(curve)

	if len(s.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(s.Markers))
	}
	for i, m := range s.Markers {
		if want := "F" + string(rune('1'+i)); m.Label != want {
			t.Errorf("marker %d labelled %q", i, m.Label)
		}
		if m.At != LabMapper().ToScreen(curve.Foci[i]) {
			t.Errorf("marker %d at %v", i, m.At)
		}
	}
	if s.Markers[0].At != (ScreenPoint{40, 200}) {
		t.Errorf("expected F1 at (40,200), got %v", s.Markers[0].At)
	}
	if s.Color != conic.ColorEllipse || s.Eccentricity != 0.8 {
		t.Errorf("unexpected color/eccentricity %s %f", s.Color, s.Eccentricity)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	curve := conic.Sample(conic.TopicHyperbola, conic.DefaultParams())
	before := curve.Branches[0][0]
	s := RenderLab(curve)
	s.Paths[0].Points[0] = ScreenPoint{}

	if curve.Branches[0][0] != before {
		t.Error("render mutated its input")
	}
	if len(s.Paths) != 2 || s.Paths[0].Closed {
		t.Errorf("expected two open paths, got %d", len(s.Paths))
	}
}

func TestRenderAnnotation(t *testing.T) {
	s := RenderLab(conic.Sample(conic.TopicAdvanced, conic.DefaultParams()))
	if s.Annotation == nil {
		t.Fatal("expected annotation")
	}
	if s.Annotation.At != (ScreenPoint{200, 150}) || s.Annotation.Dot != (ScreenPoint{200, 200}) {
		t.Errorf("unexpected annotation placement %+v", s.Annotation)
	}

	home := RenderLab(conic.Sample(conic.TopicHome, conic.DefaultParams()))
	if home.Annotation != nil || len(home.Paths) != 0 || len(home.Grid) != 42 {
		t.Error("home should render only grid and axes")
	}
}

func TestCanvasSetAndUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != rune(blank|0x1|0x80) {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	c.Unset(0, 0)
	if c.Grid[0][0] != rune(blank|0x80) {
		t.Errorf("unexpected cell after unset %U", c.Grid[0][0])
	}
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasDrawScene(t *testing.T) {
	c := NewCanvas(48, 20)
	ctl := c.Mapper(4)
	curve := conic.Sample(conic.TopicEllipse, conic.DefaultParams())
	c.DrawScene(Render(curve, ctl, 96, 80))

	out := c.String()
	if lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n"); len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "F1") || !strings.Contains(out, "F2") {
		t.Error("expected focus labels in raster")
	}

	inked := false
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if c.InkAt(col, row) == conic.ColorEllipse {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("expected cells inked with the curve color")
	}
}

func TestCanvasWideText(t *testing.T) {
	c := NewCanvas(10, 1)
	c.Text(0, 0, "离心", conic.ColorAdvanced)
	if got := strings.TrimRight(c.String(), "\n"); lipgloss.Width(got) != 10 {
		t.Errorf("wide runes should keep the row at 10 cells, got %q", got)
	}
}

func TestCanvasTextOverWide(t *testing.T) {
	tests := []struct {
		name string
		col  int
		text string
	}{
		{"narrow over left half", 0, "e"},
		{"narrow over right half", 1, "e"},
		{"wide shifted by one", 1, "离"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(6, 1)
			c.Text(0, 0, "离心", conic.ColorAdvanced)
			c.Text(tt.col, 0, tt.text, conic.ColorAdvanced)
			got := strings.TrimRight(c.String(), "\n")
			if lipgloss.Width(got) != 6 {
				t.Errorf("row should stay 6 cells wide, got %q (%d)", got, lipgloss.Width(got))
			}
			if !strings.Contains(got, tt.text) {
				t.Errorf("overlay %q missing from %q", tt.text, got)
			}
		})
	}
}

func TestSlider(t *testing.T) {
	r := conic.Ranges[conic.ParamRadius]
	if got := Slider(1, r, 8); got != "●"+strings.Repeat("─", 8) {
		t.Errorf("min slider %q", got)
	}
	if got := Slider(5, r, 8); got != strings.Repeat("━", 8)+"●" {
		t.Errorf("max slider %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "starship" {
		t.Error("unknown theme should fall back to starship")
	}
	seen := map[string]bool{}
	name := ThemeNames()[0]
	for range Themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if len(seen) != len(Themes) {
		t.Errorf("NextTheme did not visit every theme: %v", seen)
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output")
	}
	if !strings.Contains(GradientText("圆锥", "#00f3ff", "#ff00ff"), "锥") {
		t.Error("gradient text lost runes")
	}
	if r, g, b := parseHex("#1e293b"); r != 0x1e || g != 0x29 || b != 0x3b {
		t.Errorf("parseHex = %d %d %d", r, g, b)
	}
}
