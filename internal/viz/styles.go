package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

// Styles is the set of lipgloss styles derived from one theme.
type Styles struct {
	Panel      lipgloss.Style
	FocusPanel lipgloss.Style
	Title      lipgloss.Style
	Header     lipgloss.Style
	Subtle     lipgloss.Style
	KeyHint    lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Value      lipgloss.Style
	Label      lipgloss.Style
	User       lipgloss.Style
	Assistant  lipgloss.Style
	Error      lipgloss.Style
	Loading    lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Panel).
		Padding(0, 1)

	return Styles{
		Panel:      panel,
		FocusPanel: panel.BorderForeground(t.Primary),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Panel),
		Subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Primary),
		Normal:    lipgloss.NewStyle().Foreground(t.Text),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Label:     lipgloss.NewStyle().Foreground(t.Muted),
		User:      lipgloss.NewStyle().Foreground(t.Background).Background(t.Secondary).Padding(0, 1),
		Assistant: lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(t.Error).Padding(0, 1),
		Loading:   lipgloss.NewStyle().Italic(true).Foreground(t.Primary),
	}
}

// Ink returns a bold foreground style in a display color.
func Ink(c conic.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(c)))
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Slider renders a parameter value as a bar across its range.
func Slider(v float64, r conic.Range, width int) string {
	if width < 1 {
		width = 1
	}
	frac := 0.0
	if r.Max > r.Min {
		frac = (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("━", filled) + "●" + strings.Repeat("─", width-filled)
}

// Spinner returns frame of animated spinner
func Spinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// Separator draws a decorative rule.
func Separator(width int, st lipgloss.Style) string {
	if width < 8 {
		return st.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return st.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255))
}
