package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

const (
	sliderWidth  = 16
	chatMessages = 6
	sweepSteps   = 36
)

// Home screen copy.
const (
	brandTitle    = "星际几何"
	statusLine    = "System Status: Nominal"
	welcomeTitle  = "欢迎来到圆锥曲线指挥中心"
	welcomeBody   = "这里的每一个公式都对应着宇宙中真实的运行轨迹。点击左侧导航，开始你的探索之旅。"
	tileFooter    = "Access Module"
	realWorldHead = "现实映射 (Real World Link)"
	keyPointsHead = "核心要点"
)

var levelColors = map[catalog.Level]lipgloss.Color{
	catalog.LevelBasic:        lipgloss.Color("#86efac"),
	catalog.LevelIntermediate: lipgloss.Color("#fde047"),
	catalog.LevelChallenge:    lipgloss.Color("#fca5a5"),
}

func (a *App) View() string {
	entry := catalog.MustGet(a.ctl.Topic())

	leftW := max(a.canvas.Width+4, 44)
	rightW := max(a.width-navWidth-leftW-2, 30)

	left := []string{}
	if entry.Topic == conic.TopicHome {
		left = append(left, a.viewWelcome(leftW))
	} else {
		left = append(left, a.viewLab(leftW))
	}
	if entry.RealWorld != "" {
		left = append(left, a.viewRealWorld(entry, leftW))
	}
	left = append(left, a.viewTutor(leftW))

	var right string
	if len(entry.Modules) > 0 {
		right = a.viewModules(entry, rightW)
	} else {
		right = a.viewTiles(rightW)
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(entry),
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, left...),
			"  ",
			right,
		),
		a.viewHelp(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, a.viewNav(), " ", main)
}

func (a *App) panel(f focus) lipgloss.Style {
	if a.focus == f {
		return a.styles.FocusPanel
	}
	return a.styles.Panel
}

func (a *App) viewNav() string {
	var b strings.Builder
	b.WriteString(viz.GradientText(brandTitle, a.theme.Secondary, a.theme.Primary) + "\n")
	b.WriteString(viz.Separator(navWidth-4, a.styles.Subtle) + "\n\n")

	for i, t := range a.topics {
		e := catalog.MustGet(t)
		label := fmt.Sprintf("%s %s", e.Icon.Glyph(), e.NavLabel())
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render(fmt.Sprintf(" %-*s", navWidth-7, label)) + "\n")
		} else {
			b.WriteString(a.styles.Normal.Render(" "+label) + "\n")
		}
	}

	b.WriteString("\n" + a.styles.Subtle.Render(statusLine) + "\n")
	b.WriteString(a.styles.Subtle.Render("theme: " + a.theme.Name))
	return a.panel(focusNav).Width(navWidth - 2).Render(b.String())
}

func (a *App) viewHeader(e catalog.Entry) string {
	title := e.Title
	if e.Topic != conic.TopicHome {
		title = e.Icon.Glyph() + " " + title
	}
	out := viz.Ink(e.Accent.Color()).Render(title)
	if e.Formula != "" {
		out += "\n" + a.styles.Value.Render(e.Formula)
	}
	return a.styles.Header.Render(out) + "\n"
}

func (a *App) viewWelcome(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		viz.Ink(conic.ColorCircle).Render(catalog.IconRocket.Glyph()),
		"",
		a.styles.Title.Render(welcomeTitle),
		"",
		a.styles.Subtle.Width(width-4).Align(lipgloss.Center).Render(welcomeBody),
	)
	return a.panel(focusLab).Width(width - 2).Align(lipgloss.Center).Render(body)
}

func (a *App) viewLab(width int) string {
	c := a.canvas
	c.Clear()
	c.DrawScene(a.ctl.Scene())

	var b strings.Builder
	b.WriteString(c.Render(a.theme) + "\n\n")

	names := a.ctl.Editable()
	params := a.ctl.Params()
	for i, name := range names {
		v, _ := params.Get(name)
		cursor := "  "
		label := a.styles.Label.Render(fmt.Sprintf("%-2s", name))
		if a.focus == focusLab && i == a.paramCursor {
			cursor = a.styles.Title.Render("▸ ")
			label = a.styles.Value.Render(fmt.Sprintf("%-2s", name))
		}
		val := fmt.Sprintf("%4.1f", v)
		if a.editing && i == a.paramCursor {
			val = fmt.Sprintf("%4s", a.editBuf+"_")
		}
		slider := viz.Ink(a.ctl.Curve().Color).Render(viz.Slider(v, conic.Ranges[name], sliderWidth))
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, label, slider, a.styles.Value.Render(val)))
	}

	if e := a.ctl.EccentricityLabel(); e != "" {
		b.WriteString("\n" + viz.Ink(a.ctl.Curve().Color).Render(e) + "\n")
	}
	if a.ctl.Topic() == conic.TopicAdvanced {
		b.WriteString("\n" + a.viewSweep(width-6) + "\n")
	}
	if a.status != "" {
		b.WriteString(a.styles.Subtle.Render(a.status))
	}
	return a.panel(focusLab).Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

// viewSweep charts e against b for a fixed a, ellipse and hyperbola together.
func (a *App) viewSweep(width int) string {
	p := a.ctl.Params()
	r := conic.Ranges[conic.ParamSemiMinor]
	ellipse := conic.Eccentricities(conic.Sweep(conic.TopicEllipse, p.SemiMajor, r.Min, r.Max, sweepSteps))
	hyperbola := conic.Eccentricities(conic.Sweep(conic.TopicHyperbola, p.SemiMajor, r.Min, r.Max, sweepSteps))
	return asciigraph.PlotMany([][]float64{ellipse, hyperbola},
		asciigraph.Height(6),
		asciigraph.Width(max(width-8, 10)),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("e vs b (a=%.1f)", p.SemiMajor)),
	)
}

func (a *App) viewRealWorld(e catalog.Entry, width int) string {
	head := a.styles.Label.Bold(true).Render(catalog.IconActivity.Glyph() + " " + realWorldHead)
	body := a.styles.Normal.Width(width - 4).Render(e.RealWorld)
	return a.styles.Panel.Width(width - 2).Render(head + "\n" + body)
}

func (a *App) viewTutor(width int) string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("✦ "+tutor.PaneTitle) + "\n\n")

	msgs := a.session.Transcript()
	if len(msgs) > chatMessages {
		msgs = msgs[len(msgs)-chatMessages:]
	}
	inner := width - 6
	for _, m := range msgs {
		switch {
		case m.IsError:
			b.WriteString(a.styles.Error.Width(inner).Render(m.Text))
		case m.Role == tutor.RoleUser:
			b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, a.styles.User.MaxWidth(inner).Render(m.Text)))
		default:
			b.WriteString(a.styles.Assistant.Width(inner).Render(m.Text))
		}
		b.WriteString("\n")
	}

	if a.session.State() == tutor.StateSending {
		b.WriteString(a.styles.Loading.Render(viz.Spinner(a.frame)+" "+tutor.LoadingText) + "\n")
	}

	b.WriteString("\n")
	switch {
	case a.input != "":
		b.WriteString(a.styles.Normal.Render("> " + a.input))
	case a.focus == focusChat:
		b.WriteString(a.styles.Subtle.Render("> " + tutor.Placeholder))
	default:
		b.WriteString(a.styles.Subtle.Render("> "))
	}
	if a.focus == focusChat {
		b.WriteString(a.styles.Title.Render("_"))
	}
	return a.panel(focusChat).Width(width - 2).Render(b.String())
}

func (a *App) viewModules(e catalog.Entry, width int) string {
	cards := make([]string, 0, len(e.Modules))
	for _, m := range e.Modules {
		var b strings.Builder
		badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(levelColors[m.Level]).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(levelColors[m.Level]).
			Render(m.Level.String())
		b.WriteString(badge)
		if m.Duration != "" {
			b.WriteString(a.styles.Subtle.Render("  ◷ " + m.Duration))
		}
		b.WriteString("\n" + a.styles.Normal.Bold(true).Render(m.Title) + "\n")
		b.WriteString(a.styles.Subtle.Width(width-6).Render("│ "+m.Description) + "\n")
		b.WriteString(a.styles.Label.Bold(true).Render("◎ "+keyPointsHead) + "\n")
		for _, kp := range m.KeyPoints {
			b.WriteString(a.styles.Title.Render("› ") + a.styles.Normal.Render(kp) + "\n")
		}
		cards = append(cards, a.styles.Panel.Width(width-2).Render(strings.TrimRight(b.String(), "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// viewTiles lists every curve topic with its jump key.
func (a *App) viewTiles(width int) string {
	tileW := max(width/2-2, 20)
	var rows, row []string
	for i, t := range a.topics {
		if t == conic.TopicHome {
			continue
		}
		e := catalog.MustGet(t)
		body := viz.Ink(e.Accent.Color()).Render(e.Title) + "\n\n" +
			a.styles.Subtle.Render(fmt.Sprintf("[%d] %s ›", i+1, tileFooter))
		row = append(row, a.styles.Panel.Width(tileW).Height(4).Render(body))
		if len(row) == 2 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) viewHelp() string {
	var hints []string
	switch a.focus {
	case focusNav:
		hints = []string{"j/k topic", "1-6 jump", "enter open"}
	case focusLab:
		hints = []string{"j/k param", "h/l adjust", "H/L ×10", "e edit", "p preset", "r reset"}
	case focusChat:
		hints = []string{"enter send", "esc back"}
	}
	hints = append(hints, "tab focus")
	if a.focus != focusChat {
		hints = append(hints, "t theme", "q quit")
	}
	return a.styles.KeyHint.Render(strings.Join(hints, "  ·  "))
}
