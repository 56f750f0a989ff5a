package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/config"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/control"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/logger"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

type focus int

const (
	focusNav focus = iota
	focusLab
	focusChat
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusLab:
		return "lab"
	case focusChat:
		return "chat"
	}
	return "nav"
}

const (
	navWidth     = 26
	minCanvasW   = 20
	minCanvasH   = 8
	spinnerEvery = 100 * time.Millisecond
)

// replyMsg carries the outcome of a tutor call back into Update.
type replyMsg struct {
	turn  tutor.Turn
	reply string
	err   error
}

type tickMsg time.Time

// App is the bubbletea model of the shell.
type App struct {
	cfg     *config.Config
	ctl     *control.Controller
	session *tutor.Session
	log     *logger.Logger
	ctx     context.Context

	topics []conic.Topic
	cursor int
	focus  focus

	paramCursor int
	presetIdx   int
	editing     bool
	editBuf     string
	status      string

	input string
	frame int

	theme  viz.Theme
	styles viz.Styles
	canvas *viz.Canvas

	width, height int
}

// New builds the shell from a validated config. session may be shared with
// other front-ends; log may be nil.
func New(ctx context.Context, cfg *config.Config, session *tutor.Session, log *logger.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Nop()
	}
	canvas := viz.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	ctl, err := control.New(cfg.Topic, cfg.Params, canvas.Mapper(cfg.Canvas.Scale),
		float64(canvas.Width*2), float64(canvas.Height*4))
	if err != nil {
		return nil, err
	}
	if err := session.SetTopic(cfg.Topic); err != nil {
		return nil, err
	}

	theme := viz.GetTheme(cfg.Theme)
	a := &App{
		cfg:     cfg,
		ctl:     ctl,
		session: session,
		log:     log,
		ctx:     ctx,
		topics:  conic.Topics(),
		theme:   theme,
		styles:  viz.NewStyles(theme),
		canvas:  canvas,
		width:   120,
		height:  40,
	}
	for i, t := range a.topics {
		if t == cfg.Topic {
			a.cursor = i
		}
	}
	return a, nil
}

// Run starts the shell on the alternate screen and blocks until it quits.
func Run(ctx context.Context, cfg *config.Config, session *tutor.Session, log *logger.Logger) error {
	app, err := New(ctx, cfg, session, log)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resizeCanvas()
	case replyMsg:
		if m, ok := a.session.Complete(msg.turn, msg.reply, msg.err); ok && m.IsError {
			a.log.Debug("tutor reply failed", "seq", msg.turn.Seq)
		}
	case tickMsg:
		if a.session.State() == tutor.StateSending {
			a.frame++
			return a, tick()
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.editing, a.editBuf = false, ""
		a.focus = (a.focus + 1) % focusCount
		return a, nil
	case "shift+tab":
		a.editing, a.editBuf = false, ""
		a.focus = (a.focus + focusCount - 1) % focusCount
		return a, nil
	}

	switch a.focus {
	case focusChat:
		return a.chatKey(msg)
	case focusLab:
		if a.editing {
			return a.editKey(msg)
		}
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "t":
		a.theme = viz.NextTheme(a.theme.Name)
		a.styles = viz.NewStyles(a.theme)
		return a, nil
	case "1", "2", "3", "4", "5", "6":
		i, _ := strconv.Atoi(msg.String())
		a.selectTopic(i - 1)
		return a, nil
	}

	if a.focus == focusLab {
		return a.labKey(msg)
	}
	return a.navKey(msg)
}

func (a *App) navKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.selectTopic(a.cursor - 1)
	case "down", "j":
		a.selectTopic(a.cursor + 1)
	case "enter", " ", "right", "l":
		if a.ctl.Topic().HasCurve() {
			a.focus = focusLab
		} else {
			a.focus = focusChat
		}
	}
	return a, nil
}

func (a *App) labKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := a.ctl.Editable()
	switch msg.String() {
	case "esc":
		a.focus = focusNav
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(names)-1 {
			a.paramCursor++
		}
	case "left", "h":
		a.nudge(-1)
	case "right", "l":
		a.nudge(1)
	case "H":
		a.nudge(-10)
	case "L":
		a.nudge(10)
	case "enter", "e":
		if len(names) > 0 {
			v, _ := a.ctl.Params().Get(names[a.paramCursor])
			a.editing, a.editBuf = true, strconv.FormatFloat(v, 'f', 1, 64)
		}
	case "p":
		a.nextPreset()
	case "r":
		a.ctl.Reset()
		a.status = "reset"
	}
	return a, nil
}

func (a *App) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		names := a.ctl.Editable()
		if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil && a.paramCursor < len(names) {
			got, err := a.ctl.Set(names[a.paramCursor], v)
			if err != nil {
				a.status = err.Error()
			} else {
				a.status = fmt.Sprintf("%s = %.1f", names[a.paramCursor], got)
			}
		}
		a.editing, a.editBuf = false, ""
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' {
				a.editBuf += string(c)
			}
		}
	}
	return a, nil
}

func (a *App) chatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.focus = focusNav
	case tea.KeyEnter:
		return a, a.submit()
	case tea.KeyBackspace:
		if r := []rune(a.input); len(r) > 0 {
			a.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.input += " "
	case tea.KeyRunes:
		a.input += string(msg.Runes)
	}
	return a, nil
}

// submit starts a tutor turn and returns the command that completes it.
func (a *App) submit() tea.Cmd {
	turn, ok := a.session.Begin(a.input)
	if !ok {
		return nil
	}
	a.input = ""
	a.frame = 0
	session, ctx := a.session, a.ctx
	return tea.Batch(func() tea.Msg {
		reply, err := session.Send(ctx, turn)
		return replyMsg{turn: turn, reply: reply, err: err}
	}, tick())
}

func tick() tea.Cmd {
	return tea.Tick(spinnerEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) selectTopic(i int) {
	if i < 0 || i >= len(a.topics) {
		return
	}
	t := a.topics[i]
	if err := a.ctl.SetTopic(t); err != nil {
		a.status = err.Error()
		return
	}
	if err := a.session.SetTopic(t); err != nil {
		a.status = err.Error()
		return
	}
	a.cursor = i
	a.paramCursor, a.presetIdx = 0, 0
	a.status = ""
}

func (a *App) nudge(steps int) {
	names := a.ctl.Editable()
	if a.paramCursor >= len(names) {
		return
	}
	v, err := a.ctl.Nudge(names[a.paramCursor], steps)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = fmt.Sprintf("%s = %.1f", names[a.paramCursor], v)
}

// nextPreset applies the topic's presets in name order, wrapping around.
func (a *App) nextPreset() {
	topic := a.ctl.Topic()
	names := a.cfg.ListPresets(topic.String())
	if len(names) == 0 {
		a.status = "no presets"
		return
	}
	name := names[a.presetIdx%len(names)]
	a.presetIdx++
	if err := a.ctl.ApplyPreset(topic, a.cfg.GetPreset(topic.String(), name)); err != nil {
		a.status = err.Error()
		return
	}
	a.status = "preset " + name
}

// resizeCanvas fits the lab canvas into the left column of the window.
func (a *App) resizeCanvas() {
	w := min(a.cfg.Canvas.Width, max((a.width-navWidth)/2-4, minCanvasW))
	h := min(a.cfg.Canvas.Height, max(a.height-16, minCanvasH))
	if w == a.canvas.Width && h == a.canvas.Height {
		return
	}
	a.canvas = viz.NewCanvas(w, h)
	a.ctl.Resize(a.canvas.Mapper(a.cfg.Canvas.Scale), float64(w*2), float64(h*4))
}

// Input returns the unsent chat text.
func (a *App) Input() string { return a.input }
