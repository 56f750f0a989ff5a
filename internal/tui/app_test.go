package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/config"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
)

func newTestApp(t *testing.T, gen tutor.GeneratorFunc) (*App, *tutor.Session) {
	t.Helper()
	session := tutor.NewSession(gen)
	app, err := New(context.Background(), config.DefaultConfig(), session, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app, session
}

func echo(reply string) tutor.GeneratorFunc {
	return func(ctx context.Context, prompt string) (string, error) { return reply, nil }
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(key(k))
	}
	return cmd
}

// drain runs cmd and feeds any tutor reply back into the app, skipping the
// spinner tick.
func drain(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if r, ok := c().(replyMsg); ok {
				a.Update(r)
			}
		}
	case replyMsg:
		a.Update(msg)
	}
}

func TestFocusCycles(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	want := []focus{focusLab, focusChat, focusNav}
	for _, f := range want {
		press(app, "tab")
		if app.focus != f {
			t.Fatalf("expected %s, got %s", f, app.focus)
		}
	}
}

func TestNavigationFollowsSession(t *testing.T) {
	app, session := newTestApp(t, echo("ok"))
	press(app, "j", "j")

	if app.ctl.Topic() != conic.TopicEllipse {
		t.Fatalf("expected ellipse, got %s", app.ctl.Topic())
	}
	if session.Topic() != conic.TopicEllipse {
		t.Errorf("session topic %s", session.Topic())
	}

	press(app, "k", "k", "k")
	if app.ctl.Topic() != conic.TopicHome || app.cursor != 0 {
		t.Errorf("expected to stop at home, got %s", app.ctl.Topic())
	}

	press(app, "6")
	if app.ctl.Topic() != conic.TopicAdvanced {
		t.Errorf("expected advanced, got %s", app.ctl.Topic())
	}
}

func TestLabAdjustsParameters(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	press(app, "3", "tab", "l", "l")

	if got := app.ctl.Params().SemiMajor; got != 3.2 {
		t.Errorf("expected a = 3.2, got %v", got)
	}

	press(app, "j", "H")
	if got := app.ctl.Params().SemiMinor; got != 1.5 {
		t.Errorf("expected b clamped to 1.5, got %v", got)
	}

	press(app, "r")
	if p := app.ctl.Params(); p != conic.DefaultParams() {
		t.Errorf("reset left %+v", p)
	}
}

func TestLabEdit(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	press(app, "2", "tab", "e", "backspace", "backspace", "backspace", "4", ".", "5", "enter")

	if got := app.ctl.Params().Radius; got != 4.5 {
		t.Errorf("expected r = 4.5, got %v", got)
	}
	if app.editing {
		t.Error("edit mode should end on enter")
	}
}

func TestPresetScenario(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	press(app, "3", "tab", "p")

	if app.status != "preset classic" {
		t.Errorf("unexpected status %q", app.status)
	}
	if got := app.ctl.EccentricityLabel(); got != "e = 0.80" {
		t.Errorf("expected e = 0.80, got %q", got)
	}
	if !strings.Contains(app.View(), "e = 0.80") {
		t.Error("eccentricity missing from view")
	}
}

func TestChatRoundTrip(t *testing.T) {
	var prompt string
	app, session := newTestApp(t, func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "椭圆的离心率小于 1", nil
	})
	press(app, "3", "tab", "tab")
	press(app, "出", "题", " ", "x", "backspace")
	if app.Input() != "出题 " {
		t.Fatalf("unexpected input %q", app.Input())
	}

	cmd := press(app, "enter")
	if app.Input() != "" {
		t.Error("input should clear on send")
	}
	if session.State() != tutor.StateSending {
		t.Fatal("expected sending state")
	}
	if !strings.Contains(app.View(), tutor.LoadingText) {
		t.Error("expected loading line while sending")
	}

	drain(app, cmd)
	if session.State() != tutor.StateIdle {
		t.Error("expected idle after reply")
	}
	msgs := session.Transcript()
	if len(msgs) != 3 || msgs[2].Text != "椭圆的离心率小于 1" {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if !strings.Contains(prompt, "椭圆") {
		t.Errorf("prompt not built for ellipse: %q", prompt)
	}
}

func TestChatBlankIgnored(t *testing.T) {
	app, session := newTestApp(t, echo("ok"))
	press(app, "tab", "tab", " ")
	if cmd := press(app, "enter"); cmd != nil {
		t.Error("blank input should not start a turn")
	}
	if len(session.Transcript()) != 1 {
		t.Error("transcript changed")
	}
}

func TestChatErrorStyled(t *testing.T) {
	app, session := newTestApp(t, func(ctx context.Context, p string) (string, error) {
		return "", errors.New("boom")
	})
	press(app, "tab", "tab", "h", "i")
	drain(app, press(app, "enter"))

	msgs := session.Transcript()
	if last := msgs[len(msgs)-1]; !last.IsError || last.Text != tutor.ErrorReply {
		t.Errorf("expected error reply, got %+v", last)
	}
	if !strings.Contains(app.View(), "Check API Key") {
		t.Error("error reply missing from view")
	}
}

func TestChatKeysDoNotQuit(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	press(app, "tab", "tab")
	if cmd := press(app, "q"); cmd != nil {
		t.Error("q in chat should type, not quit")
	}
	if app.Input() != "q" {
		t.Errorf("unexpected input %q", app.Input())
	}
}

func TestThemeCycle(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	before := app.theme.Name
	press(app, "t")
	if app.theme.Name == before {
		t.Error("theme did not change")
	}
}

func TestViews(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 50})

	home := app.View()
	for _, want := range []string{welcomeTitle, tileFooter, tutor.PaneTitle, "星际导航系统"} {
		if !strings.Contains(home, want) {
			t.Errorf("home view missing %q", want)
		}
	}

	press(app, "4")
	hyper := app.View()
	for _, want := range []string{keyPointsHead, realWorldHead, "e = 1.20", "F1", "基础"} {
		if !strings.Contains(hyper, want) {
			t.Errorf("hyperbola view missing %q", want)
		}
	}

	press(app, "6")
	if adv := app.View(); !strings.Contains(adv, "e vs b") {
		t.Error("advanced view missing sweep chart")
	}
}

func TestResizeKeepsCanvasBounded(t *testing.T) {
	app, _ := newTestApp(t, echo("ok"))
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	if app.canvas.Width != minCanvasW || app.canvas.Height != minCanvasH {
		t.Errorf("unexpected canvas %dx%d", app.canvas.Width, app.canvas.Height)
	}
	if got := app.ctl.Scene().Width; got != float64(minCanvasW*2) {
		t.Errorf("scene width %v", got)
	}
}
