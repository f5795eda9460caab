package tui

import (
	"context"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"voyage/internal/config"
	"voyage/internal/render"
	"voyage/internal/services"
)

type countingRunner struct {
	mu    sync.Mutex
	calls int
	input string
	days  string
}

func (r *countingRunner) Run(_ context.Context, target render.Target, rawInput, rawDays string, observe services.StateObserver) services.Outcome {
	r.mu.Lock()
	r.calls++
	r.input, r.days = rawInput, rawDays
	r.mu.Unlock()

	observe(services.StateValidating)
	target.Replace("<p class=\"loading\">working</p>")
	observe(services.StateIdle)
	return services.Outcome{Rendered: true}
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drain executes cmd and feeds the resulting messages back into the app
// until nothing is left. Spinner ticks are dropped so the loop ends.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg:
		default:
			_, follow := a.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.Update(key(string(r)))
	}
}

func TestSubmitRunsOnce(t *testing.T) {
	runner := &countingRunner{}
	a := NewApp(context.Background(), runner, "static")

	typeText(a, "beach")
	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, a.Pending())

	// a second enter while pending is ignored
	_, again := a.Update(key("enter"))
	assert.Nil(t, again)

	drain(t, a, cmd)
	assert.False(t, a.Pending())
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, "beach", runner.input)
	assert.Equal(t, "3", runner.days)
	assert.Equal(t, services.StateIdle, a.state)
	assert.Contains(t, a.View(), "working")
}

func TestTabMovesFocusToDays(t *testing.T) {
	runner := &countingRunner{}
	a := NewApp(context.Background(), runner, "static")

	typeText(a, "food")
	a.Update(key("tab"))
	a.inputs[fieldDays].SetValue("")
	typeText(a, "7")

	_, cmd := a.Update(key("enter"))
	drain(t, a, cmd)
	assert.Equal(t, "food", runner.input)
	assert.Equal(t, "7", runner.days)
}

func TestEscCancelsContext(t *testing.T) {
	a := NewApp(context.Background(), &countingRunner{}, "static")

	_, cmd := a.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, a.ctx.Err(), context.Canceled)
}

func TestAppWithRequestController(t *testing.T) {
	cfg := config.FromEnv(func(string) string { return "" })
	mock := services.NewMockPlanner(0).WithSeed(func() uint64 { return 3 })
	controller := services.BuildRequestController(cfg, mock, render.MustNewRenderer())
	a := NewApp(context.Background(), controller, string(cfg.Mode))

	typeText(a, "I love hiking and mountains")
	_, cmd := a.Update(key("enter"))
	drain(t, a, cmd)

	require.NotNil(t, a.outcome)
	assert.True(t, a.outcome.Rendered)
	view := a.View()
	assert.Contains(t, view, "3-Day Adventure")
	assert.Contains(t, view, "Interlaken")
}

func TestAppShowsValidationError(t *testing.T) {
	cfg := config.FromEnv(func(string) string { return "" })
	controller := services.BuildRequestController(cfg, services.NewMockPlanner(0), render.MustNewRenderer())
	a := NewApp(context.Background(), controller, string(cfg.Mode))

	_, cmd := a.Update(key("enter"))
	drain(t, a, cmd)

	require.NotNil(t, a.outcome)
	assert.False(t, a.outcome.Rendered)
	assert.Contains(t, a.View(), "Please tell us about your interests first")
}

func TestMarkdownTarget(t *testing.T) {
	var target MarkdownTarget
	target.Replace("<h2>Your 2-Day Adventure</h2>")
	target.Append("<p><strong>Paris</strong></p>")

	md := target.Markdown()
	assert.Contains(t, md, "## Your 2-Day Adventure")
	assert.Contains(t, md, "**Paris**")

	target.Replace("<p>fresh</p>")
	assert.Equal(t, "fresh", target.Markdown())

	target.Reset()
	assert.Empty(t, target.Markdown())
}
