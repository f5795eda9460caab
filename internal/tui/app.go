// Package tui is the terminal front end of the trip planner.
package tui

import (
	"context"
	"fmt"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"strings"
	"voyage/internal/render"
	"voyage/internal/services"
)

// Runner performs one planning attempt into a target.
type Runner interface {
	Run(ctx context.Context, target render.Target, rawInput, rawDays string, observe services.StateObserver) services.Outcome
}

const (
	fieldInterests = iota
	fieldDays
	fieldCount
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52606D"))
	demoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle = lipgloss.NewStyle().MarginTop(1)
)

type stateMsg struct {
	state  services.State
	states <-chan services.State
}

type planFinishedMsg struct {
	outcome services.Outcome
}

// App is the bubbletea model. Only one run is active at a time; submit is
// ignored while one is pending.
type App struct {
	runner Runner
	mode   string

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	target  *MarkdownTarget
	pending bool
	state   services.State
	outcome *services.Outcome
	width   int

	ctx    context.Context
	cancel context.CancelFunc
}

func NewApp(ctx context.Context, runner Runner, mode string) *App {
	interests := textinput.New()
	interests.Placeholder = "beaches, street food and a little hiking"
	interests.Prompt = "› "
	interests.CharLimit = 200
	interests.Focus()

	days := textinput.New()
	days.Prompt = "› "
	days.CharLimit = 2
	days.SetValue(fmt.Sprint(services.DefaultDays))

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(ctx)
	return &App{
		runner:  runner,
		mode:    mode,
		inputs:  []textinput.Model{interests, days},
		spinner: sp,
		target:  &MarkdownTarget{},
		state:   services.StateIdle,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.cancel()
			return a, tea.Quit
		case "tab", "shift+tab", "up", "down":
			return a, a.moveFocus(msg.String() == "shift+tab" || msg.String() == "up")
		case "enter":
			return a, a.submit()
		}

	case stateMsg:
		a.state = msg.state
		return a, waitForState(msg.states)

	case planFinishedMsg:
		a.pending = false
		a.outcome = &msg.outcome
		a.state = services.StateIdle
		return a, nil

	case spinner.TickMsg:
		if !a.pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) moveFocus(back bool) tea.Cmd {
	a.inputs[a.focus].Blur()
	if back {
		a.focus = (a.focus + fieldCount - 1) % fieldCount
	} else {
		a.focus = (a.focus + 1) % fieldCount
	}
	return a.inputs[a.focus].Focus()
}

// submit starts a run unless one is already pending.
func (a *App) submit() tea.Cmd {
	if a.pending {
		return nil
	}
	a.pending = true
	a.outcome = nil
	a.target.Reset()

	states := make(chan services.State, 16)
	userInput := a.inputs[fieldInterests].Value()
	days := a.inputs[fieldDays].Value()

	run := func() tea.Msg {
		defer close(states)
		out := a.runner.Run(a.ctx, a.target, userInput, days, func(s services.State) {
			states <- s
		})
		return planFinishedMsg{outcome: out}
	}
	return tea.Batch(run, waitForState(states), a.spinner.Tick)
}

func waitForState(states <-chan services.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: s, states: states}
	}
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("✈️  VoyageAI Explorer"))
	b.WriteString(statusStyle.Render("  (" + a.mode + ")"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Your interests"))
	b.WriteString("\n")
	b.WriteString(a.inputs[fieldInterests].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Days (1-30)"))
	b.WriteString("\n")
	b.WriteString(a.inputs[fieldDays].View())
	b.WriteString("\n\n")

	if a.pending {
		b.WriteString(a.spinner.View() + " " + statusStyle.Render(string(a.state)))
		b.WriteString("\n")
	} else if a.outcome != nil && a.outcome.Demo {
		b.WriteString(demoStyle.Render("Showing demo data"))
		b.WriteString("\n")
	}

	if md := a.target.Markdown(); md != "" {
		style := resultStyle
		if a.width > 0 {
			style = style.Width(a.width)
		}
		b.WriteString(style.Render(md))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.pending {
		b.WriteString(helpStyle.Render("planning… • esc quit"))
	} else {
		b.WriteString(helpStyle.Render("tab switch field • enter plan trip • esc quit"))
	}
	return b.String()
}

func (a *App) Pending() bool {
	return a.pending
}
