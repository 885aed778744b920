// Package tui provides an interactive terminal advisor: type a scenario
// line, get the evaluation and recommendation rendered in place.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// Model is the Bubble Tea model for the interactive advisor
type Model struct {
	advisor  *advisor.Advisor
	defaults advisor.Situation
	logger   *log.Logger

	input    textinput.Model
	output   string
	errText  string
	quitting bool
}

// New creates the interactive advisor model
func New(adv *advisor.Advisor, defaults advisor.Situation, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "HOLE [BOARD] [POSITION] [PLAYERS], e.g. AsKs AhTd2c BTN 6"
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		advisor:  adv,
		defaults: defaults,
		logger:   logger.WithPrefix("tui"),
		input:    ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.evaluate(m.input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate parses the scenario line and renders advice into the output pane
func (m *Model) evaluate(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	sc, err := advisor.ParseScenario(line, m.defaults)
	if err != nil {
		m.errText = err.Error()
		m.output = ""
		return
	}

	eval, rec, err := m.advisor.Advise(sc.Hole, sc.Board, sc.Situation)
	if err != nil {
		m.errText = err.Error()
		m.output = ""
		return
	}

	m.logger.Debug("evaluated scenario", "line", line, "tier", eval.TierName)
	m.errText = ""
	m.output = report.Render(sc.Hole, sc.Board, eval, rec, sc.Situation)
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(" ♠ ♥ Hold'em Advisor ♦ ♣ "))
	fmt.Fprintln(&b)

	if m.errText != "" {
		fmt.Fprintln(&b, errorStyle.Render("error: "+m.errText))
		fmt.Fprintln(&b)
	} else if m.output != "" {
		fmt.Fprintln(&b, m.output)
	}

	fmt.Fprintln(&b, m.input.View())
	fmt.Fprintln(&b, helpStyle.Render("enter: evaluate • esc: quit"))
	return b.String()
}
