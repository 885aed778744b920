package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-advisor/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(rc *runContext) error {
	model := tui.New(rc.advisor, rc.cfg.DefaultSituation(), rc.logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
