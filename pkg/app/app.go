// Package app wires the content browser into a Bubble Tea program.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/app/screens"
	"github.com/devcircle/hub/pkg/data"
	"github.com/devcircle/hub/pkg/site"
)

type App struct {
	source      site.Source
	repo        *data.Repository
	log         *zap.Logger
	initialHash string
}

func New(source site.Source, repo *data.Repository, log *zap.Logger, initialHash string) *App {
	if initialHash == "" {
		initialHash = "#/"
	}
	return &App{source: source, repo: repo, log: log, initialHash: initialHash}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.source, a.repo, a.log, a.initialHash)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
