package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/animequotes/pkg/app/screens"
	"github.com/kerbaras/animequotes/pkg/config"
	"github.com/kerbaras/animequotes/pkg/logging"
)

type App struct {
	bundle  *config.Bundle
	options []tea.ProgramOption
}

// NewApp prepares the slideshow. Extra program options are appended after
// the alt screen option, which lets tests swap input and output.
func NewApp(bundle *config.Bundle, options ...tea.ProgramOption) *App {
	return &App{bundle: bundle, options: options}
}

// Run blocks until the user quits. bubbletea restores the terminal on every
// return path, including panics inside the model.
func (a *App) Run() error {
	model := screens.NewSlideScreen(a.bundle)
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.options...)
	p := tea.NewProgram(model, opts...)

	logging.Info("starting slideshow", "quotes", len(a.bundle.Quotes))
	_, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		logging.Info("interrupted")
		return nil
	}
	return err
}
