package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/linux-ref-guide/internal/content"
	"github.com/atomicstack/linux-ref-guide/internal/format/table"
	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	"github.com/atomicstack/linux-ref-guide/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	SidebarWidth int
	Style        string
	Wrap         int
	Start        string
}

// Guide is a fully wired application ready to run.
type Guide struct {
	Model      *ui.Model
	Controller *nav.Controller
	Dispatcher *nav.Dispatcher
}

var newProgram = func(model tea.Model) runner {
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

type runner interface {
	Run() (tea.Model, error)
}

// Build assembles the catalog, content, controller and UI.
func Build(cfg Config) (*Guide, error) {
	catalog := menu.BuildCatalog()
	keys := nav.DefaultKeyMap()
	reg, err := content.New(content.WithKeyTable(table.Format(keys.Rows(), nil)))
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := checkContent(catalog, reg); err != nil {
		return nil, err
	}
	start, err := nav.ParseTarget(catalog, cfg.Start)
	if err != nil {
		return nil, err
	}

	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		SidebarWidth: cfg.SidebarWidth,
		Style:        cfg.Style,
		Wrap:         cfg.Wrap,
		Keys:         keys,
	})
	ctrl := nav.NewController(catalog, reg, model)
	dispatcher := nav.NewDispatcher(ctrl)
	model.Bind(ctrl, dispatcher)
	if start != menu.MainMenu() {
		ctrl.Jump(start)
	}
	return &Guide{Model: model, Controller: ctrl, Dispatcher: dispatcher}, nil
}

// checkContent verifies every catalog topic has an authored body.
func checkContent(catalog *menu.Catalog, reg *content.Registry) error {
	topics := map[content.Level][]string{}
	for _, id := range catalog.IDs() {
		if level, topic, ok := nav.SplitTopicID(id); ok {
			topics[level] = append(topics[level], topic)
		}
	}
	for _, level := range content.Levels() {
		if err := reg.Require(level, topics[level]...); err != nil {
			return fmt.Errorf("content incomplete: %w", err)
		}
	}
	return nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	guide, err := Build(cfg)
	if err != nil {
		return err
	}
	_, err = newProgram(guide.Model).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		events.App.Exit("error")
		return err
	}
	events.App.Exit("quit")
	return nil
}
