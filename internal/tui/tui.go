package tui

import (
	"fmt"

	"todo-cli/internal/model"
	"todo-cli/internal/render"
	"todo-cli/internal/session"
	"todo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Options struct {
	Glyphs  string
	Theme   string
	Persist string
	Logger  *log.Logger

	// ProgramOptions are passed to bubbletea after the defaults (alt screen).
	ProgramOptions []tea.ProgramOption
}

// Run edits items interactively, saving to file as configured, until the user
// quits. The terminal is restored on every exit path, including errors.
func Run(file store.File, items []model.Item, opts Options) error {
	glyphs := render.ParseGlyphSet(opts.Glyphs)
	render.SetGlyphs(glyphs)
	render.ApplyColorProfile()
	render.ApplyTheme(opts.Theme)
	if opts.Logger != nil {
		opts.Logger.Debug("terminal setup", "glyphs", glyphs, "theme", opts.Theme)
	}

	sess := session.New(store.NewList(items))
	m := newAppModel(file, sess, opts)

	progOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(appModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
