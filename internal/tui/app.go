package tui

import (
	"fmt"
	"io"

	"todo-cli/internal/config"
	"todo-cli/internal/render"
	"todo-cli/internal/session"
	"todo-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type appModel struct {
	file    store.File
	sess    *session.Session
	persist string
	logger  *log.Logger

	keys keyMap
	help help.Model

	width  int
	height int

	// dirty is set while the file is known to lag behind the list.
	dirty   bool
	saveErr error
	// err is a state-machine failure; the program quits and Run returns it.
	err error
}

func newAppModel(file store.File, sess *session.Session, opts Options) appModel {
	persist := opts.Persist
	if persist == "" {
		persist = config.PersistAlways
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShortSeparator = "  "
	return appModel{
		file:    file,
		sess:    sess,
		persist: persist,
		logger:  logger,
		keys:    newKeyMap(),
		help:    h,
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quit := false
	for _, c := range m.keys.commands(msg, m.sess.Mode()) {
		res, err := m.sess.Apply(c)
		if err != nil {
			m.err = fmt.Errorf("session: %w", err)
			m.logger.Error("state machine failure", "key", msg.String(), "mode", m.sess.Mode(), "err", err)
			if m.dirty {
				m.save()
			}
			return m, tea.Quit
		}
		if res.Changed {
			m.dirty = true
		}
		if res.Quit {
			quit = true
			break
		}
	}

	if quit {
		// Everything up to here was already saved unless a save failed.
		if m.dirty {
			m.save()
		}
		return m, tea.Quit
	}

	if m.persist == config.PersistAlways || m.dirty {
		m.save()
	}
	return m, nil
}

func (m *appModel) save() {
	if err := m.file.Save(m.sess.Items()); err != nil {
		if m.saveErr == nil {
			m.logger.Error("save failed", "path", m.file.Path, "err", err)
		}
		m.saveErr = err
		return
	}
	if m.saveErr != nil {
		m.logger.Info("save recovered", "path", m.file.Path)
	}
	m.saveErr = nil
	m.dirty = false
}

func (m appModel) View() string {
	frame := render.Render(render.StateOf(m.sess))
	return frame.View(m.width, m.height, m.footer())
}

func (m appModel) footer() string {
	if m.saveErr != nil {
		return render.StyleWarning().Render("not saved: " + m.saveErr.Error())
	}
	bindings := m.keys.viewHelp()
	if m.sess.Mode().IsText() {
		bindings = m.keys.textHelp()
	}
	return render.StyleFooter().Render(m.sess.Mode().String()) + "  " + m.help.ShortHelpView(bindings)
}
