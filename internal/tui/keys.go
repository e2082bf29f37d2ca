package tui

import (
	"todo-cli/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	// View mode.
	quit    key.Binding
	del     key.Binding
	toggle  key.Binding
	newItem key.Binding
	edit    key.Binding
	down    key.Binding
	up      key.Binding
	reorder key.Binding

	// NewItem / EditItem.
	interrupt  key.Binding
	confirm    key.Binding
	backspace  key.Binding
	wordDelete key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		del:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		newItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		reorder: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "done first")),

		interrupt:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		wordDelete: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
	}
}

func (k keyMap) viewHelp() []key.Binding {
	return []key.Binding{k.newItem, k.edit, k.toggle, k.del, k.reorder, k.down, k.up, k.quit}
}

func (k keyMap) textHelp() []key.Binding {
	return []key.Binding{k.confirm, k.backspace, k.wordDelete, k.interrupt}
}

// commands decodes a key press for the given mode. Keys with no meaning in
// that mode decode to a single OpNone so the event is still processed.
func (k keyMap) commands(msg tea.KeyMsg, mode session.Mode) []session.Command {
	if mode.IsText() {
		return k.textCommands(msg)
	}
	switch {
	case key.Matches(msg, k.quit):
		return []session.Command{session.Cmd(session.OpQuit)}
	case key.Matches(msg, k.del):
		return []session.Command{session.Cmd(session.OpDelete)}
	case key.Matches(msg, k.toggle):
		return []session.Command{session.Cmd(session.OpToggle)}
	case key.Matches(msg, k.newItem):
		return []session.Command{session.Cmd(session.OpNew)}
	case key.Matches(msg, k.edit):
		return []session.Command{session.Cmd(session.OpEdit)}
	case key.Matches(msg, k.down):
		return []session.Command{session.Cmd(session.OpDown)}
	case key.Matches(msg, k.up):
		return []session.Command{session.Cmd(session.OpUp)}
	case key.Matches(msg, k.reorder):
		return []session.Command{session.Cmd(session.OpReorder)}
	}
	return []session.Command{session.Cmd(session.OpNone)}
}

func (k keyMap) textCommands(msg tea.KeyMsg) []session.Command {
	switch {
	case key.Matches(msg, k.interrupt):
		return []session.Command{session.Cmd(session.OpQuit)}
	case key.Matches(msg, k.confirm):
		return []session.Command{session.Cmd(session.OpConfirm)}
	case key.Matches(msg, k.backspace):
		return []session.Command{session.Cmd(session.OpBackspace)}
	case key.Matches(msg, k.wordDelete):
		return []session.Command{session.Cmd(session.OpWordDelete)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []session.Command{session.Insert(' ')}
	case tea.KeyRunes:
		// Pasted text arrives as one message with many runes.
		cmds := make([]session.Command, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\n' || r == '\r' {
				continue
			}
			cmds = append(cmds, session.Insert(r))
		}
		if len(cmds) > 0 {
			return cmds
		}
	}
	return []session.Command{session.Cmd(session.OpNone)}
}
