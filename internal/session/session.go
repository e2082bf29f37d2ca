// Package session implements the modal edit loop over a checklist: cursor
// movement, toggling, deleting and reordering in View mode, and the small
// line editor used by NewItem and EditItem.
package session

import (
	"fmt"

	"todo-cli/internal/model"
	"todo-cli/internal/store"
)

// Result describes the effect of one Apply call.
type Result struct {
	// Quit is set when the session should end.
	Quit bool
	// Changed is set when the item list (order, text or completion) changed.
	Changed bool
}

// Session holds the mode, the View-mode selection row and the NewItem draft.
// The cursor is never stored; Cursor derives it from this state.
type Session struct {
	list  *store.List
	mode  Mode
	row   int
	draft []rune
}

func New(list *store.List) *Session {
	if list == nil {
		list = store.NewList(nil)
	}
	return &Session{list: list, mode: View(), row: 1}
}

func (s *Session) Mode() Mode          { return s.mode }
func (s *Session) Draft() string       { return string(s.draft) }
func (s *Session) Items() []model.Item { return s.list.Items() }
func (s *Session) Len() int            { return s.list.Len() }

// Cursor returns the terminal cell the cursor belongs on for the current mode.
func (s *Session) Cursor() Position {
	switch {
	case s.mode.IsNewItem():
		return Position{Col: 1 + len(s.draft), Row: s.list.Len() + 1}
	case s.mode.kind == modeEditItem:
		n := s.mode.row
		col := TextStart + 1
		if it, err := s.list.At(n - 1); err == nil {
			col += len([]rune(it.Text))
		}
		return Position{Col: col, Row: n}
	default:
		return Position{Col: 1, Row: s.row}
	}
}

// Apply runs one command through the state machine. A non-nil error means the
// session tried to touch an item that does not exist, which is a bug in the
// transition logic rather than a user error.
func (s *Session) Apply(c Command) (Result, error) {
	if c.Op == OpQuit {
		return Result{Quit: true}, nil
	}
	switch s.mode.kind {
	case modeNewItem:
		return s.applyNewItem(c), nil
	case modeEditItem:
		return s.applyEditItem(c)
	default:
		return s.applyView(c)
	}
}

func (s *Session) selected() bool {
	return s.row >= 1 && s.row <= s.list.Len()
}

func (s *Session) applyView(c Command) (Result, error) {
	switch c.Op {
	case OpDelete:
		if s.list.Len() == 0 || !s.selected() {
			return Result{}, nil
		}
		if err := s.list.Remove(s.row - 1); err != nil {
			return Result{}, fmt.Errorf("delete row %d: %w", s.row, err)
		}
		if s.row > s.list.Len() {
			s.row = s.list.Len()
		}
		return Result{Changed: true}, nil

	case OpToggle:
		if !s.selected() {
			return Result{}, nil
		}
		if err := s.list.Toggle(s.row - 1); err != nil {
			return Result{}, fmt.Errorf("toggle row %d: %w", s.row, err)
		}
		return Result{Changed: true}, nil

	case OpNew:
		s.mode = NewItem()
		s.draft = nil

	case OpEdit:
		if s.selected() {
			s.mode = EditItem(s.row)
		}

	case OpDown:
		if s.row < s.list.Len() {
			s.row++
		}

	case OpUp:
		if s.row > 0 {
			s.row--
		}

	case OpReorder:
		s.row = 1
		s.list.Reorder()
		return Result{Changed: true}, nil
	}
	return Result{}, nil
}

func (s *Session) applyNewItem(c Command) Result {
	switch c.Op {
	case OpWordDelete:
		s.draft = deleteWordBackward(s.draft)

	case OpConfirm:
		changed := false
		if len(s.draft) > 0 {
			s.list.Append(model.Item{Text: string(s.draft)})
			changed = true
		}
		s.draft = nil
		s.mode = View()
		s.row = s.list.Len()
		return Result{Changed: changed}

	case OpBackspace:
		if len(s.draft) > 0 {
			s.draft = s.draft[:len(s.draft)-1]
		}

	case OpInsert:
		s.draft = append(s.draft, c.Rune)
	}
	return Result{}
}

func (s *Session) applyEditItem(c Command) (Result, error) {
	n := s.mode.row
	it, err := s.list.At(n - 1)
	if err != nil {
		return Result{}, fmt.Errorf("edit row %d: %w", n, err)
	}
	text := []rune(it.Text)

	switch c.Op {
	case OpConfirm:
		s.mode = View()
		s.row = n
		return Result{}, nil

	case OpWordDelete:
		text = deleteWordBackward(text)

	case OpBackspace:
		if len(text) > 0 {
			text = text[:len(text)-1]
		}

	case OpInsert:
		text = append(text, c.Rune)

	default:
		return Result{}, nil
	}

	if string(text) == it.Text {
		return Result{}, nil
	}
	if err := s.list.SetText(n-1, string(text)); err != nil {
		return Result{}, fmt.Errorf("edit row %d: %w", n, err)
	}
	return Result{Changed: true}, nil
}

// deleteWordBackward pops characters off the end of buf until it has popped a
// space or run out. The space is consumed, so "buy milk" becomes "buy" and
// "buy " becomes "buy".
func deleteWordBackward(buf []rune) []rune {
	for len(buf) > 0 {
		last := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		if last == ' ' {
			break
		}
	}
	return buf
}
