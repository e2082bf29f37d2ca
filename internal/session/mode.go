package session

import "fmt"

// TextStart is the width of the "-" + status glyph + " " prefix drawn before
// every item's text.
const TextStart = 4

type modeKind int

const (
	modeView modeKind = iota
	modeNewItem
	modeEditItem
)

// Mode is one of View, NewItem or EditItem(n). The zero value is View.
type Mode struct {
	kind modeKind
	row  int // 1-based item row, only set for EditItem
}

func View() Mode    { return Mode{kind: modeView} }
func NewItem() Mode { return Mode{kind: modeNewItem} }

// EditItem builds the edit mode for the 1-based row n. Session validates n
// against the store before entering it.
func EditItem(n int) Mode { return Mode{kind: modeEditItem, row: n} }

func (m Mode) IsView() bool    { return m.kind == modeView }
func (m Mode) IsNewItem() bool { return m.kind == modeNewItem }

// EditRow reports the row being edited, if any.
func (m Mode) EditRow() (int, bool) {
	if m.kind != modeEditItem {
		return 0, false
	}
	return m.row, true
}

// IsText reports whether keys insert text in this mode.
func (m Mode) IsText() bool { return m.kind == modeNewItem || m.kind == modeEditItem }

func (m Mode) String() string {
	switch m.kind {
	case modeNewItem:
		return "NEW"
	case modeEditItem:
		return fmt.Sprintf("EDIT(%d)", m.row)
	default:
		return "VIEW"
	}
}

// Position is a 1-based terminal cell. Row 0 means nothing is selected.
type Position struct {
	Col int
	Row int
}
