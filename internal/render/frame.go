// Package render projects session state onto the terminal. Render is a pure
// function of the state it is given; every event produces a complete frame.
package render

import (
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/session"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// State is everything a frame depends on.
type State struct {
	Items []model.Item
	// Draft is drawn on the line below the last item while NewItem is set.
	Draft   string
	NewItem bool
	Cursor  session.Position
}

// StateOf snapshots a session.
func StateOf(s *session.Session) State {
	return State{
		Items:   s.Items(),
		Draft:   s.Draft(),
		NewItem: s.Mode().IsNewItem(),
		Cursor:  s.Cursor(),
	}
}

// Line is one screen row. Done marks a completed item's row.
type Line struct {
	Text string
	Done bool
}

// Frame is a full screen: row i+1 holds Lines[i], and the cursor belongs at
// Cursor (1-based; row 0 hides it).
type Frame struct {
	Lines  []Line
	Cursor session.Position
}

func Render(st State) Frame {
	f := Frame{Cursor: st.Cursor}
	for _, it := range st.Items {
		f.Lines = append(f.Lines, Line{Text: ItemLine(it), Done: it.Complete})
	}
	if st.NewItem {
		f.Lines = append(f.Lines, Line{Text: st.Draft})
	}
	return f
}

// ItemLine renders the "-" + glyph + " " + text row for an item.
func ItemLine(it model.Item) string {
	g := glyphIncomplete()
	if it.Complete {
		g = glyphComplete()
	}
	return "-" + g + " " + it.Text
}

// Plain returns the frame's rows without styling or cursor, one per line.
// Tests compare frames through it.
func (f Frame) Plain() string {
	rows := make([]string, 0, len(f.Lines))
	for _, l := range f.Lines {
		rows = append(rows, l.Text)
	}
	return strings.Join(rows, "\n")
}

// View draws the frame for a width x height terminal. Rows are cut to width
// so they never wrap, the cursor cell is drawn in reverse video, and footer
// (if any) is pinned to the last row when there is room below the list.
// Zero dimensions disable the respective limit.
func (f Frame) View(width, height int, footer string) string {
	rows := make([]string, 0, len(f.Lines)+1)
	for i, l := range f.Lines {
		text := l.Text
		if width > 0 {
			text = xansi.Truncate(text, width, "")
		}
		st := lipgloss.NewStyle()
		if l.Done {
			st = styleDone()
		}
		if f.Cursor.Row == i+1 {
			rows = append(rows, drawCursor(text, f.Cursor.Col, width, st))
			continue
		}
		rows = append(rows, st.Render(text))
	}

	// An empty list in View mode still parks the cursor on row 1.
	if f.Cursor.Row == len(f.Lines)+1 && f.Cursor.Row > 0 {
		rows = append(rows, drawCursor("", f.Cursor.Col, width, lipgloss.NewStyle()))
	}

	if footer != "" && height > len(rows)+1 {
		for len(rows) < height-1 {
			rows = append(rows, "")
		}
		if width > 0 {
			footer = xansi.Truncate(footer, width, "")
		}
		rows = append(rows, footer)
	}
	return strings.Join(rows, "\n")
}

// drawCursor overlays a one-cell cursor at 1-based column col on text.
func drawCursor(text string, col, width int, st lipgloss.Style) string {
	if col < 1 {
		col = 1
	}
	if width > 0 && col > width {
		col = width
	}
	textW := xansi.StringWidth(text)
	if col > textW {
		text += strings.Repeat(" ", col-textW)
	}
	left := xansi.Cut(text, 0, col-1)
	under := xansi.Cut(text, col-1, col)
	right := xansi.Cut(text, col, xansi.StringWidth(text))
	if under == "" {
		under = " "
	}

	var b strings.Builder
	if left != "" {
		b.WriteString(st.Render(left))
	}
	b.WriteString(styleCursor().Render(under))
	if strings.TrimRight(right, " ") != "" {
		b.WriteString(st.Render(right))
	}
	return b.String()
}
