// Package publish renders a checklist for reading outside the editor.
package publish

import (
	"fmt"
	"strings"

	"todo-cli/internal/checklist"
	"todo-cli/internal/model"

	"github.com/charmbracelet/glamour"
)

type RenderOptions struct {
	// Style is a glamour standard style name ("dark", "light", "notty", ...).
	Style string
	// Width wraps paragraphs; zero uses 80.
	Width int
	// HideComplete drops completed items from the output.
	HideComplete bool
}

// RenderMarkdown builds a markdown document with a completion summary and a
// task list of the items.
func RenderMarkdown(items []model.Item, opt RenderOptions) string {
	var b strings.Builder
	writeLn := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}

	done := 0
	for _, it := range items {
		if it.Complete {
			done++
		}
	}

	writeLn(checklist.Header)
	writeLn("")
	writeLn(fmt.Sprintf("_%d of %d complete_", done, len(items)))
	writeLn("")
	for _, it := range items {
		if it.Complete && opt.HideComplete {
			continue
		}
		writeLn(checklist.FormatLine(it))
	}
	return b.String()
}

// RenderTerminal renders items through glamour for display on a terminal.
func RenderTerminal(items []model.Item, opt RenderOptions) (string, error) {
	style := strings.TrimSpace(opt.Style)
	if style == "" {
		style = "dark"
	}
	width := opt.Width
	if width <= 0 {
		width = 80
	}
	// WithAutoStyle can block on terminal background queries; use a fixed style.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(RenderMarkdown(items, opt))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
