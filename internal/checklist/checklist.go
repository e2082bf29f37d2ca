// Package checklist reads and writes the line-oriented markdown checklist format:
//
//	# TODO
//
//	- [ ] buy milk
//
//	- [x] walk dog
//
// Only lines starting with "- [" are items. Everything else (the title, blank
// separators, stray prose) is skipped on read and not preserved on write.
package checklist

import (
	"strings"
	"unicode/utf8"

	"todo-cli/internal/model"
)

const (
	// Header is written as the first line of every document.
	Header = "# TODO"

	itemPrefix = "- ["
	markerAt   = 3
	textAt     = 6
)

// Parse extracts items from a checklist document. Malformed item lines never
// fail; a line too short to carry text yields an item with empty text.
//
// A document whose every line ends in CRLF is read with the CR dropped. In any
// other document a trailing CR belongs to the item text.
func Parse(doc string) []model.Item {
	crlf := isCRLF(doc)
	var items []model.Item
	for _, line := range strings.Split(doc, "\n") {
		if crlf {
			line = strings.TrimSuffix(line, "\r")
		}
		if !strings.HasPrefix(line, itemPrefix) {
			continue
		}
		items = append(items, parseLine(line))
	}
	return items
}

func isCRLF(doc string) bool {
	n := strings.Count(doc, "\n")
	return n > 0 && strings.Count(doc, "\r\n") == n
}

func parseLine(line string) model.Item {
	it := model.Item{}
	if len(line) > markerAt && line[markerAt] == 'x' {
		it.Complete = true
	}
	at := textAt
	// A multi-byte marker ("- [✓] ...") shifts the text; resync on a rune start.
	for at < len(line) && !utf8.RuneStart(line[at]) {
		at++
	}
	if at < len(line) {
		it.Text = line[at:]
	}
	return it
}

// Serialize renders items back into a document Parse understands. Each item is
// preceded by a blank line and the document ends with a newline.
func Serialize(items []model.Item) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("\n")
		b.WriteString(FormatLine(it))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLine renders a single item line, e.g. "- [x] walk dog".
func FormatLine(it model.Item) string {
	return itemPrefix + string(it.Marker()) + "] " + it.Text
}
