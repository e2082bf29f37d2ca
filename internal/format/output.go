// Package format writes machine-readable listings for the CLI.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/model"
)

const (
	JSON = "json"
	EDN  = "edn"
)

// Listing is the payload printed by `todo list`.
type Listing struct {
	Path     string       `json:"path"`
	Total    int          `json:"total"`
	Complete int          `json:"complete"`
	Items    []ListedItem `json:"items"`
}

// ListedItem carries the 1-based row the TUI would show the item on.
type ListedItem struct {
	Row int `json:"row"`
	model.Item
}

func NewListing(path string, items []model.Item) Listing {
	l := Listing{Path: path, Total: len(items), Items: make([]ListedItem, 0, len(items))}
	for i, it := range items {
		if it.Complete {
			l.Complete++
		}
		l.Items = append(l.Items, ListedItem{Row: i + 1, Item: it})
	}
	return l
}

// Write encodes v as json (the default) or edn.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
