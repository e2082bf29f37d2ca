package store

import (
	"fmt"
	"sort"

	"todo-cli/internal/model"
)

// IndexError reports an index outside the list. Callers derive indices from
// the current length, so seeing one means the caller's bookkeeping is wrong.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// List is the ordered set of items for a session. Indices are 0-based and only
// valid until the next Append, Remove or Reorder.
type List struct {
	items []model.Item
}

func NewList(items []model.Item) *List {
	return &List{items: append([]model.Item(nil), items...)}
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the current items in display order.
func (l *List) Items() []model.Item {
	return append([]model.Item(nil), l.items...)
}

func (l *List) At(i int) (model.Item, error) {
	if err := l.check("at", i); err != nil {
		return model.Item{}, err
	}
	return l.items[i], nil
}

func (l *List) Append(it model.Item) {
	l.items = append(l.items, it)
}

func (l *List) Remove(i int) error {
	if err := l.check("remove", i); err != nil {
		return err
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

func (l *List) Toggle(i int) error {
	if err := l.check("toggle", i); err != nil {
		return err
	}
	l.items[i].Complete = !l.items[i].Complete
	return nil
}

func (l *List) SetText(i int, text string) error {
	if err := l.check("set text", i); err != nil {
		return err
	}
	l.items[i].Text = text
	return nil
}

// Reorder moves complete items ahead of incomplete ones, keeping the relative
// order inside each group.
func (l *List) Reorder() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].Complete && !l.items[j].Complete
	})
}

func (l *List) check(op string, i int) error {
	if i < 0 || i >= len(l.items) {
		return IndexError{Op: op, Index: i, Len: len(l.items)}
	}
	return nil
}
