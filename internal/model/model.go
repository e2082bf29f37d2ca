package model

// Item is a single checklist entry. Items carry no identity of their own; the
// store refers to them by position.
type Item struct {
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

// Marker returns the status character written between the brackets of a
// persisted item line.
func (it Item) Marker() rune {
	if it.Complete {
		return 'x'
	}
	return ' '
}
