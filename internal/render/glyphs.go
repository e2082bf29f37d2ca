package render

import (
	"strings"
	"sync"
)

// Terminals without emoji fonts can switch to an ASCII glyph set. Both sets
// are two cells wide so the text always starts in the same column.

type GlyphSet int

const (
	GlyphsUnicode GlyphSet = iota
	GlyphsASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = GlyphsUnicode
)

// ParseGlyphSet maps a config value to a glyph set. Unknown values fall back
// to Unicode.
func ParseGlyphSet(v string) GlyphSet {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "ascii":
		return GlyphsASCII
	default:
		return GlyphsUnicode
	}
}

func SetGlyphs(gs GlyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() GlyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func (gs GlyphSet) String() string {
	switch gs {
	case GlyphsASCII:
		return "ASCII"
	default:
		return "Unicode"
	}
}

func glyphComplete() string {
	if glyphs() == GlyphsASCII {
		return "ok"
	}
	return "✅"
}

func glyphIncomplete() string {
	if glyphs() == GlyphsASCII {
		return "--"
	}
	return "❌"
}
