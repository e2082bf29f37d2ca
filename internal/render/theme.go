package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors adapt to light and dark backgrounds; faint styling is only applied
// on dark terminals, where it stays legible.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorCursorBg lipgloss.TerminalColor = ac("27", "62")
	colorCursorFg lipgloss.TerminalColor = ac("255", "235")
	colorWarnFg   lipgloss.TerminalColor = ac("160", "203")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleDone() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleCursor() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true).Background(colorCursorBg).Foreground(colorCursorFg)
}

// StyleFooter is used for the help line under the list.
func StyleFooter() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// StyleWarning is used for save failures shown in the footer.
func StyleWarning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarnFg).Bold(true)
}

// ApplyColorProfile picks the Lip Gloss color profile for the TUI. NO_COLOR
// disables color; otherwise the terminal's reported capabilities are used,
// upgraded when TERM/COLORTERM claim more than the detector found.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// ApplyTheme overrides background detection: "light" and "dark" force the
// palette, anything else keeps Lip Gloss's own detection.
func ApplyTheme(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}
