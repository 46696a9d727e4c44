package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SGPA theme (CLI + TUI).
// Shared CLI styles plus one palette per display theme for the board.

const (
	IconSun    = "☀️"
	IconMoon   = "🌙"
	IconPlus   = "➕"
	IconRemove = "✖"
	IconCalc   = "🧮"
	IconBook   = "📘"
	IconError  = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ResultText renders a result line: good when there is a value, muted for the placeholder.
func ResultText(line string, ok bool) string {
	if ok {
		return Good.Render(line)
	}
	return Muted.Render(line)
}

// Palette is the set of board styles for one display theme.
type Palette struct {
	Name string
	// ToggleIcon is the icon offered for switching away from this theme.
	ToggleIcon string

	Page    lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
	Cell    lipgloss.Style
	Focus   lipgloss.Style
	Cursor  lipgloss.Style
	Remove  lipgloss.Style
	Result  lipgloss.Style
	Button  lipgloss.Style
}

// Colors follow the light and dark variants of the web form
// (white/black and gray-800/white, gray borders, red remove button).
var (
	lightPalette = newPalette("light", IconMoon,
		lipgloss.Color("#ffffff"), lipgloss.Color("#000000"),
		lipgloss.Color("#d1d5db"), lipgloss.Color("#4b5563"))
	darkPalette = newPalette("dark", IconSun,
		lipgloss.Color("#1f2937"), lipgloss.Color("#ffffff"),
		lipgloss.Color("#4b5563"), lipgloss.Color("#facc15"))
)

func newPalette(name, icon string, bg, fg, border, iconFg lipgloss.Color) Palette {
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	return Palette{
		Name:       name,
		ToggleIcon: icon,
		Page:       base.Padding(1, 2),
		Text:       base,
		Muted:      base.Foreground(lipgloss.Color("244")),
		Heading:    base.Bold(true).Foreground(iconFg),
		Cell:       base.Border(lipgloss.RoundedBorder()).BorderForeground(border).BorderBackground(bg).Padding(0, 1),
		Focus:      base.Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(cPrimary).BorderBackground(bg).Padding(0, 1),
		Cursor:     base.Bold(true).Foreground(cPrimary),
		Remove:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ef4444")).Padding(0, 1),
		Result:     base.Bold(true),
		Button:     base.Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(fg).BorderBackground(bg).Padding(0, 3),
	}
}

// PaletteFor picks the board palette for the dark flag.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
