package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: clinical tones on a dark background
var (
	Primary   = lipgloss.Color("#E11D48") // Heart Red
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Stage colors, keyed by the names the prediction table uses.
var stageColors = map[string]color.Color{
	"green":  lipgloss.Color("#22C55E"),
	"yellow": lipgloss.Color("#EAB308"),
	"orange": lipgloss.Color("#F97316"),
	"red":    lipgloss.Color("#EF4444"),
	"purple": lipgloss.Color("#A855F7"),
}

// StageColor returns the terminal color for a stage color name, or Text.
func StageColor(name string) color.Color {
	if c, ok := stageColors[name]; ok {
		return c
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Form
var (
	Label = lipgloss.NewStyle().
		Foreground(Text)

	LabelFocused = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(TextDim)

	Help = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Border).
		PaddingLeft(1)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)
