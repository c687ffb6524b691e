package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/heartstage/internal/screen"
	"github.com/abhisek/heartstage/internal/ui/layout"
	"github.com/abhisek/heartstage/internal/ui/theme"
)

const (
	glamourStyle = "dark"
	pageStep     = 10
)

// AboutScreen shows the background text, stage explanations, disclaimer
// and references. The markdown is rendered once per width.
type AboutScreen struct {
	offset int

	renderedWidth int
	lines         []string
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the about screen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Title() string {
	return "About"
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		a.scroll(-1)
	case "down", "j":
		a.scroll(1)
	case "pgup", "b":
		a.scroll(-pageStep)
	case "pgdown", "f", "space":
		a.scroll(pageStep)
	case "home", "g":
		a.offset = 0
	case "end", "G":
		a.offset = len(a.lines)
	}
	return a, nil
}

// scroll moves the offset. The upper bound is clamped in View, where the
// viewport height is known.
func (a *AboutScreen) scroll(delta int) {
	a.offset += delta
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *AboutScreen) View(width, height int) string {
	a.render(width - 4)

	maxOffset := len(a.lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if a.offset > maxOffset {
		a.offset = maxOffset
	}

	end := a.offset + height
	if end > len(a.lines) {
		end = len(a.lines)
	}
	visible := a.lines[a.offset:end]

	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(visible, "\n"))
}

func (a *AboutScreen) render(width int) {
	if width < 20 {
		width = 20
	}
	if a.lines != nil && a.renderedWidth == width {
		return
	}
	a.renderedWidth = width
	a.lines = strings.Split(strings.TrimRight(Render(width), "\n"), "\n")
}

// Render returns the about text styled for a terminal of the given width.
// If glamour cannot render, the plain markdown is returned wrapped.
func Render(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(Markdown); err == nil {
			return out
		}
	}
	return theme.Body.Width(width).Render(Markdown)
}
