package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartstage/internal/ui/theme"
)

// ChoiceGroup is an inline single-choice selector cycled with ←/→.
// Space cycles forward and wraps.
type ChoiceGroup struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewChoiceGroup creates a selector with the given option preselected.
func NewChoiceGroup(options []string, selected int) ChoiceGroup {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return ChoiceGroup{Options: options, Selected: selected}
}

// Update handles left/right navigation. Arrows stop at the ends.
func (c ChoiceGroup) Update(msg tea.Msg) (ChoiceGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l", "space":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		} else if kmsg.String() == "space" {
			c.Selected = 0
		}
	}
	return c, nil
}

// View renders the selected option between arrows.
func (c ChoiceGroup) View() string {
	if len(c.Options) == 0 {
		return ""
	}
	arrow := lipgloss.NewStyle().Foreground(theme.Border)
	label := lipgloss.NewStyle().Foreground(theme.Text)
	if c.Focused {
		arrow = arrow.Foreground(theme.Secondary)
		label = label.Foreground(theme.Secondary).Bold(true)
	}

	left, right := " ", " "
	if c.Selected > 0 {
		left = "‹"
	}
	if c.Selected < len(c.Options)-1 {
		right = "›"
	}
	return arrow.Render(left) + " " + label.Render(c.Options[c.Selected]) + " " + arrow.Render(right)
}
