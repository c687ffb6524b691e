package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for numeric form fields.
type NumberInput struct {
	Model   textinput.Model
	Decimal bool
}

// NewNumberInput creates an unfocused numeric input holding value.
func NewNumberInput(value string, decimal bool, maxWidth int) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(value)
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return NumberInput{Model: ti, Decimal: decimal}
}

// Focus focuses the input and moves the cursor to the end.
func (n *NumberInput) Focus() tea.Cmd {
	n.Model.CursorEnd()
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Update handles messages. Keys that cannot be part of a number are dropped.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	var text string
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		text = msg.Text
	case tea.PasteMsg:
		text = msg.Content
	}
	for _, r := range text {
		if !n.accepts(r) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

func (n NumberInput) accepts(c rune) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '.' && n.Decimal && !strings.Contains(n.Model.Value(), ".")
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the raw text.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// SetValue replaces the text.
func (n *NumberInput) SetValue(s string) {
	n.Model.SetValue(s)
}

// Float parses the text as a number.
func (n NumberInput) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(n.Model.Value()), 64)
}
