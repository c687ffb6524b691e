package form

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/predict"
	"github.com/abhisek/heartstage/internal/ui/layout"
	"github.com/abhisek/heartstage/internal/ui/theme"
)

const (
	labelWidth    = 30
	minHelpWidth  = 28
	columnSpacing = 2
)

// View lays the help pane beside the fields when there is room, and
// otherwise collapses it to one line under them.
func (f *FormScreen) View(width, height int) string {
	left := f.renderFields()
	compact := layout.IsCompactHeight(height)

	pad := lipgloss.NewStyle().Padding(1, 2)
	if compact {
		pad = lipgloss.NewStyle().Padding(0, 2)
	}

	helpWidth := width - lipgloss.Width(left) - columnSpacing - 4
	if helpWidth < minHelpWidth {
		inner := width - 4
		content := lipgloss.JoinVertical(lipgloss.Left,
			left,
			"",
			theme.Hint.Width(inner).Render(f.shortHelp()),
			f.renderResult(inner),
		)
		return pad.Render(content)
	}

	right := []string{f.renderHelp(helpWidth)}
	if !compact {
		right = append(right, "")
	}
	right = append(right, f.renderResult(helpWidth))

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		strings.Repeat(" ", columnSpacing),
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	return pad.Render(content)
}

func (f *FormScreen) shortHelp() string {
	if f.focus >= len(f.controls) {
		return "Runs the model on the values above."
	}
	field := f.controls[f.focus].field
	return field.Name + ": " + field.DomainString()
}

func (f *FormScreen) renderFields() string {
	lines := make([]string, 0, len(f.controls)+2)
	for i, c := range f.controls {
		label := truncate(c.field.Name, labelWidth)
		marker := "  "
		labelStyle := theme.Label
		if i == f.focus {
			marker = lipgloss.NewStyle().Foreground(theme.Secondary).Render("▸ ")
			labelStyle = theme.LabelFocused
		}
		label = labelStyle.Width(labelWidth).Render(label)

		var value string
		if c.field.Kind == features.KindChoice {
			value = c.choice.View()
		} else if i == f.focus {
			value = c.number.View()
		} else {
			value = theme.Value.Render(c.number.Value())
		}
		lines = append(lines, marker+label+" "+value)
	}

	lines = append(lines, "", "  "+f.button.View())
	return strings.Join(lines, "\n")
}

func (f *FormScreen) renderHelp(width int) string {
	if f.focus >= len(f.controls) {
		return theme.Help.Width(width).Render(
			theme.Body.Bold(true).Render("Predict") + "\n\n" +
				"Runs the model on the values above.",
		)
	}

	field := f.controls[f.focus].field
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(field.Name))
	b.WriteString("\n\n")
	b.WriteString(field.Help)
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Allowed: " + field.DomainString()))
	return theme.Help.Width(width).Render(b.String())
}

func (f *FormScreen) renderResult(width int) string {
	style := lipgloss.NewStyle().Width(width)

	switch {
	case f.pending:
		return style.Foreground(theme.TextDim).Italic(true).Render("Predicting…")
	case f.err != nil:
		return style.Foreground(theme.Error).Render("Prediction failed: " + f.err.Error())
	case f.result != nil:
		return style.Render(renderStage(f.result.Stage))
	default:
		return style.Foreground(theme.TextDim).Render("Press Enter to predict.")
	}
}

func renderStage(s predict.Stage) string {
	prefix := theme.Body.Bold(true).Render("Prediction: ")
	text := lipgloss.NewStyle().
		Foreground(theme.StageColor(s.Color)).
		Bold(true).
		Render(s.Text)
	return prefix + text + theme.Hint.Render(fmt.Sprintf("  (label %d)", s.Label))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
