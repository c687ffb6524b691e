package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/predict"
	"github.com/abhisek/heartstage/internal/screen"
	"github.com/abhisek/heartstage/internal/ui/components"
	"github.com/abhisek/heartstage/internal/ui/layout"
)

const numericCharLimit = 6

// control is one row of the form: a numeric input or a choice group.
type control struct {
	field  features.Field
	number components.NumberInput
	choice components.ChoiceGroup
}

// FormScreen collects the thirteen patient fields and runs a prediction.
type FormScreen struct {
	predictor predict.Predictor
	form      *features.Form
	controls  []control
	button    components.Button

	// focus indexes controls; len(controls) is the Predict button.
	focus int

	pending bool
	seq     int
	result  *predict.Result
	err     error
}

var _ screen.Screen = (*FormScreen)(nil)

// New creates the form with every field at its default. A nil predictor
// is allowed; pressing Predict then reports the model as unavailable.
func New(p predict.Predictor) *FormScreen {
	f := &FormScreen{
		predictor: p,
		form:      features.NewForm(),
	}
	f.button = components.NewButton("Predict Heart Disease", f.predict)
	f.buildControls()
	f.setFocus(0)
	return f
}

func (f *FormScreen) buildControls() {
	fields := features.Fields()
	f.controls = make([]control, len(fields))
	for i, field := range fields {
		c := control{field: field}
		if field.Kind == features.KindChoice {
			labels := make([]string, len(field.Choices))
			for j, ch := range field.Choices {
				labels[j] = ch.Label
			}
			c.choice = components.NewChoiceGroup(labels, field.ChoiceIndex(f.form.Value(i)))
		} else {
			decimal := !field.Integer
			c.number = components.NewNumberInput(field.Format(f.form.Value(i)), decimal, numericCharLimit)
		}
		f.controls[i] = c
	}
}

func (f *FormScreen) Title() string {
	return "Patient Information"
}

func (f *FormScreen) Init() tea.Cmd {
	if f.focus < len(f.controls) && f.controls[f.focus].field.Kind == features.KindNumeric {
		return f.controls[f.focus].number.Focus()
	}
	return nil
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/Tab", Description: "Field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Predict"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "?", Description: "About"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionMsg:
		if msg.Seq != f.seq {
			return f, nil
		}
		f.pending = false
		if msg.Err != nil {
			f.result = nil
			f.err = msg.Err
			return f, nil
		}
		res := msg.Result
		f.result = &res
		f.err = nil
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case "ctrl+r":
			f.reset()
			return f, f.setFocus(0)
		case "enter":
			if f.focus < len(f.controls) {
				return f, f.predict()
			}
			var cmd tea.Cmd
			f.button, cmd = f.button.Update(msg)
			return f, cmd
		}
		return f, f.updateControl(msg)

	case tea.PasteMsg:
		return f, f.updateControl(msg)
	}

	if f.focus < len(f.controls) && f.controls[f.focus].field.Kind == features.KindNumeric {
		var cmd tea.Cmd
		f.controls[f.focus].number, cmd = f.controls[f.focus].number.Update(msg)
		return f, cmd
	}
	return f, nil
}

// updateControl routes input to the focused control and stores the new
// value in the form. Input that would leave a numeric field outside its
// domain is refused.
func (f *FormScreen) updateControl(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.controls) {
		return nil
	}
	c := &f.controls[f.focus]

	if c.field.Kind == features.KindChoice {
		c.choice, _ = c.choice.Update(msg)
		// Select only fails for an out-of-range index, which ChoiceGroup prevents.
		_ = f.form.Select(c.field.Key, c.choice.Selected)
		return nil
	}

	before := c.number.Value()
	var cmd tea.Cmd
	c.number, cmd = c.number.Update(msg)
	after := c.number.Value()
	if after == before || after == "" {
		return cmd
	}

	v, err := c.number.Float()
	if err != nil {
		// Partial input such as "." is kept until it parses.
		return cmd
	}
	if err := f.form.Set(c.field.Key, v); err != nil {
		c.number.SetValue(before)
		return cmd
	}
	return cmd
}

// setFocus moves focus to idx, wrapping around the button.
func (f *FormScreen) setFocus(idx int) tea.Cmd {
	n := len(f.controls) + 1
	idx = ((idx % n) + n) % n

	if f.focus < len(f.controls) {
		f.blur(f.focus)
	} else {
		f.button.Focused = false
	}

	f.focus = idx
	if idx == len(f.controls) {
		f.button.Focused = true
		return nil
	}

	c := &f.controls[idx]
	if c.field.Kind == features.KindChoice {
		c.choice.Focused = true
		return nil
	}
	return c.number.Focus()
}

// blur leaves control i and rewrites its text from the stored value, so an
// emptied or half-typed field shows what the vector actually holds.
func (f *FormScreen) blur(i int) {
	c := &f.controls[i]
	if c.field.Kind == features.KindChoice {
		c.choice.Focused = false
		return
	}
	c.number.Blur()
	c.number.SetValue(c.field.Format(f.form.Value(i)))
}

func (f *FormScreen) reset() {
	f.form.Reset()
	for i := range f.controls {
		c := &f.controls[i]
		if c.field.Kind == features.KindChoice {
			c.choice.Selected = c.field.ChoiceIndex(f.form.Value(i))
		} else {
			c.number.SetValue(c.field.Format(f.form.Value(i)))
		}
	}
	// An in-flight prediction was for the old values.
	f.seq++
	f.pending = false
	f.result = nil
	f.err = nil
}

// predict snapshots the vector and classifies it off the update loop.
// A press while a prediction is in flight is ignored.
func (f *FormScreen) predict() tea.Cmd {
	if f.pending {
		return nil
	}
	f.pending = true
	f.seq++

	seq := f.seq
	v := f.form.Vector()
	p := f.predictor
	return func() tea.Msg {
		if p == nil {
			return predictionMsg{Seq: seq, Err: &predict.ModelError{Err: predict.ErrModelUnavailable}}
		}
		res, err := p.Predict(v)
		return predictionMsg{Seq: seq, Result: res, Err: err}
	}
}

// Vector returns the values the next prediction would use.
func (f *FormScreen) Vector() features.Vector {
	return f.form.Vector()
}
