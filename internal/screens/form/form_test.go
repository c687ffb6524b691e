package form

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/predict"
)

// stubPredictor records the vectors it receives.
type stubPredictor struct {
	label int
	err   error
	calls []features.Vector
}

func (s *stubPredictor) Predict(v features.Vector) (predict.Result, error) {
	s.calls = append(s.calls, v)
	if s.err != nil {
		return predict.Result{}, s.err
	}
	stage, err := predict.Lookup(s.label)
	return predict.Result{Stage: stage}, err
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	keyTab       = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab  = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyDown      = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft      = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight     = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter     = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyBackspace = tea.KeyPressMsg{Code: tea.KeyBackspace}
	keyReset     = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
)

func send(f *FormScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = f.Update(m)
	}
	return cmd
}

func focusField(t *testing.T, f *FormScreen, idx int) {
	t.Helper()
	for f.focus != idx {
		send(f, keyTab)
	}
}

func TestFormScreen_Title(t *testing.T) {
	assert.Equal(t, "Patient Information", New(nil).Title())
}

func TestFormScreen_StartsAtDefaults(t *testing.T) {
	f := New(nil)

	assert.Equal(t, features.DefaultVector(), f.Vector())
	assert.Equal(t, 0, f.focus)
	assert.Len(t, f.controls, features.NumFeatures)
	assert.Equal(t, "30", f.controls[features.IdxAge].number.Value())
	assert.Equal(t, "1.0", f.controls[features.IdxSTDepression].number.Value())
}

func TestFormScreen_FocusWraps(t *testing.T) {
	f := New(nil)

	send(f, keyShiftTab)
	assert.Equal(t, features.NumFeatures, f.focus, "shift+tab from the first field lands on the button")
	assert.True(t, f.button.Focused)

	send(f, keyTab)
	assert.Equal(t, 0, f.focus)
	assert.False(t, f.button.Focused)

	send(f, keyDown)
	assert.Equal(t, 1, f.focus)
	assert.True(t, f.controls[1].choice.Focused)
}

func TestFormScreen_NumericEntry(t *testing.T) {
	f := New(nil)

	send(f, keyBackspace, keyBackspace, key('4'), key('5'))

	assert.Equal(t, "45", f.controls[features.IdxAge].number.Value())
	assert.Equal(t, 45.0, f.Vector()[features.IdxAge])
}

func TestFormScreen_RefusesOutOfRangeKeystroke(t *testing.T) {
	f := New(nil)

	// 300 exceeds the age maximum of 120.
	send(f, key('0'))

	assert.Equal(t, "30", f.controls[features.IdxAge].number.Value())
	assert.Equal(t, 30.0, f.Vector()[features.IdxAge])
}

func TestFormScreen_RefusesNonNumericKeys(t *testing.T) {
	f := New(nil)

	send(f, key('x'), key('.'), key(' '))

	assert.Equal(t, "30", f.controls[features.IdxAge].number.Value())
}

func TestFormScreen_DecimalField(t *testing.T) {
	f := New(nil)
	focusField(t, f, features.IdxSTDepression)

	// "1.0" -> "1." -> "1" -> "1.5"
	send(f, keyBackspace, keyBackspace, key('.'), key('5'))
	assert.Equal(t, 1.5, f.Vector()[features.IdxSTDepression])

	// A second decimal point is refused.
	send(f, key('.'))
	assert.Equal(t, "1.5", f.controls[features.IdxSTDepression].number.Value())
}

func TestFormScreen_EmptiedFieldRestoredOnBlur(t *testing.T) {
	f := New(nil)

	send(f, keyBackspace, keyBackspace)
	assert.Equal(t, "", f.controls[features.IdxAge].number.Value())
	assert.Equal(t, 30.0, f.Vector()[features.IdxAge], "empty text keeps the stored value")

	send(f, keyTab)
	assert.Equal(t, "30", f.controls[features.IdxAge].number.Value())
}

func TestFormScreen_ChoiceCycling(t *testing.T) {
	f := New(nil)
	focusField(t, f, features.IdxSex)

	send(f, keyRight)
	assert.Equal(t, 1.0, f.Vector()[features.IdxSex])

	// Right at the last option stays put.
	send(f, keyRight)
	assert.Equal(t, 1.0, f.Vector()[features.IdxSex])

	send(f, keyLeft)
	assert.Equal(t, 0.0, f.Vector()[features.IdxSex])
}

func TestFormScreen_ChoiceStoresCode(t *testing.T) {
	f := New(nil)
	focusField(t, f, features.IdxThalassemia)

	send(f, keyRight)
	assert.Equal(t, 6.0, f.Vector()[features.IdxThalassemia])
	send(f, keyRight)
	assert.Equal(t, 7.0, f.Vector()[features.IdxThalassemia])
}

func TestFormScreen_PredictRoundTrip(t *testing.T) {
	p := &stubPredictor{label: 2}
	f := New(p)

	cmd := send(f, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, f.pending)

	// A second press while one is in flight is ignored.
	assert.Nil(t, send(f, keyEnter))

	msg := cmd()
	send(f, msg)

	require.Len(t, p.calls, 1)
	assert.Equal(t, features.DefaultVector(), p.calls[0])
	assert.False(t, f.pending)
	require.NotNil(t, f.result)
	assert.Equal(t, 2, f.result.Label)

	view := f.View(160, 40)
	assert.Contains(t, view, "Prediction: ")
	assert.Contains(t, view, "Stage 2")
}

func TestFormScreen_PredictFromButton(t *testing.T) {
	p := &stubPredictor{label: 0}
	f := New(p)
	send(f, keyShiftTab)
	require.True(t, f.button.Focused)

	cmd := send(f, keyEnter)
	require.NotNil(t, cmd)
	send(f, cmd())

	require.NotNil(t, f.result)
	assert.Equal(t, "green", f.result.Color)
}

func TestFormScreen_PredictUsesEditedValues(t *testing.T) {
	p := &stubPredictor{label: 1}
	f := New(p)

	send(f, keyBackspace, keyBackspace, key('6'), key('3'))
	focusField(t, f, features.IdxSex)
	send(f, keyRight)

	cmd := send(f, keyEnter)
	send(f, cmd())

	require.Len(t, p.calls, 1)
	want := features.DefaultVector()
	want[features.IdxAge] = 63
	want[features.IdxSex] = 1
	assert.Equal(t, want, p.calls[0])
}

func TestFormScreen_PredictError(t *testing.T) {
	p := &stubPredictor{err: &predict.ModelError{Err: errors.New("boom")}}
	f := New(p)

	cmd := send(f, keyEnter)
	send(f, cmd())

	assert.Nil(t, f.result)
	var merr *predict.ModelError
	require.ErrorAs(t, f.err, &merr)
	assert.Contains(t, f.View(160, 40), "Prediction failed")

	// The form stays usable after an error.
	send(f, keyBackspace, keyBackspace, key('5'), key('0'))
	assert.Equal(t, 50.0, f.Vector()[features.IdxAge])
}

func TestFormScreen_NilPredictor(t *testing.T) {
	f := New(nil)

	cmd := send(f, keyEnter)
	send(f, cmd())

	assert.ErrorIs(t, f.err, predict.ErrModelUnavailable)
}

func TestFormScreen_Reset(t *testing.T) {
	p := &stubPredictor{label: 3}
	f := New(p)

	send(f, keyBackspace, key('5'))
	focusField(t, f, features.IdxChestPain)
	send(f, keyRight, keyRight)
	cmd := send(f, keyEnter)
	send(f, cmd())
	require.NotNil(t, f.result)

	send(f, keyReset)

	assert.Equal(t, features.DefaultVector(), f.Vector())
	assert.Equal(t, "30", f.controls[features.IdxAge].number.Value())
	assert.Equal(t, 0, f.controls[features.IdxChestPain].choice.Selected)
	assert.Nil(t, f.result)
	assert.Equal(t, 0, f.focus)
}

func TestFormScreen_ResetDropsInFlightPrediction(t *testing.T) {
	p := &stubPredictor{label: 4}
	f := New(p)

	send(f, keyBackspace, keyBackspace, key('7'), key('0'))
	cmd := send(f, keyEnter)
	require.NotNil(t, cmd)

	send(f, keyReset)
	assert.False(t, f.pending)

	// The reply for the pre-reset values arrives late.
	send(f, cmd())
	assert.Nil(t, f.result)
	assert.Nil(t, f.err)
	assert.Contains(t, f.View(160, 40), "Press Enter to predict.")

	// A fresh prediction after the reset uses the defaults.
	cmd = send(f, keyEnter)
	require.NotNil(t, cmd)
	send(f, cmd())
	require.NotNil(t, f.result)
	require.Len(t, p.calls, 2)
	assert.Equal(t, features.DefaultVector(), p.calls[1])
}

func TestFormScreen_ViewShowsFocusedHelp(t *testing.T) {
	f := New(nil)
	focusField(t, f, features.IdxVessels)

	view := f.View(160, 40)
	assert.Contains(t, view, "fluoroscopy")
	assert.Contains(t, view, "Allowed: 0..3")
}

func TestFormScreen_NarrowViewCollapsesHelp(t *testing.T) {
	f := New(nil)

	view := f.View(80, 24)
	assert.NotContains(t, view, "Enter the age of the patient")
	assert.True(t, strings.Contains(view, "0..120"))
}

func TestFormScreen_KeyHints(t *testing.T) {
	hints := New(nil).KeyHints()
	require.NotEmpty(t, hints)

	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, keys, "?")
	assert.Contains(t, keys, "Ctrl+R")
}
