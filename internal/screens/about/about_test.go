package about

import (
	"regexp"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var escapes = regexp.MustCompile("\x1b\\[[0-9;:]*[A-Za-z]|\x1b\\][^\x07\x1b]*(\x07|\x1b\\\\)")

func plain(s string) string {
	return escapes.ReplaceAllString(s, "")
}

func TestRender_ContainsSections(t *testing.T) {
	out := plain(Render(100))

	for _, want := range []string{
		"About Heart Disease",
		"Prediction Details",
		"Critical Heart Disease",
		"Disclaimer",
		"heart.org",
		"mayoclinic.org",
		"medlineplus.gov",
	} {
		assert.Contains(t, out, want)
	}
}

func TestAboutScreen_Title(t *testing.T) {
	assert.Equal(t, "About", New().Title())
}

func TestAboutScreen_Scroll(t *testing.T) {
	a := New()
	first := a.View(80, 10)
	require.NotEmpty(t, first)

	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, a.offset)
	assert.NotEqual(t, first, a.View(80, 10))

	a.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	a.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, a.offset, "offset does not go negative")
	assert.Equal(t, first, a.View(80, 10))
}

func TestAboutScreen_ScrollClampedToEnd(t *testing.T) {
	a := New()
	a.View(80, 10)

	a.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	view := a.View(80, 10)

	assert.Equal(t, len(a.lines)-10, a.offset)
	assert.Contains(t, plain(view), "medlineplus.gov")
}

func TestAboutScreen_ViewFitsHeight(t *testing.T) {
	a := New()
	view := a.View(80, 12)
	assert.LessOrEqual(t, strings.Count(view, "\n")+1, 12)
}

func TestAboutScreen_RerendersOnResize(t *testing.T) {
	a := New()
	a.View(120, 30)
	wide := len(a.lines)

	a.View(60, 30)
	assert.Greater(t, len(a.lines), wide)
}
