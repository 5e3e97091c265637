package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Toast styling
var (
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	toastHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Bold(true).
			Padding(0, 1)
)

// toast is a transient notification line shown over the playfield.
// Fire-and-forget: the simulation emits events, the model turns them into
// toasts, and a tick countdown expires them.
type toast struct {
	text      string
	highlight bool
	ticksLeft int
}

// newToast creates a toast that stays visible for the given number of ticks.
func newToast(text string, highlight bool, ticks int) toast {
	return toast{text: text, highlight: highlight, ticksLeft: ticks}
}

// tick counts down one frame. Returns false once expired.
func (t *toast) tick() bool {
	if t.ticksLeft <= 0 {
		return false
	}
	t.ticksLeft--
	return t.ticksLeft > 0
}

// active reports whether the toast should still be drawn.
func (t toast) active() bool {
	return t.ticksLeft > 0 && t.text != ""
}

// render returns the styled toast string.
func (t toast) render() string {
	if t.highlight {
		return toastHighStyle.Render(t.text)
	}
	return toastInfoStyle.Render(t.text)
}
