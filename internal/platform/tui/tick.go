// Package tui provides the Bubble Tea integration for Gap Glider.
// It handles the terminal UI loop, input mapping, notifications and
// score persistence around the pure simulation in internal/glider.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. The loop is kept alive by rescheduling on every tick;
// quitting simply stops rescheduling, so no callback leaks on teardown.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
