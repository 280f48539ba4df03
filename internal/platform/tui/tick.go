// Package tui provides the Bubble Tea front end for watching a hunt
// unfold. It is a pure observer: it reads snapshots and calls Step, and
// the simulation never knows it is being watched.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the simulation by one turn.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after the delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
