// Package tui provides the Bubble Tea integration: the terminal UI loop,
// input mapping and rendering for a running game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game logic tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given frame rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
