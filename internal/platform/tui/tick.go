// Package tui provides the Bubble Tea integration for the snaze
// simulation: the terminal loop, board rendering, run history view, and
// SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation turn.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given frames-per-second rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
