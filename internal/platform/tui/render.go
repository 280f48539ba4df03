package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-hunt/internal/sim"
)

// Styles for the hunt board.
var (
	agentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	deadStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	preyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	threatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lossStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// renderHunt draws the board, a HUD line, and the help footer.
func renderHunt(snap sim.Snapshot, variant string, paused bool, helpView string) string {
	var b strings.Builder

	hud := fmt.Sprintf("HUNT [%s]  turn %d  level %d  kills %d  monsters %d",
		variant, snap.Turn, snap.Agent.Level, snap.Agent.Kills, len(snap.Monsters))
	b.WriteString(hudStyle.Render(hud))
	if paused {
		b.WriteString(noteStyle.Render("  (paused)"))
	}
	b.WriteString("\n\n")

	b.WriteString(borderStyle.Render(renderBoard(snap)))
	b.WriteString("\n")

	if snap.Over {
		if snap.Agent.Alive {
			b.WriteString(winStyle.Render(fmt.Sprintf("Victory on turn %d. Press r for a new hunt.", snap.Turn)))
		} else {
			b.WriteString(lossStyle.Render(fmt.Sprintf("The agent fell on turn %d. Press r for a new hunt.", snap.Turn)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(noteStyle.Render(helpView))

	return b.String()
}

// renderBoard draws the grid. Monsters show their facing arrow and a level
// digit, colored by whether the agent can take them. Cells in a monster's
// line of sight are marked.
func renderBoard(snap sim.Snapshot) string {
	type tile struct {
		text  string
		style lipgloss.Style
	}

	grid := make([][]tile, snap.Rows)
	for r := range grid {
		grid[r] = make([]tile, snap.Cols)
		for c := range grid[r] {
			grid[r][c] = tile{text: " .", style: emptyStyle}
		}
	}

	for _, d := range snap.Danger {
		grid[d.Row][d.Col] = tile{text: " !", style: dangerStyle}
	}

	for _, m := range snap.Monsters {
		style := threatStyle
		if m.Level <= snap.Agent.Level {
			style = preyStyle
		}
		text := fmt.Sprintf("%s%s", m.Facing.Arrow(), levelGlyph(m.Level))
		grid[m.Pos.Row][m.Pos.Col] = tile{text: text, style: style}
	}

	a := snap.Agent
	if a.Alive {
		grid[a.Pos.Row][a.Pos.Col] = tile{text: " A", style: agentStyle}
	} else {
		grid[a.Pos.Row][a.Pos.Col] = tile{text: " X", style: deadStyle}
	}

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteRune('\n')
		}
		for _, t := range row {
			b.WriteString(t.style.Render(t.text))
		}
	}
	return b.String()
}

// levelGlyph renders a level as one character; double digits collapse to "+".
func levelGlyph(level int) string {
	if level > 9 {
		return "+"
	}
	return fmt.Sprintf("%d", level)
}
