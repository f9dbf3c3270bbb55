package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/g3ner1c/tetris/internal/game"
	"github.com/g3ner1c/tetris/internal/piece"
)

// cellStyles maps board cell values to lipgloss styles, following the
// guideline piece colors.
var cellStyles = map[int8]lipgloss.Style{
	int8(piece.KindI): lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // cyan
	int8(piece.KindJ): lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
	int8(piece.KindL): lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	int8(piece.KindO): lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // yellow
	int8(piece.KindS): lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // green
	int8(piece.KindT): lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // magenta
	int8(piece.KindZ): lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	piece.CellGhost:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	piece.CellGarbage: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)

// renderCell draws one board cell as two terminal columns.
func renderCell(v int8) string {
	switch v {
	case piece.CellEmpty:
		return "  "
	case piece.CellGhost:
		return cellStyles[v].Render("░░")
	default:
		style, ok := cellStyles[v]
		if !ok {
			return "  "
		}
		return style.Render("██")
	}
}

// renderPlayfield draws the visible board inside a border.
func renderPlayfield(s game.Snapshot) string {
	var sb strings.Builder
	for r, row := range s.Playfield {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(renderCell(cell))
		}
	}
	return boardStyle.Render(sb.String())
}

// renderPanel draws the sidebar: hold box, queue preview and counters.
func renderPanel(s game.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(panelTitleStyle.Render("HOLD"))
	sb.WriteByte('\n')
	if s.Hold == piece.KindNone {
		sb.WriteString("  -\n")
	} else {
		sb.WriteString("  " + kindLabel(s.Hold) + "\n")
	}

	sb.WriteByte('\n')
	sb.WriteString(panelTitleStyle.Render("NEXT"))
	sb.WriteByte('\n')
	for _, kind := range s.Queue {
		sb.WriteString("  " + kindLabel(kind) + "\n")
	}

	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "score  %d\n", s.Score)
	fmt.Fprintf(&sb, "level  %d\n", s.Level)
	fmt.Fprintf(&sb, "lines  %d\n", s.Lines)
	if s.Combo > 1 {
		fmt.Fprintf(&sb, "combo  x%d\n", s.Combo)
	}
	if s.BackToBack > 1 {
		fmt.Fprintf(&sb, "b2b    x%d\n", s.BackToBack)
	}

	switch s.Status {
	case game.StatusIdle:
		sb.WriteByte('\n')
		sb.WriteString(statusStyle.Render("PAUSED"))
	case game.StatusStopped:
		sb.WriteByte('\n')
		sb.WriteString(statusStyle.Render("GAME OVER"))
	}

	return lipgloss.NewStyle().MarginLeft(2).Render(sb.String())
}

func kindLabel(k piece.Kind) string {
	if style, ok := cellStyles[int8(k)]; ok {
		return style.Render(k.String())
	}
	return k.String()
}

// RenderGame draws the full game view: board, sidebar and help line.
func RenderGame(s game.Snapshot, help string) string {
	view := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderPlayfield(s),
		renderPanel(s),
	)
	if help != "" {
		view += "\n" + help
	}
	return view
}
