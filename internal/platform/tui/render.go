package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/engine"
	"github.com/tiehuis/tetrs/internal/rotation"
)

// pieceStyles maps piece types to their conventional colors.
var pieceStyles = map[core.PieceType]lipgloss.Style{
	core.PieceI: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // cyan
	core.PieceJ: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
	core.PieceL: lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	core.PieceS: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // green
	core.PieceZ: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	core.PieceT: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // magenta
	core.PieceO: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // yellow
}

var (
	frameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ghostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Playfield cells are rendered two columns wide to look roughly square.
const (
	cellFilled = "[]"
	cellGhost  = "::"
	cellEmpty  = "  "
)

func pieceStyle(t core.PieceType) lipgloss.Style {
	if s, ok := pieceStyles[t]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// cellsOf returns the absolute cells of a rendered piece state, or nil when
// the slot is empty (the entry delay between pieces).
func cellsOf(p engine.PieceState, rs rotation.System) []core.Offset {
	if p.Type == core.PieceNone {
		return nil
	}
	data := rs.Data(p.Type, p.R)
	cells := make([]core.Offset, len(data))
	for i, o := range data {
		cells[i] = core.Offset{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// RenderGame renders a snapshot as a bordered playfield with a side panel
// showing the hold slot, the preview queue and statistics. Hidden rows are
// cut off; the ghost piece is drawn under the active piece.
func RenderGame(snap engine.Snapshot, rs rotation.System) string {
	piece := cellsOf(snap.Piece, rs)
	ghost := cellsOf(snap.Ghost, rs)

	overlay := make(map[core.Offset]string, len(piece)+len(ghost))
	for _, c := range ghost {
		overlay[c] = ghostStyle.Render(cellGhost)
	}
	for _, c := range piece {
		overlay[c] = pieceStyle(snap.Piece.Type).Render(cellFilled)
	}

	var sb strings.Builder
	for y := snap.Hidden; y < snap.Height; y++ {
		sb.WriteString(frameStyle.Render("|"))
		for x := 0; x < snap.Width; x++ {
			if cell, ok := overlay[core.Offset{X: x, Y: y}]; ok {
				sb.WriteString(cell)
				continue
			}
			if t := snap.Cells[y][x]; t != core.PieceNone {
				sb.WriteString(pieceStyle(t).Render(cellFilled))
			} else {
				sb.WriteString(cellEmpty)
			}
		}
		sb.WriteString(frameStyle.Render("|"))
		sb.WriteRune('\n')
	}
	sb.WriteString(frameStyle.Render("+" + strings.Repeat("-", snap.Width*2) + "+"))

	board := sb.String()
	panel := renderPanel(snap, rs)
	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
}

func renderPanel(snap engine.Snapshot, rs rotation.System) string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("hold"))
	sb.WriteRune('\n')
	sb.WriteString(renderMini(snap.Hold, rs))
	sb.WriteRune('\n')

	sb.WriteString(labelStyle.Render("next"))
	sb.WriteRune('\n')
	for _, t := range snap.Preview {
		sb.WriteString(renderMini(t, rs))
	}
	sb.WriteRune('\n')

	fmt.Fprintf(&sb, "lines  %d\n", snap.Stats.Lines)
	fmt.Fprintf(&sb, "pieces %d\n", snap.Stats.Pieces)
	fmt.Fprintf(&sb, "fours  %d\n", snap.Stats.Fours)
	fmt.Fprintf(&sb, "ticks  %d\n", snap.Ticks)

	if !snap.Running {
		sb.WriteRune('\n')
		sb.WriteString(gameOverStyle.Render("game over"))
		sb.WriteRune('\n')
		sb.WriteString(labelStyle.Render("r restart / q quit"))
	}

	return sb.String()
}

// renderMini draws a piece in its spawn orientation into a small box for the
// hold and preview panels.
func renderMini(t core.PieceType, rs rotation.System) string {
	if t == core.PieceNone {
		return "........\n........\n"
	}

	lo := rotation.Min(rs, t, core.R0)
	hi := rotation.Max(rs, t, core.R0)

	style := pieceStyle(t)
	var sb strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		pad := 4
		for x := lo.X; x <= hi.X; x++ {
			if pieceAt(rs, t, x, y) {
				sb.WriteString(style.Render(cellFilled))
			} else {
				sb.WriteString(cellEmpty)
			}
			pad--
		}
		sb.WriteString(strings.Repeat(cellEmpty, pad))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func pieceAt(rs rotation.System, t core.PieceType, x, y int) bool {
	for _, o := range rs.Data(t, core.R0) {
		if o.X == x && o.Y == y {
			return true
		}
	}
	return false
}
