package game

import (
	"fmt"
	"strings"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/piece"
)

// Playfield returns the visible board with the active piece and its
// ghost overlaid, for rendering.
func (g *Game) Playfield() *board.Board {
	pf, err := g.GetPlayfield(0)
	if err != nil {
		// Unreachable for a zero buffer.
		panic(err)
	}
	return pf
}

// GetPlayfield is Playfield extended by that many rows of the hidden
// buffer area, for front-ends that render above the frame.
func (g *Game) GetPlayfield(buffer int) (*board.Board, error) {
	visible := g.Height()
	if buffer < 0 || buffer > g.board.Rows()-visible {
		return nil, fmt.Errorf("game: buffer of %d rows is outside the hidden area", buffer)
	}

	b := g.board.Copy()
	p := g.piece

	ghostX := p.X
	for x := p.X + 1; x < b.Rows(); x++ {
		if g.rotation.Overlaps(p.Minos, x, p.Y) {
			break
		}
		ghostX = x
	}

	// The piece overwrites its own ghost when they coincide.
	for _, m := range p.Minos {
		b.Set(ghostX+m.X, p.Y+m.Y, piece.CellGhost)
		b.Set(p.X+m.X, p.Y+m.Y, int8(p.Kind))
	}

	return b.View(b.Rows()-visible-buffer, b.Rows())
}

// Snapshot is an immutable copy of everything a front-end renders.
type Snapshot struct {
	Playfield  [][]int8
	Queue      []piece.Kind
	Hold       piece.Kind
	Score      int
	Level      int
	Lines      int
	Combo      int
	BackToBack int
	Status     Status
}

// Snapshot captures the current render state in one call.
func (g *Game) Snapshot() Snapshot {
	pf := g.Playfield()
	rows := make([][]int8, pf.Rows())
	for r := range rows {
		rows[r] = append([]int8(nil), pf.Row(r)...)
	}
	return Snapshot{
		Playfield:  rows,
		Queue:      g.Queue(),
		Hold:       g.hold,
		Score:      g.scorer.Score(),
		Level:      g.scorer.Level(),
		Lines:      g.scorer.Lines(),
		Combo:      g.scorer.Combo(),
		BackToBack: g.scorer.BackToBack(),
		Status:     g.status,
	}
}

// String renders the visible playfield as text, one letter per mino,
// with "@" for the ghost and "X" for garbage.
func (g *Game) String() string {
	pf := g.Playfield()
	var sb strings.Builder
	for r := 0; r < pf.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < pf.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch v := pf.Get(r, c); v {
			case piece.CellEmpty:
				sb.WriteByte(' ')
			case piece.CellGhost:
				sb.WriteByte('@')
			case piece.CellGarbage:
				sb.WriteByte('X')
			default:
				sb.WriteString(piece.Kind(v).String())
			}
		}
	}
	return sb.String()
}
