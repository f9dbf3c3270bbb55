// Package rotation implements rotation systems: the guideline SRS, a
// TETR.IO-compatible variant with 180° kicks, and a classic no-kick
// system. All collision checks in the engine funnel through Overlaps.
package rotation

import (
	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/piece"
)

// transition keys a kick table entry by (from, to) rotation states.
type transition struct {
	from, to int
}

// kickTable maps rotation transitions to ordered candidate offsets. The
// in-place placement is always tried before the table is consulted.
type kickTable map[transition][]piece.Offset

// shapes holds the four rotation states of each kind as (row, col)
// offsets into the piece's bounding box, row 0 at the top.
var shapes = map[piece.Kind][4][]piece.Offset{
	piece.KindI: {
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
		{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
	},
	piece.KindL: {
		{{X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	},
	piece.KindJ: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	},
	piece.KindS: {
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	},
	piece.KindZ: {
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}},
	},
	piece.KindT: {
		{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}},
		{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	},
	piece.KindO: {
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
}

// srsKicks is the shared guideline kick table for everything but the I
// piece. 180° transitions are deliberately absent: plain SRS only allows
// a 180° spin when the target shape already fits in place.
var srsKicks = kickTable{
	{0, 1}: {{X: 0, Y: -1}, {X: -1, Y: -1}, {X: 2, Y: 0}, {X: 2, Y: -1}},
	{0, 3}: {{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	{1, 0}: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: -2, Y: 0}, {X: -2, Y: 1}},
	{1, 2}: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: -2, Y: 0}, {X: -2, Y: 1}},
	{2, 1}: {{X: 0, Y: -1}, {X: -1, Y: -1}, {X: 2, Y: 0}, {X: 2, Y: -1}},
	{2, 3}: {{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	{3, 0}: {{X: 0, Y: -1}, {X: 1, Y: -1}, {X: -2, Y: 0}, {X: -2, Y: -1}},
	{3, 2}: {{X: 0, Y: -1}, {X: 1, Y: -1}, {X: -2, Y: 0}, {X: -2, Y: -1}},
}

// srsIKicks is the I piece's own table; its footprint differs from every
// other shape.
var srsIKicks = kickTable{
	{0, 1}: {{X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: -2}, {X: -2, Y: 1}},
	{0, 3}: {{X: 0, Y: -1}, {X: 0, Y: 2}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{1, 0}: {{X: 0, Y: 2}, {X: 0, Y: -1}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	{1, 2}: {{X: 0, Y: -1}, {X: 0, Y: 2}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{2, 1}: {{X: 0, Y: 1}, {X: 0, Y: -2}, {X: 2, Y: 1}, {X: -1, Y: 2}},
	{2, 3}: {{X: 0, Y: 2}, {X: 0, Y: -1}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	{3, 0}: {{X: 0, Y: 1}, {X: 0, Y: -2}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	{3, 2}: {{X: 0, Y: -2}, {X: 0, Y: 1}, {X: 1, Y: -2}, {X: -2, Y: 1}},
}

// Shape returns the mino offsets for a kind at a rotation state.
func Shape(kind piece.Kind, r int) []piece.Offset {
	return shapes[kind][((r%4)+4)%4]
}

// SRS is the Super Rotation System found in guideline games.
type SRS struct {
	board  *board.Board
	kicks  kickTable
	iKicks kickTable
}

// NewSRS builds an SRS rotation system operating on the given board.
func NewSRS(b *board.Board) *SRS {
	return &SRS{board: b, kicks: srsKicks, iKicks: srsIKicks}
}

// Spawn places a fresh piece just above the visible area, roughly
// centered.
func (s *SRS) Spawn(kind piece.Kind) *piece.Piece {
	mx := s.board.Rows()
	my := s.board.Cols()

	return &piece.Piece{
		Kind:  kind,
		X:     mx/2 - 2,
		Y:     (my+3)/2 - 3,
		R:     0,
		Minos: append([]piece.Offset(nil), shapes[kind][0]...),
	}
}

// Rotate turns the piece, trying the in-place placement first and then
// each kick offset in table order. On failure the piece is unchanged.
func (s *SRS) Rotate(p *piece.Piece, turns int) {
	toR := (((p.R + turns) % 4) + 4) % 4
	minos := shapes[p.Kind][toR]

	if !s.Overlaps(minos, p.X, p.Y) {
		p.R = toR
	} else if kicks, ok := s.tableFor(p.Kind)[transition{p.R, toR}]; ok {
		for _, k := range kicks {
			if !s.Overlaps(minos, p.X+k.X, p.Y+k.Y) {
				p.X += k.X
				p.Y += k.Y
				p.R = toR
				break
			}
		}
	}

	p.Minos = append(p.Minos[:0], shapes[p.Kind][p.R]...)
}

func (s *SRS) tableFor(kind piece.Kind) kickTable {
	if kind == piece.KindI {
		return s.iKicks
	}
	return s.kicks
}

// Overlaps reports whether any mino, offset by (x, y), lies outside the
// board or on an occupied cell. Every collision check in the engine
// reduces to this predicate.
func (s *SRS) Overlaps(minos []piece.Offset, x, y int) bool {
	for _, m := range minos {
		if !s.board.InBounds(m.X+x, m.Y+y) {
			return true
		}
		if s.board.Get(m.X+x, m.Y+y) != 0 {
			return true
		}
	}
	return false
}

// OverlapsPiece is Overlaps for the piece's own minos and position.
func (s *SRS) OverlapsPiece(p *piece.Piece) bool {
	return s.Overlaps(p.Minos, p.X, p.Y)
}
