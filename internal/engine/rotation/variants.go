package rotation

import (
	"github.com/g3ner1c/tetris/internal/board"
)

// tetrio180 holds the TETR.IO 180° kick candidates. The variant replaces
// only this sub-table and inherits everything else from SRS.
var tetrio180 = kickTable{
	{0, 2}: {{X: -1, Y: 0}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 0, Y: 1}, {X: 0, Y: -1}},
	{1, 3}: {{X: 0, Y: 1}, {X: -2, Y: 1}, {X: -1, Y: 1}, {X: -2, Y: 0}, {X: -1, Y: 0}},
	{2, 0}: {{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: 0, Y: -1}, {X: 0, Y: 1}},
	{3, 1}: {{X: 0, Y: -1}, {X: -2, Y: -1}, {X: -1, Y: -1}, {X: -2, Y: 0}, {X: -1, Y: 0}},
}

// NewTetrio builds an SRS variant extended with TETR.IO's 180° kicks.
func NewTetrio(b *board.Board) *SRS {
	return &SRS{
		board:  b,
		kicks:  merge(srsKicks, tetrio180),
		iKicks: merge(srsIKicks, tetrio180),
	}
}

// NewClassic builds a kickless system in the style of the NES game:
// rotations only succeed when the target shape fits in place.
func NewClassic(b *board.Board) *SRS {
	return &SRS{board: b, kicks: kickTable{}, iKicks: kickTable{}}
}

func merge(base, override kickTable) kickTable {
	merged := make(kickTable, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
