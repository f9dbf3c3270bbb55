package engine

import (
	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/piece"
)

// MoveKind enumerates the kinds of movement a game accepts.
type MoveKind int

const (
	MoveDrag MoveKind = iota
	MoveRotate
	MoveSoftDrop
	MoveHardDrop
	MoveSwap
)

// String returns a readable name for logs and test failures.
func (k MoveKind) String() string {
	switch k {
	case MoveDrag:
		return "drag"
	case MoveRotate:
		return "rotate"
	case MoveSoftDrop:
		return "soft drop"
	case MoveHardDrop:
		return "hard drop"
	case MoveSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Move is a requested action pushed into a game. X is rows (downward), Y
// is columns (rightward), R is clockwise quarter-turns. Auto marks moves
// synthesized by gravity; the game never consults gravity again for them.
type Move struct {
	Kind MoveKind
	X    int
	Y    int
	R    int
	Auto bool
}

// Drag moves horizontally; negative tiles go left.
func Drag(tiles int) Move { return Move{Kind: MoveDrag, Y: tiles} }

// Left moves one or more tiles leftward.
func Left(tiles int) Move { return Move{Kind: MoveDrag, Y: -tiles} }

// Right moves one or more tiles rightward.
func Right(tiles int) Move { return Move{Kind: MoveDrag, Y: tiles} }

// Rotate turns clockwise; use negative turns for counterclockwise.
func Rotate(turns int) Move { return Move{Kind: MoveRotate, R: turns} }

// SoftDrop moves downward without locking.
func SoftDrop(tiles int) Move { return Move{Kind: MoveSoftDrop, X: tiles} }

// HardDrop drops to the floor and locks.
func HardDrop() Move { return Move{Kind: MoveHardDrop} }

// Swap exchanges the active piece with the hold slot.
func Swap() Move { return Move{Kind: MoveSwap} }

// MoveDelta records what a push actually did: the requested offsets
// (RX, RY, RR), the offsets applied after collision clipping (X, Y, R),
// and the rows cleared by a lock, in detection order. The game keeps only
// the most recent delta; the scorer and gravity consume it once.
type MoveDelta struct {
	Kind MoveKind
	Auto bool

	X, Y, R    int
	RX, RY, RR int

	Clears []int

	// Board and Piece reference the game's state at judge time so that
	// the scorer stays a pure function of its inputs.
	Board *board.Board
	Piece *piece.Piece
}

// NewDelta builds a fresh delta for a move about to be applied. Applied
// offsets start at zero and are filled in by the dispatcher.
func NewDelta(m Move, b *board.Board, p *piece.Piece) *MoveDelta {
	return &MoveDelta{
		Kind:  m.Kind,
		Auto:  m.Auto,
		RX:    m.X,
		RY:    m.Y,
		RR:    ((m.R % 4) + 4) % 4,
		Board: b,
		Piece: p,
	}
}

// Moved reports whether the move had any effect on position or rotation.
func (d *MoveDelta) Moved() bool {
	return d.X != 0 || d.Y != 0 || d.R != 0
}
