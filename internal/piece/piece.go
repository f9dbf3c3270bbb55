// Package piece defines the tetromino kinds, board cell codes and the
// active piece value shared by the board, the engine parts and the game.
package piece

// Kind identifies one of the seven tetromino shapes. The zero value means
// "no piece" (an empty hold slot); valid kinds start at KindI so that a
// kind doubles as the mino code its locked cells get on the board.
type Kind int8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Cell codes beyond the seven piece colors. Ghost and Garbage are render
// overlay codes: they are only ever written into board copies handed out
// for display, never into the authoritative board.
const (
	CellEmpty   int8 = 0
	CellGhost   int8 = 8
	CellGarbage int8 = 9
)

// Kinds lists the seven playable kinds in enumeration order.
var Kinds = [7]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the canonical one-letter name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Offset is a (row, column) cell offset relative to a piece's position.
// X grows downward, Y grows rightward, matching board indexing.
type Offset struct {
	X, Y int
}

// Piece is the active, not-yet-locked tetromino. Exactly one Piece is
// owned by a game at a time; move and rotate operations mutate it in
// place, lock and swap replace it.
type Piece struct {
	Kind  Kind
	X     int // row of the shape box's top-left corner
	Y     int // column of the shape box's top-left corner
	R     int // rotation state, always in 0..3
	Minos []Offset
}
