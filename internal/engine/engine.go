// Package engine defines the pluggable parts a game is assembled from:
// gravity, queue, rotation system and scorer. Concrete implementations
// live in the subpackages; named combinations ("presets") register
// themselves here so front-ends can discover them without hardcoded
// dependencies.
package engine

import (
	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/piece"
	"github.com/g3ner1c/tetris/internal/rules"
)

// Context is the narrow view of a running game that parts are allowed to
// read. It is implemented by game.Game; parts never see the orchestrator
// itself.
type Context interface {
	// Rules returns the game's merged ruleset.
	Rules() *rules.Ruleset

	// Board returns the authoritative board.
	Board() *board.Board

	// Piece returns the active piece.
	Piece() *piece.Piece

	// Level returns the scorer's current level.
	Level() int

	// Grounded reports whether the active piece cannot descend further.
	Grounded() bool
}

// Gravity computes automatic downward movement and automatic locking.
// Calculate is invoked on every tick and after every player move; it
// returns the synthetic moves the game should apply, rather than calling
// back into the game, which keeps the control flow a plain loop. At most
// one hard drop and one soft drop are returned per call.
type Gravity interface {
	Calculate(delta *MoveDelta) []Move
}

// Queue is the infinite lazy sequence of upcoming piece kinds. Pop always
// leaves at least a full lookahead window buffered.
type Queue interface {
	// Pop removes and returns the head of the queue, refilling first if
	// the buffer would drop below the window size.
	Pop() piece.Kind

	// Preview returns the first window-size kinds without consuming them.
	Preview() []piece.Kind

	// SetWindow adjusts the lookahead window size and tops the buffer up.
	SetWindow(n int)

	// Seed returns the seed the queue's randomizer was built from.
	Seed() []byte
}

// RotationSystem owns the per-kind shape tables and kick tables. Its
// Overlaps predicate is the single source of truth for every collision
// check in the engine.
type RotationSystem interface {
	// Spawn places a fresh piece of the given kind at its spawn position.
	Spawn(kind piece.Kind) *piece.Piece

	// Rotate turns the piece clockwise that many quarter-turns, applying
	// kick offsets as needed. If no placement fits, the piece is left
	// unchanged.
	Rotate(p *piece.Piece, turns int)

	// Overlaps reports whether any of the minos, offset by (x, y), falls
	// outside the board or on an occupied cell.
	Overlaps(minos []piece.Offset, x, y int) bool

	// OverlapsPiece is Overlaps for a piece's own minos and position.
	OverlapsPiece(p *piece.Piece) bool
}

// Scorer judges each move delta exactly once and accumulates score,
// level, line and streak counters.
type Scorer interface {
	Judge(delta *MoveDelta)
	Score() int
	Level() int
	Lines() int
	Combo() int
	BackToBack() int
}

// RuleProvider is implemented by parts that own a named sub-ruleset. The
// game registers it, prefixed, into the main ruleset after construction.
type RuleProvider interface {
	Rules() *rules.Ruleset
}

// Parts aggregates the four factory slots a game is built from, plus the
// rule defaults this combination forces before caller overrides apply.
type Parts struct {
	// Description is a one-line summary shown by preset listings.
	Description string

	NewGravity  func(ctx Context) Gravity
	NewQueue    func(seed []byte, pieces []piece.Kind) Queue
	NewRotation func(b *board.Board) RotationSystem
	NewScorer   func(rs *rules.Ruleset, score, level int) Scorer

	// Overrides are rule defaults forced by this part set, applied before
	// explicit caller overrides.
	Overrides map[string]any
}

// Complete reports whether all four factory slots are filled.
func (p Parts) Complete() bool {
	return p.NewGravity != nil && p.NewQueue != nil && p.NewRotation != nil && p.NewScorer != nil
}
