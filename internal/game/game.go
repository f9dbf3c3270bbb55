// Package game implements the core game object: it owns the board and
// the active piece and drives the pluggable engine parts. It contains no
// rendering or input handling; front-ends push moves and read state.
package game

import (
	"fmt"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/piece"
	"github.com/g3ner1c/tetris/internal/rules"
)

// Status is the game's play state.
type Status int

const (
	// StatusPlaying accepts moves.
	StatusPlaying Status = iota
	// StatusIdle is paused: moves are ignored, the game can resume.
	StatusIdle
	// StatusStopped is a finished game, by lock-out or block-out.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusIdle:
		return "idle"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options are the optional starting parameters for a game. The zero
// value starts a fresh default game.
type Options struct {
	// RuleOverrides assigns rule values on top of the defaults and the
	// part set's forced overrides. Unknown names are ignored.
	RuleOverrides map[string]any

	// Board resumes from an existing internal board, which is twice as
	// tall as the visible playfield. It overrides BoardSize.
	Board *board.Board

	// Queue seeds the first pieces dealt, ahead of the randomizer.
	Queue []piece.Kind

	// Level and Score resume a scorer from saved data.
	Level int
	Score int

	// Seed is shorthand for overriding the "seed" rule.
	Seed []byte

	// BoardSize is shorthand for overriding the "board_size" rule, as
	// visible (rows, cols).
	BoardSize [2]int
}

// Game is a single game in progress. It implements engine.Context, which
// is the only view of it the engine parts receive.
type Game struct {
	parts engine.Parts
	opts  Options

	rules    *rules.Ruleset
	board    *board.Board
	gravity  engine.Gravity
	queue    engine.Queue
	rotation engine.RotationSystem
	scorer   engine.Scorer

	piece    *piece.Piece
	hold     piece.Kind
	holdLock bool
	status   Status
	delta    *engine.MoveDelta
}

// New assembles a game from a part set. The internal board is twice as
// tall as the visible playfield, buffering pieces pushed above the view.
func New(parts engine.Parts, opts Options) (*Game, error) {
	if !parts.Complete() {
		return nil, fmt.Errorf("game: part set is missing a factory")
	}
	g := &Game{parts: parts, opts: opts}
	if err := g.init(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) init() error {
	rs, err := rules.New(
		rules.Must("board_size", rules.TypeIntPair, [2]int{20, 10}),
		rules.Must("initial_level", rules.TypeInt, 1),
		rules.Must("queue_size", rules.TypeInt, 4),
		rules.Must("seed", rules.TypeBytes, []byte(nil)),
		rules.Must("can_180_spin", rules.TypeBool, true),
		rules.Must("can_hard_drop", rules.TypeBool, true),
	)
	if err != nil {
		return err
	}

	if g.opts.BoardSize != ([2]int{}) {
		if g.opts.BoardSize[0] < 4 || g.opts.BoardSize[1] < 4 {
			return fmt.Errorf("game: board size %v is too small", g.opts.BoardSize)
		}
		if err := rs.Set("board_size", g.opts.BoardSize); err != nil {
			return err
		}
	}
	if len(g.opts.Seed) > 0 {
		if err := rs.Set("seed", g.opts.Seed); err != nil {
			return err
		}
	}
	if err := rs.Override(g.parts.Overrides); err != nil {
		return err
	}
	// First pass, for the rules read during construction. Overrides that
	// target part-owned rules apply in the second pass below.
	if err := rs.Override(g.opts.RuleOverrides); err != nil {
		return err
	}

	var b *board.Board
	if g.opts.Board != nil {
		b = g.opts.Board
		if b.Rows()%2 != 0 {
			return fmt.Errorf("game: internal board needs an even row count, got %d", b.Rows())
		}
		if err := rs.Set("board_size", [2]int{b.Rows() / 2, b.Cols()}); err != nil {
			return err
		}
	} else {
		size := rs.IntPair("board_size")
		b = board.Zeros(size[0]*2, size[1])
	}

	level := g.opts.Level
	if level == 0 {
		level = rs.Int("initial_level")
	}

	g.rules = rs
	g.board = b
	g.queue = g.parts.NewQueue(rs.Bytes("seed"), g.opts.Queue)
	g.rotation = g.parts.NewRotation(b)
	g.scorer = g.parts.NewScorer(rs, g.opts.Score, level)
	g.gravity = g.parts.NewGravity(g)

	// Record the seed actually in use, generated or given.
	if err := rs.Set("seed", g.queue.Seed()); err != nil {
		return err
	}

	for _, part := range []any{g.gravity, g.queue, g.rotation, g.scorer} {
		if rp, ok := part.(engine.RuleProvider); ok {
			if err := rs.Register(rp.Rules()); err != nil {
				return err
			}
		}
	}
	if err := rs.Override(g.opts.RuleOverrides); err != nil {
		return err
	}

	g.queue.SetWindow(rs.Int("queue_size"))
	g.piece = g.rotation.Spawn(g.queue.Pop())
	g.hold = piece.KindNone
	g.holdLock = false
	g.status = StatusPlaying
	g.delta = nil
	return nil
}

// Reset restarts the game with the same parts and options. An unseeded
// game restarts with a fresh random seed.
func (g *Game) Reset() error {
	if g.opts.Board != nil {
		g.opts.Board.Fill(piece.CellEmpty)
	}
	return g.init()
}

// Rules returns the merged ruleset.
func (g *Game) Rules() *rules.Ruleset { return g.rules }

// Board returns the internal board, without the active or ghost piece.
func (g *Game) Board() *board.Board { return g.board }

// Piece returns the active piece.
func (g *Game) Piece() *piece.Piece { return g.piece }

// Level returns the scorer's current level.
func (g *Game) Level() int { return g.scorer.Level() }

// Grounded reports whether the active piece cannot descend further.
func (g *Game) Grounded() bool {
	return g.rotation.Overlaps(g.piece.Minos, g.piece.X+1, g.piece.Y)
}

// Score returns the current score.
func (g *Game) Score() int { return g.scorer.Score() }

// Lines returns the number of lines cleared.
func (g *Game) Lines() int { return g.scorer.Lines() }

// Height returns the visible board height, half the internal size.
func (g *Game) Height() int { return g.board.Rows() / 2 }

// Width returns the board width.
func (g *Game) Width() int { return g.board.Cols() }

// Seed returns the random seed in use.
func (g *Game) Seed() []byte { return g.queue.Seed() }

// Queue returns the upcoming pieces, one lookahead window's worth.
func (g *Game) Queue() []piece.Kind { return g.queue.Preview() }

// Hold returns the held piece kind, KindNone when empty.
func (g *Game) Hold() piece.Kind { return g.hold }

// Delta returns the delta of the last applied move, nil before any.
func (g *Game) Delta() *engine.MoveDelta { return g.delta }

// Status returns the current play state.
func (g *Game) Status() Status { return g.status }

// Playing reports whether moves are currently accepted.
func (g *Game) Playing() bool { return g.status == StatusPlaying }

// Paused reports whether the game is idle.
func (g *Game) Paused() bool { return g.status == StatusIdle }

// Lost reports whether the game has stopped.
func (g *Game) Lost() bool { return g.status == StatusStopped }

// Pause toggles between playing and idle. Stopped games stay stopped.
func (g *Game) Pause() {
	g.SetPaused(g.status == StatusPlaying)
}

// SetPaused pauses or resumes the game explicitly.
func (g *Game) SetPaused(paused bool) {
	if g.status == StatusStopped {
		return
	}
	if paused {
		g.status = StatusIdle
	} else {
		g.status = StatusPlaying
	}
}

// Push applies one move. Moves are ignored unless the game is playing;
// player moves then trigger a gravity pass, whose synthetic moves are
// applied the same way.
func (g *Game) Push(m engine.Move) {
	if g.status != StatusPlaying {
		return
	}

	d := engine.NewDelta(m, g.board, g.piece)

	switch m.Kind {
	case engine.MoveDrag:
		g.shift(d, 0, m.Y)

	case engine.MoveRotate:
		g.turn(d, m.R)

	case engine.MoveSoftDrop:
		g.shift(d, m.X, 0)

	case engine.MoveSwap:
		g.swap()

	case engine.MoveHardDrop:
		if m.Auto || g.rules.Bool("can_hard_drop") {
			g.lock(d)
		}
	}

	g.delta = d
	g.queue.SetWindow(g.rules.Int("queue_size"))
	g.scorer.Judge(d)

	if !m.Auto {
		for _, auto := range g.gravity.Calculate(d) {
			g.Push(auto)
		}
	}
}

// Tick advances time-based logic; front-ends call it at their frame rate.
func (g *Game) Tick() {
	if g.status != StatusPlaying {
		return
	}
	for _, m := range g.gravity.Calculate(nil) {
		g.Push(m)
	}
}

// shift moves the piece one cell at a time, clipping against the first
// collision on each axis and recording the distance actually travelled.
func (g *Game) shift(d *engine.MoveDelta, x, y int) {
	p := g.piece

	step := sign(x)
	for i := 0; i != x; i += step {
		if g.rotation.Overlaps(p.Minos, p.X+step, p.Y) {
			break
		}
		p.X += step
		d.X += step
	}

	step = sign(y)
	for i := 0; i != y; i += step {
		if g.rotation.Overlaps(p.Minos, p.X, p.Y+step) {
			break
		}
		p.Y += step
		d.Y += step
	}
}

func (g *Game) turn(d *engine.MoveDelta, turns int) {
	if absInt(turns)%4 == 2 && !g.rules.Bool("can_180_spin") {
		return
	}
	p := g.piece
	fromX, fromY, fromR := p.X, p.Y, p.R
	g.rotation.Rotate(p, turns)
	d.X = p.X - fromX
	d.Y = p.Y - fromY
	d.R = ((p.R - fromR) + 4) % 4
}

func (g *Game) swap() {
	if g.holdLock {
		return
	}
	next := g.hold
	if next == piece.KindNone {
		next = g.queue.Pop()
	}
	g.hold = g.piece.Kind
	g.piece = g.rotation.Spawn(next)
	g.holdLock = true
}

// lock drops the piece to the floor, writes it to the board, clears full
// rows and deals the next piece. Both end conditions are detected here:
// lock-out, a piece resting entirely above the visible area, and
// block-out, a fresh piece spawning on occupied cells.
func (g *Game) lock(d *engine.MoveDelta) {
	p := g.piece

	for !g.rotation.Overlaps(p.Minos, p.X+1, p.Y) {
		p.X++
		d.X++
	}

	for _, m := range p.Minos {
		g.board.Set(p.X+m.X, p.Y+m.Y, int8(p.Kind))
	}

	visible := g.Height()
	lockOut := true
	for _, m := range p.Minos {
		if p.X+m.X >= visible {
			lockOut = false
			break
		}
	}
	if lockOut {
		g.status = StatusStopped
		return
	}

	// Full rows collapse top to bottom; shifted rows were already
	// scanned at their previous index.
	for r := 0; r < g.board.Rows(); r++ {
		if g.board.RowFull(r) {
			g.board.ClearRow(r)
			d.Clears = append(d.Clears, r)
		}
	}

	g.piece = g.rotation.Spawn(g.queue.Pop())
	if g.rotation.OverlapsPiece(g.piece) {
		g.status = StatusStopped
	}
	g.holdLock = false
}

// Drag is shorthand for pushing a horizontal move of that many tiles,
// negative for left.
func (g *Game) Drag(tiles int) { g.Push(engine.Drag(tiles)) }

// Left is shorthand for dragging left.
func (g *Game) Left(tiles int) { g.Push(engine.Left(tiles)) }

// Right is shorthand for dragging right.
func (g *Game) Right(tiles int) { g.Push(engine.Right(tiles)) }

// Rotate is shorthand for pushing a rotation of that many quarter-turns.
func (g *Game) Rotate(turns int) { g.Push(engine.Rotate(turns)) }

// SoftDrop is shorthand for pushing a downward move of that many tiles.
func (g *Game) SoftDrop(tiles int) { g.Push(engine.SoftDrop(tiles)) }

// HardDrop is shorthand for pushing a hard drop.
func (g *Game) HardDrop() { g.Push(engine.HardDrop()) }

// Swap is shorthand for pushing a hold swap.
func (g *Game) Swap() { g.Push(engine.Swap()) }

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
