package game

import (
	"testing"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/engine/gravity"
	"github.com/g3ner1c/tetris/internal/engine/queue"
	"github.com/g3ner1c/tetris/internal/engine/rotation"
	"github.com/g3ner1c/tetris/internal/engine/scorer"
	"github.com/g3ner1c/tetris/internal/piece"
)

// stillGravity never emits moves, keeping tests independent of time.
type stillGravity struct{}

func (stillGravity) Calculate(*engine.MoveDelta) []engine.Move { return nil }

func testParts() engine.Parts {
	return engine.Parts{
		Description: "srs and 7-bag without gravity",
		NewGravity:  func(engine.Context) engine.Gravity { return stillGravity{} },
		NewQueue: func(seed []byte, pieces []piece.Kind) engine.Queue {
			return queue.NewSevenBag(seed, pieces)
		},
		NewRotation: func(b *board.Board) engine.RotationSystem {
			return rotation.NewSRS(b)
		},
		NewScorer: scorer.NewGuideline,
	}
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if len(opts.Seed) == 0 {
		opts.Seed = []byte("test")
	}
	g, err := New(testParts(), opts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewDefaults(t *testing.T) {
	g := newTestGame(t, Options{})
	if g.Height() != 20 || g.Width() != 10 {
		t.Errorf("visible size = %dx%d, want 20x10", g.Height(), g.Width())
	}
	if got := g.Board().Rows(); got != 40 {
		t.Errorf("internal rows = %d, want 40", got)
	}
	if got := len(g.Queue()); got != 4 {
		t.Errorf("preview length = %d, want 4", got)
	}
	if !g.Playing() || g.Paused() || g.Lost() {
		t.Errorf("fresh game status = %v, want playing", g.Status())
	}
	if g.Hold() != piece.KindNone {
		t.Errorf("fresh game hold = %v, want none", g.Hold())
	}
	if g.Level() != 1 || g.Score() != 0 {
		t.Errorf("fresh game at level %d score %d, want 1 and 0", g.Level(), g.Score())
	}
}

func TestSpawnPosition(t *testing.T) {
	g := newTestGame(t, Options{})
	p := g.Piece()
	if p.X != 18 || p.Y != 3 {
		t.Errorf("spawned at (%d, %d), want (18, 3)", p.X, p.Y)
	}
	if p.R != 0 {
		t.Errorf("spawned with rotation %d, want 0", p.R)
	}
}

func TestDragClipsAtWall(t *testing.T) {
	g := newTestGame(t, Options{Queue: []piece.Kind{piece.KindT}})
	fromY := g.Piece().Y
	g.Left(100)
	if got := g.Piece().Y; got != 0 {
		t.Errorf("piece column after dragging into the wall = %d, want 0", got)
	}
	if got := g.Delta().Y; got != -fromY {
		t.Errorf("delta recorded %d, want clipped %d", got, -fromY)
	}
}

func TestSoftDropStopsAtFloor(t *testing.T) {
	g := newTestGame(t, Options{Queue: []piece.Kind{piece.KindT}})
	g.SoftDrop(100)
	if !g.Grounded() {
		t.Fatal("piece should be grounded after dropping into the floor")
	}
	// T spawns at row 18 with its lowest minos on row 19; the floor of a
	// 40-row board puts them on row 39.
	if got := g.Piece().X; got != 38 {
		t.Errorf("piece row = %d, want 38", got)
	}
	if got := g.Delta().X; got != 20 {
		t.Errorf("delta recorded %d dropped rows, want 20", got)
	}
	if got := g.Score(); got != 20 {
		t.Errorf("soft drop scored %d, want 20", got)
	}
}

func TestHardDropLocksAndDealsNext(t *testing.T) {
	g := newTestGame(t, Options{})
	kind := g.Piece().Kind
	next := g.Queue()[0]
	g.HardDrop()

	cells := 0
	for r := 0; r < g.Board().Rows(); r++ {
		for c := 0; c < g.Board().Cols(); c++ {
			if g.Board().Get(r, c) == int8(kind) {
				cells++
			}
		}
	}
	if cells != 4 {
		t.Errorf("locked piece left %d cells, want 4", cells)
	}
	if got := g.Piece().Kind; got != next {
		t.Errorf("next piece is %v, want previewed %v", got, next)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	g := newTestGame(t, Options{Queue: []piece.Kind{piece.KindT}})
	p := g.Piece()
	minos := append([]piece.Offset(nil), p.Minos...)
	for i := 0; i < 4; i++ {
		g.Rotate(1)
	}
	if p.R != 0 {
		t.Errorf("four quarter turns end at rotation %d, want 0", p.R)
	}
	for i, m := range p.Minos {
		if m != minos[i] {
			t.Fatalf("minos changed over a full rotation: %v vs %v", p.Minos, minos)
		}
	}
}

func TestLineClear(t *testing.T) {
	b := board.Zeros(8, 4)
	b.Set(7, 3, int8(piece.KindO)) // bottom row lacks only the T's width
	g := newTestGame(t, Options{Board: b, Queue: []piece.Kind{piece.KindT}})

	g.HardDrop()
	if got := g.Lines(); got != 1 {
		t.Fatalf("cleared %d lines, want 1", got)
	}
	// 100 for the single plus 2 per hard-dropped row.
	if got := g.Score(); got != 108 {
		t.Errorf("single clear scored %d, want 108", got)
	}
	if !b.RowEmpty(7) {
		// Only the T's top mino survives, shifted down onto the floor.
		if got := b.Get(7, 1); got != int8(piece.KindT) {
			t.Errorf("floor row after clear: %v", b.Row(7))
		}
	}
	if b.Get(7, 3) != 0 {
		t.Errorf("cleared cell still occupied: %v", b.Row(7))
	}
}

func TestSwapHold(t *testing.T) {
	g := newTestGame(t, Options{})
	first := g.Piece().Kind
	next := g.Queue()[0]

	g.Swap()
	if g.Hold() != first {
		t.Errorf("hold = %v, want %v", g.Hold(), first)
	}
	if g.Piece().Kind != next {
		t.Errorf("piece after swap = %v, want %v", g.Piece().Kind, next)
	}

	// A second swap before locking is ignored.
	g.Swap()
	if g.Piece().Kind != next || g.Hold() != first {
		t.Error("swap was not locked after the first use")
	}

	g.HardDrop()
	held := g.Hold()
	active := g.Piece().Kind
	g.Swap()
	if g.Piece().Kind != held || g.Hold() != active {
		t.Error("swap did not unlock after the piece locked")
	}
}

func TestLockOutStopsGame(t *testing.T) {
	b := board.Zeros(8, 4)
	for r := 4; r < 8; r++ {
		for c := 0; c < 4; c++ {
			b.Set(r, c, piece.CellGarbage)
		}
	}
	g := newTestGame(t, Options{Board: b, Queue: []piece.Kind{piece.KindT}})

	// The whole visible area is filled: the piece can only rest in the
	// hidden buffer.
	g.HardDrop()
	if !g.Lost() {
		t.Fatal("locking entirely above the visible area should stop the game")
	}
}

func TestBlockOutStopsGame(t *testing.T) {
	g := newTestGame(t, Options{BoardSize: [2]int{4, 4}})
	for i := 0; i < 100 && !g.Lost(); i++ {
		g.HardDrop()
	}
	if !g.Lost() {
		t.Fatal("stacking a 4x4 board forever never stopped the game")
	}
	fromY := g.Piece().Y
	g.Left(1)
	if g.Piece().Y != fromY {
		t.Error("moves were applied to a stopped game")
	}
}

func TestPauseIgnoresMoves(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Pause()
	if !g.Paused() {
		t.Fatal("pause did not idle the game")
	}
	fromY := g.Piece().Y
	g.Left(1)
	if g.Piece().Y != fromY {
		t.Error("a paused game applied a move")
	}
	g.Pause()
	if !g.Playing() {
		t.Error("second pause did not resume")
	}
}

func TestResetRestoresFreshState(t *testing.T) {
	g := newTestGame(t, Options{})
	g.HardDrop()
	g.SoftDrop(5)
	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}
	if g.Score() != 0 || g.Lines() != 0 {
		t.Errorf("reset kept score %d and %d lines", g.Score(), g.Lines())
	}
	for r := 0; r < g.Board().Rows(); r++ {
		if !g.Board().RowEmpty(r) {
			t.Fatalf("reset left row %d occupied", r)
		}
	}
	if !g.Playing() {
		t.Errorf("reset game status = %v", g.Status())
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := newTestGame(t, Options{Seed: []byte("determinism")})
	b := newTestGame(t, Options{Seed: []byte("determinism")})
	for i := 0; i < 10; i++ {
		a.Rotate(1)
		b.Rotate(1)
		a.HardDrop()
		b.HardDrop()
	}
	if a.String() != b.String() {
		t.Error("same seed and moves produced different boards")
	}
	if a.Score() != b.Score() {
		t.Errorf("same seed and moves produced scores %d and %d", a.Score(), b.Score())
	}
}

func Test180SpinRule(t *testing.T) {
	g := newTestGame(t, Options{
		Queue:         []piece.Kind{piece.KindT},
		RuleOverrides: map[string]any{"can_180_spin": false},
	})
	g.Rotate(2)
	if got := g.Piece().R; got != 0 {
		t.Errorf("disabled 180 spin still rotated to %d", got)
	}
	g.Rotate(1)
	if got := g.Piece().R; got != 1 {
		t.Errorf("quarter turn rotated to %d, want 1", got)
	}
}

func TestHardDropRule(t *testing.T) {
	g := newTestGame(t, Options{
		RuleOverrides: map[string]any{"can_hard_drop": false},
	})
	kind := g.Piece().Kind
	g.HardDrop()
	if g.Piece().Kind != kind {
		t.Error("disabled hard drop still locked the piece")
	}
	// The auto form, pushed by gravity, still locks.
	g.Push(engine.Move{Kind: engine.MoveHardDrop, Auto: true})
	if g.Board().RowEmpty(g.Board().Rows() - 1) {
		t.Error("auto hard drop did not lock the piece")
	}
}

func TestPartRulesAreRegistered(t *testing.T) {
	parts := testParts()
	parts.NewGravity = gravity.NewInfinity
	g, err := New(parts, Options{
		Seed:          []byte("test"),
		RuleOverrides: map[string]any{"gravity_lock_delay_ms": 750},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Rules().Has("gravity_lock_delay_ms") {
		t.Fatal("gravity rules were not registered")
	}
	if got := g.Rules().Int("gravity_lock_delay_ms"); got != 750 {
		t.Errorf("gravity_lock_delay_ms = %d, want overridden 750", got)
	}
}

func TestQueueWindowFollowsRule(t *testing.T) {
	g := newTestGame(t, Options{
		RuleOverrides: map[string]any{"queue_size": 6},
	})
	if got := len(g.Queue()); got != 6 {
		t.Errorf("preview length = %d, want 6", got)
	}
}

func TestGhostPieceInPlayfield(t *testing.T) {
	g := newTestGame(t, Options{Queue: []piece.Kind{piece.KindT}})
	pf := g.Playfield()
	ghosts := 0
	for r := 0; r < pf.Rows(); r++ {
		for c := 0; c < pf.Cols(); c++ {
			if pf.Get(r, c) == piece.CellGhost {
				ghosts++
			}
		}
	}
	// On an empty board the ghost sits apart from the spawned piece.
	if ghosts != 4 {
		t.Errorf("playfield has %d ghost cells, want 4", ghosts)
	}
	if g.Board().Get(39, 4) != 0 {
		t.Error("playfield overlay leaked into the real board")
	}
}
