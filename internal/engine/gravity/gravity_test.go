package gravity

import (
	"testing"
	"time"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/piece"
	"github.com/g3ner1c/tetris/internal/rules"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type stubContext struct {
	level    int
	grounded bool
}

func (s *stubContext) Rules() *rules.Ruleset { return nil }
func (s *stubContext) Board() *board.Board   { return nil }
func (s *stubContext) Piece() *piece.Piece   { return nil }
func (s *stubContext) Level() int            { return s.level }
func (s *stubContext) Grounded() bool        { return s.grounded }

func TestDropDelayCurve(t *testing.T) {
	if got := DropDelay(1); got != time.Second {
		t.Errorf("DropDelay(1) = %v, want 1s", got)
	}
	prev := DropDelay(1)
	for level := 2; level <= 20; level++ {
		d := DropDelay(level)
		if d > prev {
			t.Errorf("DropDelay(%d) = %v, greater than level %d's %v", level, d, level-1, prev)
		}
		prev = d
	}
	if got := DropDelay(1000); got < time.Millisecond {
		t.Errorf("DropDelay(1000) = %v, below the floor", got)
	}
}

func TestInfinityFalls(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1}
	g := NewInfinityClock(ctx, clock)

	if moves := g.Calculate(nil); len(moves) != 0 {
		t.Fatalf("moves before any time passed: %v", moves)
	}

	clock.advance(time.Second)
	moves := g.Calculate(nil)
	if len(moves) != 1 {
		t.Fatalf("got %d moves after one drop delay, want 1", len(moves))
	}
	m := moves[0]
	if m.Kind != engine.MoveSoftDrop || !m.Auto || m.X != 1 {
		t.Fatalf("got %+v, want auto soft drop of 1", m)
	}

	// Missing ticks are caught up in one larger drop.
	clock.advance(2500 * time.Millisecond)
	moves = g.Calculate(nil)
	if len(moves) != 1 || moves[0].X != 2 {
		t.Fatalf("got %v, want one soft drop of 2", moves)
	}
}

func TestInfinityLocksGroundedPiece(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1, grounded: true}
	g := NewInfinityClock(ctx, clock)

	// A grounded no-op delta arms the lock timer.
	delta := &engine.MoveDelta{Kind: engine.MoveDrag}
	if moves := g.Calculate(delta); len(moves) != 0 {
		t.Fatalf("lock fired immediately: %v", moves)
	}

	clock.advance(600 * time.Millisecond)
	moves := g.Calculate(nil)
	if len(moves) != 1 {
		t.Fatalf("got %d moves after lock delay, want 1", len(moves))
	}
	if m := moves[0]; m.Kind != engine.MoveHardDrop || !m.Auto {
		t.Fatalf("got %+v, want auto hard drop", m)
	}
}

func TestInfinityMovementResetsLockDelay(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1, grounded: true}
	g := NewInfinityClock(ctx, clock)

	g.Calculate(&engine.MoveDelta{Kind: engine.MoveDrag})
	for i := 0; i < 5; i++ {
		clock.advance(400 * time.Millisecond)
		// Each successful shift restarts the idle lock before it fires.
		moved := &engine.MoveDelta{Kind: engine.MoveDrag, Y: 1}
		for _, m := range g.Calculate(moved) {
			if m.Kind == engine.MoveHardDrop {
				t.Fatalf("lock fired on reset %d despite movement", i)
			}
		}
	}
}

func TestInfinityLockResetCap(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1, grounded: true}
	g := NewInfinityClock(ctx, clock)

	g.Calculate(&engine.MoveDelta{Kind: engine.MoveDrag})
	moved := &engine.MoveDelta{Kind: engine.MoveDrag, Y: 1}
	locked := false
	for i := 0; i < 20 && !locked; i++ {
		clock.advance(100 * time.Millisecond)
		for _, m := range g.Calculate(moved) {
			if m.Kind == engine.MoveHardDrop {
				locked = true
			}
		}
	}
	if !locked {
		t.Fatal("stalling with movement forever never forced a lock")
	}
}

func TestInfinityRuleOverride(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1, grounded: true}
	g := NewInfinityClock(ctx, clock)

	if err := g.Rules().Set("lock_delay_ms", 2000); err != nil {
		t.Fatal(err)
	}
	g.Calculate(&engine.MoveDelta{Kind: engine.MoveDrag})
	clock.advance(900 * time.Millisecond)
	for _, m := range g.Calculate(nil) {
		if m.Kind == engine.MoveHardDrop {
			t.Fatal("lock fired before the overridden delay")
		}
	}
	clock.advance(1200 * time.Millisecond)
	found := false
	for _, m := range g.Calculate(nil) {
		if m.Kind == engine.MoveHardDrop {
			found = true
		}
	}
	if !found {
		t.Fatal("lock never fired after the overridden delay")
	}
}

func TestMarathonDeadline(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ctx := &stubContext{level: 1}
	g := NewMarathonClock(ctx, clock)

	g.Calculate(nil) // arms the deadline
	clock.advance(29 * time.Second)
	for _, m := range g.Calculate(nil) {
		if m.Kind == engine.MoveHardDrop {
			t.Fatal("deadline fired early")
		}
	}
	clock.advance(2 * time.Second)
	found := false
	for _, m := range g.Calculate(nil) {
		if m.Kind == engine.MoveHardDrop {
			found = true
		}
	}
	if !found {
		t.Fatal("deadline never forced a lock")
	}
}
