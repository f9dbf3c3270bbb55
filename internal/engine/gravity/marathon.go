package gravity

import (
	"time"

	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/rules"
)

// Marathon is gravity with a fixed per-piece deadline instead of an idle
// lock delay: each piece is force-locked a fixed time after it spawned,
// no matter how much it moved.
type Marathon struct {
	ctx   engine.Context
	clock Clock
	rules *rules.Ruleset

	deadline timer
	lastDrop time.Time
}

// NewMarathon builds Marathon gravity on the system clock.
func NewMarathon(ctx engine.Context) engine.Gravity {
	return NewMarathonClock(ctx, SystemClock())
}

// NewMarathonClock builds Marathon gravity on an explicit clock.
func NewMarathonClock(ctx engine.Context, clock Clock) *Marathon {
	rs, err := rules.Named("gravity",
		rules.Must("lock_timeout_ms", rules.TypeInt, 30_000),
	)
	if err != nil {
		panic(err)
	}
	now := clock.Now()
	g := &Marathon{
		ctx:      ctx,
		clock:    clock,
		rules:    rs,
		lastDrop: now,
	}
	return g
}

// Rules exposes the gravity sub-ruleset for prefixed registration.
func (g *Marathon) Rules() *rules.Ruleset { return g.rules }

// Calculate returns the moves due now: a forced auto hard drop when a
// piece outlives its deadline, and auto soft drops on the level curve.
func (g *Marathon) Calculate(delta *engine.MoveDelta) []engine.Move {
	now := g.clock.Now()
	dropDelay := DropDelay(g.ctx.Level())
	g.deadline.duration = time.Duration(g.rules.Int("lock_timeout_ms")) * time.Millisecond

	if !g.deadline.running {
		g.deadline.start(now)
	}

	var moves []engine.Move

	// The deadline tracks piece lifetime: a lock of any kind rearms it.
	if delta != nil && delta.Kind == engine.MoveHardDrop {
		g.deadline.start(now)
	}

	if g.deadline.done(now) {
		g.deadline.start(now)
		moves = append(moves, auto(engine.HardDrop()))
	}

	if since := now.Sub(g.lastDrop); since >= dropDelay {
		moves = append(moves, auto(engine.SoftDrop(int(since/dropDelay))))
		g.lastDrop = now
	}

	return moves
}
