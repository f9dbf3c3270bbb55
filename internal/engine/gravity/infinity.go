// Package gravity implements automatic piece descent and locking. Each
// implementation turns elapsed time into synthetic moves; the game
// applies them like any player input.
package gravity

import (
	"math"
	"time"

	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/rules"
)

// DropDelay returns the marathon fall interval for a level, following
// the guideline curve (0.8 - (level-1)*0.007)^(level-1) seconds. The
// result is floored at one millisecond so high levels stay finite.
func DropDelay(level int) time.Duration {
	base := 0.8 - float64(level-1)*0.007
	if base < 0 {
		base = 0
	}
	secs := math.Pow(base, float64(level-1))
	d := time.Duration(secs * float64(time.Second))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

// Infinity is marathon gravity with the Infinity lock-delay rule: a
// grounded piece locks after an idle delay, and any successful movement
// restarts that delay, up to a bounded number of resets.
type Infinity struct {
	ctx   engine.Context
	clock Clock
	rules *rules.Ruleset

	idleLock   timer
	lockResets int
	lastDrop   time.Time
}

// NewInfinity builds Infinity gravity on the system clock.
func NewInfinity(ctx engine.Context) engine.Gravity {
	return NewInfinityClock(ctx, SystemClock())
}

// NewInfinityClock builds Infinity gravity on an explicit clock.
func NewInfinityClock(ctx engine.Context, clock Clock) *Infinity {
	rs, err := rules.Named("gravity",
		rules.Must("lock_delay_ms", rules.TypeInt, 500),
		rules.Must("lock_resets", rules.TypeInt, 15),
	)
	if err != nil {
		panic(err)
	}
	return &Infinity{
		ctx:      ctx,
		clock:    clock,
		rules:    rs,
		lastDrop: clock.Now(),
	}
}

// Rules exposes the gravity sub-ruleset for registration into the game's
// ruleset under the "gravity_" prefix.
func (g *Infinity) Rules() *rules.Ruleset { return g.rules }

// Calculate inspects the latest delta and the clock and returns the
// synthetic moves due now: at most one auto hard drop (lock) and one
// auto soft drop (fall).
func (g *Infinity) Calculate(delta *engine.MoveDelta) []engine.Move {
	now := g.clock.Now()
	dropDelay := DropDelay(g.ctx.Level())
	g.idleLock.duration = time.Duration(g.rules.Int("lock_delay_ms")) * time.Millisecond
	maxResets := g.rules.Int("lock_resets")

	var moves []engine.Move

	if delta != nil {
		if delta.Kind == engine.MoveHardDrop {
			g.idleLock.stop()
			g.lockResets = 0
		}
		if g.idleLock.running && delta.Moved() {
			g.idleLock.start(now)
			g.lockResets++
		}
		if !g.idleLock.running && g.ctx.Grounded() {
			g.idleLock.start(now)
		}
	}

	if g.idleLock.done(now) || g.lockResets >= maxResets {
		g.idleLock.stop()
		g.lockResets = 0
		moves = append(moves, auto(engine.HardDrop()))
	}

	if since := now.Sub(g.lastDrop); since >= dropDelay {
		moves = append(moves, auto(engine.SoftDrop(int(since/dropDelay))))
		g.lastDrop = now
		if !g.idleLock.running && g.ctx.Grounded() {
			g.idleLock.start(now)
		}
	}

	return moves
}

func auto(m engine.Move) engine.Move {
	m.Auto = true
	return m
}
