package scorer

import (
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/rules"
)

// NES scores games the way the Nintendo NES release did: a flat
// line-clear table scaled by level+1, no spins, no streaks. Levels start
// at 0.
type NES struct {
	score   int
	level   int
	lines   int
	initial int
	goal    int
}

// Overrides are the rule defaults part sets using this scorer should
// force.
var Overrides = map[string]any{"initial_level": 0}

// NewNES builds an NES scorer resuming from the given score and level.
// The level-up goal is derived from the ruleset's initial level.
func NewNES(rs *rules.Ruleset, score, level int) engine.Scorer {
	initial := 0
	if rs != nil && rs.Has("initial_level") {
		initial = rs.Int("initial_level")
	}
	goal := initial*10 + 10
	if floor := max(100, initial*10-50); floor < goal {
		goal = floor
	}
	return &NES{
		score:   score,
		level:   level,
		initial: initial,
		goal:    goal,
	}
}

func (s *NES) Score() int      { return s.score }
func (s *NES) Level() int      { return s.level }
func (s *NES) Lines() int      { return s.lines }
func (s *NES) Combo() int      { return 0 }
func (s *NES) BackToBack() int { return 0 }

// Judge folds one move delta into the running score.
func (s *NES) Judge(d *engine.MoveDelta) {
	switch d.Kind {
	case engine.MoveSoftDrop:
		if !d.Auto {
			s.score += d.X
		}

	case engine.MoveHardDrop:
		// The original hardware had no hard drop; the distance bonus is
		// kept so the scorer composes with rotation systems that do.
		if !d.Auto {
			s.score += d.X
		}

		clears := len(d.Clears)
		s.score += [5]int{0, 40, 100, 300, 1200}[clears] * (s.level + 1)
		s.lines += clears
		if s.lines >= s.goal {
			s.level++
			s.goal = s.lines + 10
		}
	}
}
