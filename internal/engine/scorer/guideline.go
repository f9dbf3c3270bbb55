// Package scorer implements the scoring systems: the 2009 guideline
// table with 3-corner T-Spin detection, and the NES table.
package scorer

import (
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/piece"
	"github.com/g3ner1c/tetris/internal/rules"
)

// Guideline scores games per the 2009 Tetris guideline: line-clear and
// perfect-clear tables, combo and back-to-back streaks, and T-Spin /
// T-Spin Mini detection with the 3-corner rule.
//
// See https://tetris.wiki/Scoring and https://tetris.wiki/T-Spin.
type Guideline struct {
	score int
	level int
	lines int
	goal  int
	combo int
	b2b   int

	// Spin state is detected when a T piece rotates and holds until the
	// piece either locks (consuming it) or moves again (voiding it).
	tspin     bool
	tspinMini bool
}

// NewGuideline builds a guideline scorer resuming from the given score
// and level. A zero level starts at level 1.
func NewGuideline(_ *rules.Ruleset, score, level int) engine.Scorer {
	if level <= 0 {
		level = 1
	}
	return &Guideline{
		score: score,
		level: level,
		goal:  level * 10,
	}
}

func (s *Guideline) Score() int      { return s.score }
func (s *Guideline) Level() int      { return s.level }
func (s *Guideline) Lines() int      { return s.lines }
func (s *Guideline) Combo() int      { return s.combo }
func (s *Guideline) BackToBack() int { return s.b2b }

// Judge folds one move delta into the running score.
func (s *Guideline) Judge(d *engine.MoveDelta) {
	switch d.Kind {
	case engine.MoveRotate:
		if d.Piece != nil && d.Piece.Kind == piece.KindT && d.R != 0 {
			s.tspin, s.tspinMini = s.detectSpin(d)
		} else if d.Moved() {
			s.tspin, s.tspinMini = false, false
		}

	case engine.MoveDrag:
		if d.Moved() {
			s.tspin, s.tspinMini = false, false
		}

	case engine.MoveSoftDrop:
		if d.X != 0 {
			s.tspin, s.tspinMini = false, false
		}
		if !d.Auto {
			s.score += d.X
		}

	case engine.MoveSwap:
		// The spin belongs to the piece that rotated; holding discards it.
		s.tspin, s.tspinMini = false, false

	case engine.MoveHardDrop:
		s.judgeLock(d)
	}
}

func (s *Guideline) judgeLock(d *engine.MoveDelta) {
	tspin, mini := s.tspin, s.tspinMini
	s.tspin, s.tspinMini = false, false
	if d.X != 0 {
		// The piece fell after the rotation, so the spin no longer counts.
		tspin, mini = false, false
	}

	if !d.Auto {
		// The drop bonus is flat, never scaled by level.
		s.score += d.X * 2
	}

	clears := len(d.Clears)
	if clears > 0 {
		if tspin || mini || clears >= 4 {
			s.b2b++
		} else {
			s.b2b = 0
		}
		s.combo++
	} else {
		s.combo = 0
	}

	perfect := boardEmpty(d)

	var score int
	switch {
	case perfect:
		score = [5]int{0, 800, 1200, 1800, 2000}[clears]
	case tspin:
		score = [5]int{400, 800, 1200, 1600, 0}[clears]
	case mini:
		score = [5]int{100, 200, 400, 0, 0}[clears]
	default:
		score = [5]int{0, 100, 300, 500, 800}[clears]
	}

	if s.combo > 0 {
		score += 50 * (s.combo - 1)
	}

	score *= s.level

	if s.b2b > 1 {
		score = score * 3 / 2
		if perfect {
			score += 200 * s.level
		}
	}

	s.score += score
	s.lines += clears

	if s.lines >= s.goal {
		s.goal += 10
		s.level++
	}
}

// detectSpin applies the 3-corner rule to a just-rotated T piece: with
// the corners taken clockwise from the top-left of its bounding box
// (walls count as occupied), two filled front corners make a full
// T-Spin, and one front plus two back corners make a Mini unless the
// piece was kicked the full (2, 1) distance.
func (s *Guideline) detectSpin(d *engine.MoveDelta) (tspin, mini bool) {
	b := d.Board
	p := d.Piece

	var corners [4]bool
	for i, off := range [4]piece.Offset{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}} {
		x, y := p.X+off.X, p.Y+off.Y
		corners[i] = x < 0 || x >= b.Rows() || y < 0 || y >= b.Cols() || b.Get(x, y) != 0
	}

	// The back edge is the first mid-edge cell, clockwise from the top,
	// not covered by a mino. corners[back] is then the corner preceding
	// that edge.
	back := -1
	for i, off := range [4]piece.Offset{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}} {
		if !hasMino(p.Minos, off) {
			back = i
			break
		}
	}
	if back < 0 {
		return false, false
	}

	front := count(corners[(back+2)%4]) + count(corners[(back+3)%4])
	rear := count(corners[back]) + count(corners[(back+1)%4])

	switch {
	case front == 2 && rear >= 1:
		return true, false
	case front == 1 && rear == 2:
		if abs(d.X) == 2 && abs(d.Y) == 1 {
			return true, false
		}
		return false, true
	}
	return false, false
}

func boardEmpty(d *engine.MoveDelta) bool {
	b := d.Board
	for x := 0; x < b.Rows(); x++ {
		if !b.RowEmpty(x) {
			return false
		}
	}
	return true
}

func hasMino(minos []piece.Offset, off piece.Offset) bool {
	for _, m := range minos {
		if m == off {
			return true
		}
	}
	return false
}

func count(b bool) int {
	if b {
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
