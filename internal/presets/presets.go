// Package presets registers the built-in engine part combinations.
// Importing it for side effects makes "modern", "tetrio" and "nes"
// available through the engine registry.
package presets

import (
	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/engine"
	"github.com/g3ner1c/tetris/internal/engine/gravity"
	"github.com/g3ner1c/tetris/internal/engine/queue"
	"github.com/g3ner1c/tetris/internal/engine/rotation"
	"github.com/g3ner1c/tetris/internal/engine/scorer"
	"github.com/g3ner1c/tetris/internal/piece"
)

func init() {
	engine.Register("modern", engine.Parts{
		Description: "guideline rules: SRS, 7-bag, hold, Infinity lock delay",
		NewGravity:  gravity.NewInfinity,
		NewQueue: func(seed []byte, pieces []piece.Kind) engine.Queue {
			return queue.NewSevenBag(seed, pieces)
		},
		NewRotation: func(b *board.Board) engine.RotationSystem {
			return rotation.NewSRS(b)
		},
		NewScorer: scorer.NewGuideline,
	})

	engine.Register("tetrio", engine.Parts{
		Description: "guideline rules with tetr.io 180-degree kicks",
		NewGravity:  gravity.NewInfinity,
		NewQueue: func(seed []byte, pieces []piece.Kind) engine.Queue {
			return queue.NewSevenBag(seed, pieces)
		},
		NewRotation: func(b *board.Board) engine.RotationSystem {
			return rotation.NewTetrio(b)
		},
		NewScorer: scorer.NewGuideline,
	})

	engine.Register("nes", engine.Parts{
		Description: "NES rules: no kicks, uniform randomizer, level 0 start",
		NewGravity:  gravity.NewMarathon,
		NewQueue: func(seed []byte, pieces []piece.Kind) engine.Queue {
			return queue.NewChaotic(seed, pieces)
		},
		NewRotation: func(b *board.Board) engine.RotationSystem {
			return rotation.NewClassic(b)
		},
		NewScorer: scorer.NewNES,
		Overrides: map[string]any{
			"initial_level": 0,
			"can_hard_drop": false,
			"can_180_spin":  false,
		},
	})
}
