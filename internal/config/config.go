// Package config provides YAML-based configuration loading for the
// front-ends: which preset to play, how the board looks and any rule
// overrides to apply on top of it.
package config

import (
	"fmt"
)

// Config holds everything a front-end needs to assemble a game.
type Config struct {
	// Preset is the engine part set to play, e.g. "modern" or "nes".
	Preset string `yaml:"preset"`

	// FPS is the render and tick rate of the terminal front-end.
	FPS int `yaml:"fps"`

	// Seed fixes the piece sequence; empty plays a random game.
	Seed string `yaml:"seed"`

	// BoardSize is the visible playfield as [rows, cols]; empty keeps
	// the preset's default.
	BoardSize []int `yaml:"board_size"`

	// Rules are raw rule overrides, passed through to the game.
	Rules map[string]any `yaml:"rules"`
}

// RuleOverrides converts the raw YAML rule values into the shapes the
// rule registry accepts. YAML sequences become int pairs, everything
// else passes through.
func (c Config) RuleOverrides() (map[string]any, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(c.Rules))
	for name, v := range c.Rules {
		switch v := v.(type) {
		case []any:
			pair, err := toIntPair(v)
			if err != nil {
				return nil, fmt.Errorf("config: rule %q: %w", name, err)
			}
			out[name] = pair
		case int, bool, string:
			out[name] = v
		default:
			return nil, fmt.Errorf("config: rule %q has unsupported type %T", name, v)
		}
	}
	return out, nil
}

// VisibleSize returns the configured board size, or ok=false when the
// config leaves it to the preset.
func (c Config) VisibleSize() (size [2]int, ok bool, err error) {
	if len(c.BoardSize) == 0 {
		return [2]int{}, false, nil
	}
	if len(c.BoardSize) != 2 {
		return [2]int{}, false, fmt.Errorf("config: board_size needs [rows, cols], got %v", c.BoardSize)
	}
	return [2]int{c.BoardSize[0], c.BoardSize[1]}, true, nil
}

func toIntPair(v []any) ([2]int, error) {
	if len(v) != 2 {
		return [2]int{}, fmt.Errorf("want 2 elements, got %d", len(v))
	}
	var pair [2]int
	for i, e := range v {
		n, ok := e.(int)
		if !ok {
			return [2]int{}, fmt.Errorf("element %d is %T, want int", i, e)
		}
		pair[i] = n
	}
	return pair, nil
}
