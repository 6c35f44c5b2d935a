// Package config provides YAML-based configuration for the snaze
// simulator: tick rate, lives, food target, and AI mode.
package config

import "fmt"

// Config holds the simulation defaults. Command-line flags override
// individual fields after loading.
type Config struct {
	FPS   int    `yaml:"fps"`   // Board frames presented per second
	Lives int    `yaml:"lives"` // Lives for the whole run
	Food  int    `yaml:"food"`  // Pellets to eat per level
	AI    string `yaml:"ai"`    // "pathfind" or "random"
}

// Default returns the classic snaze defaults.
func Default() Config {
	return Config{
		FPS:   10,
		Lives: 5,
		Food:  10,
		AI:    "pathfind",
	}
}

// Validate checks field ranges after flag overrides were applied.
func (c Config) Validate() error {
	if c.FPS < 1 {
		return fmt.Errorf("config: fps must be at least 1, got %d", c.FPS)
	}
	if c.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Lives)
	}
	if c.Food < 1 {
		return fmt.Errorf("config: food must be at least 1, got %d", c.Food)
	}
	if c.AI != "pathfind" && c.AI != "random" {
		return fmt.Errorf("config: ai must be pathfind or random, got %q", c.AI)
	}
	return nil
}
