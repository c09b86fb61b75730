package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scoundrel/internal/game"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRules is returned for a rules file that cannot describe a playable game.
var ErrInvalidRules = errors.New("invalid rules")

// Rules is the on-disk form of the table rules.
type Rules struct {
	MaxHealth           int `yaml:"max_health"`
	InteractionsPerRoom int `yaml:"interactions_per_room"`
	// Seed makes every deck shuffle reproducible. Zero means time-seeded.
	Seed int64 `yaml:"seed"`
}

// DefaultRules mirrors game.DefaultRules with no fixed seed.
func DefaultRules() Rules {
	d := game.DefaultRules()
	return Rules{
		MaxHealth:           d.MaxHealth,
		InteractionsPerRoom: d.InteractionsPerRoom,
	}
}

// LoadRules reads a YAML rules file. Missing keys keep their defaults.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // operator-supplied path
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate rejects rules no game can be played under.
func (r Rules) Validate() error {
	if r.MaxHealth <= 0 {
		return fmt.Errorf("%w: max_health must be positive, got %d", ErrInvalidRules, r.MaxHealth)
	}
	if r.InteractionsPerRoom < 1 || r.InteractionsPerRoom > game.RoomSize-1 {
		return fmt.Errorf("%w: interactions_per_room must be 1..%d, got %d",
			ErrInvalidRules, game.RoomSize-1, r.InteractionsPerRoom)
	}
	return nil
}

// Game converts the file rules into engine rules.
func (r Rules) Game() game.Rules {
	return game.Rules{
		MaxHealth:           r.MaxHealth,
		InteractionsPerRoom: r.InteractionsPerRoom,
	}
}

// Shuffler returns the deck randomness the rules ask for.
func (r Rules) Shuffler() game.Shuffler {
	if r.Seed != 0 {
		return game.NewSeededShuffler(r.Seed)
	}
	return game.NewShuffler()
}
