package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server is the process configuration read from the environment.
type Server struct {
	Addr      string `env:"SCOUNDREL_ADDR" envDefault:":8080"`
	RulesPath string `env:"SCOUNDREL_RULES"`
	LogLevel  string `env:"SCOUNDREL_LOG_LEVEL" envDefault:"info"`
	Dev       bool   `env:"SCOUNDREL_DEV"`
	// Seed overrides the rules file seed when non-zero.
	Seed int64 `env:"SCOUNDREL_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and, when SCOUNDREL_RULES is set, the rules
// file it points to.
func Load() (Server, Rules, error) {
	var s Server
	if err := ParseEnv(&s); err != nil {
		return Server{}, Rules{}, err
	}
	rules := DefaultRules()
	if s.RulesPath != "" {
		r, err := LoadRules(s.RulesPath)
		if err != nil {
			return Server{}, Rules{}, err
		}
		rules = r
	}
	if s.Seed != 0 {
		rules.Seed = s.Seed
	}
	return s, rules, nil
}
