package main

import (
	"log"
	"os"

	"scoundrel/internal/config"
	"scoundrel/internal/console"
	"scoundrel/internal/game"

	"go.uber.org/zap"
)

func main() {
	cfg, rules, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	// The terminal owns stdout; keep the logger quiet unless asked.
	level := cfg.LogLevel
	if os.Getenv("SCOUNDREL_LOG_LEVEL") == "" {
		level = "warn"
	}
	logger, err := config.NewLogger(level, true)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	g := game.New(game.WithRules(rules.Game()), game.WithShuffler(rules.Shuffler()))
	c := console.New(g, os.Stdout)
	if err := c.Run(os.Stdin); err != nil {
		logger.Fatal("console", zap.Error(err))
	}
	if g.Over() {
		logger.Info("run finished", zap.Bool("survived", g.Survived()), zap.Int("score", g.FinalScore()))
	}
}
