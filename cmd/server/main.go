package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoundrel/internal/config"
	"scoundrel/internal/game"
	"scoundrel/internal/session"
	"scoundrel/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg, rules, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := config.NewLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// One shuffler for the whole process so a seeded server deals a
	// reproducible sequence of games.
	shuffler := rules.Shuffler()
	srv := &web.Server{
		Store: session.NewMemoryStore[*web.Table](),
		NewGame: func() *game.Game {
			return game.New(game.WithRules(rules.Game()), game.WithShuffler(shuffler))
		},
		Log: logger,
	}

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.Int("max_health", rules.MaxHealth),
		zap.Int64("seed", rules.Seed),
	)
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}
