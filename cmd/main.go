package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/app"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(logger.Opts{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	app := fx.New(
		fx.Logger(log),
		// The first login may back off for a while before giving up.
		fx.StartTimeout(3*time.Minute),
		fx.StopTimeout(time.Minute),
		app.Module(cfg),
	)

	// Start the application
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Shutting down", "signal", sig.String())

	// Gracefully shutdown the application
	stopCtx, stop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stop()
	if err := app.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
