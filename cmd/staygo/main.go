package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/lushstays/staygo/docs"
	"github.com/lushstays/staygo/internal/app"
	"github.com/lushstays/staygo/internal/config"
)

// @title StayGo API
// @version 1.0
// @description Resort booking service: stay selection, restaurant add-ons and confirmation delivery.
// @host localhost:8000
// @BasePath /
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
	}
}
