// Package commands implements the kiroku subcommands.
package commands

import (
	"os"

	"github.com/yukikurage/kiroku/internal/config"
	"github.com/yukikurage/kiroku/internal/database"
	"github.com/yukikurage/kiroku/internal/logging"
	"gorm.io/gorm"
)

// app holds what every subcommand needs: configuration, a logger and an
// open database.
type app struct {
	cfg    *config.Config
	logger logging.Logger
	db     *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.IsProduction())

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}
