package main

import (
	"fmt"
	"os"

	"github.com/goserg/standingsserver/internal/config"
	"github.com/goserg/standingsserver/internal/logger"
	"github.com/goserg/standingsserver/internal/metrics"
	sqlite3migrate "github.com/goserg/standingsserver/internal/migrate"
	"github.com/goserg/standingsserver/internal/service"
	"github.com/goserg/standingsserver/internal/storage"
	"github.com/goserg/standingsserver/internal/storage/sqlite"
	"github.com/goserg/standingsserver/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := storage.New(cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	err = sqlite3migrate.UpServerDB(db)
	if err != nil {
		return err
	}
	store := sqlite.New(db)
	standingsService := service.New(log, store, store, store, store)

	m := metrics.New()
	go func() {
		if err := m.Serve(cfg.Server.MetricsPort); err != nil {
			log.WithError(err).Error("metrics listener stopped")
		}
	}()

	server, err := web.New(standingsService, cfg.Server, m, log)
	if err != nil {
		return err
	}
	log.WithField("port", cfg.Server.Port).Info("standings server starting")
	return server.Serve()
}
