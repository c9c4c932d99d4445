package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/quizzle-app/quizzle/config"
	"github.com/quizzle-app/quizzle/internal/app"
	"github.com/quizzle-app/quizzle/internal/db"
)

var lg *slog.Logger

func main() {
	cfg, err := config.Init()
	if err != nil {
		lg = newLogger(false)
		exitOnError(err)
	}

	lg = newLogger(cfg.App.Debug)

	dbConn := pg.Connect(&cfg.Database)
	if cfg.App.Debug {
		dbConn.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbConn.Ping(context.Background()); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbConn, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
