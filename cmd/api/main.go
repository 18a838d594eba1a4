package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tillworks/tillkeeper/internal/cashonhand"
	cashOnHandStore "github.com/tillworks/tillkeeper/internal/cashonhand/store"
	"github.com/tillworks/tillkeeper/internal/config"
	"github.com/tillworks/tillkeeper/internal/database"
	"github.com/tillworks/tillkeeper/internal/deposit"
	depositStore "github.com/tillworks/tillkeeper/internal/deposit/store"
	"github.com/tillworks/tillkeeper/internal/drop"
	dropStore "github.com/tillworks/tillkeeper/internal/drop/store"
	tillkeeperHttp "github.com/tillworks/tillkeeper/internal/http"
	cashOnHandHandler "github.com/tillworks/tillkeeper/internal/http/cashonhand"
	depositHandler "github.com/tillworks/tillkeeper/internal/http/deposit"
	dropHandler "github.com/tillworks/tillkeeper/internal/http/drop"
	reconciliationHandler "github.com/tillworks/tillkeeper/internal/http/reconciliation"
	sessionHandler "github.com/tillworks/tillkeeper/internal/http/session"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	reconciliationStore "github.com/tillworks/tillkeeper/internal/reconciliation/store"
	"github.com/tillworks/tillkeeper/internal/session"
	sessionStore "github.com/tillworks/tillkeeper/internal/session/store"
)

func main() {
	// Missing .env is fine; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		sessionService        = session.NewService(sessionStore.New(db), cfg.Thresholds())
		dropService           = drop.NewService(dropStore.New(db))
		reconciliationService = reconciliation.NewService(reconciliationStore.New(db))
		depositService        = deposit.NewService(depositStore.New(db))
		cashOnHandService     = cashonhand.NewService(cashOnHandStore.New(db))
	)

	var (
		sessionH        = sessionHandler.NewHandler(sessionService)
		dropH           = dropHandler.NewHandler(dropService)
		reconciliationH = reconciliationHandler.NewHandler(reconciliationService)
		depositH        = depositHandler.NewHandler(depositService)
		cashOnHandH     = cashOnHandHandler.NewHandler(cashOnHandService)
	)

	router := tillkeeperHttp.New(tillkeeperHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		JWTSecret:      cfg.Auth.JWTSecret,
	}, sessionH, dropH, reconciliationH, depositH, cashOnHandH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
