package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ndhoang/tuipay/internal/config"
	"github.com/ndhoang/tuipay/internal/database"
	tuipayHttp "github.com/ndhoang/tuipay/internal/http"
	ledgerHandler "github.com/ndhoang/tuipay/internal/http/ledger"
	"github.com/ndhoang/tuipay/internal/ledger"
	ledgerStore "github.com/ndhoang/tuipay/internal/ledger/store"
)

func main() {
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

	svc := ledger.NewService(ledgerStore.New(db))

	router := tuipayHttp.NewLedger(ledgerHandler.NewHandler(svc), cfg.Auth.InternalKey)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting ledger service", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
