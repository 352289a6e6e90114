package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ndhoang/tuipay/internal/billing"
	billingStore "github.com/ndhoang/tuipay/internal/billing/store"
	"github.com/ndhoang/tuipay/internal/config"
	"github.com/ndhoang/tuipay/internal/database"
	tuipayHttp "github.com/ndhoang/tuipay/internal/http"
	billingHandler "github.com/ndhoang/tuipay/internal/http/billing"
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

	svc := billing.NewService(billingStore.New(db))

	router := tuipayHttp.NewBilling(billingHandler.NewHandler(svc), cfg.Auth.InternalKey)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting billing service", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
