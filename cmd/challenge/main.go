package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ndhoang/tuipay/internal/challenge"
	challengeStore "github.com/ndhoang/tuipay/internal/challenge/store"
	"github.com/ndhoang/tuipay/internal/config"
	"github.com/ndhoang/tuipay/internal/database"
	tuipayHttp "github.com/ndhoang/tuipay/internal/http"
	challengeHandler "github.com/ndhoang/tuipay/internal/http/challenge"
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

	svc := challenge.NewService(challengeStore.New(db), cfg.Challenge.TTL, cfg.Challenge.Length)

	// Hygiene only; verification enforces expiry on its own.
	go sweep(context.Background(), svc, cfg.Challenge.SweepInterval)

	router := tuipayHttp.NewChallenge(challengeHandler.NewHandler(svc), cfg.Auth.InternalKey)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting challenge service", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func sweep(ctx context.Context, svc *challenge.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.Sweep(ctx)
			if err != nil {
				slog.Warn("challenge sweep failed", "error", err)
				continue
			}

			if n > 0 {
				slog.Info("swept expired challenges", "count", n)
			}
		}
	}
}
