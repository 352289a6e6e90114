package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ndhoang/tuipay/internal/client"
	"github.com/ndhoang/tuipay/internal/config"
	"github.com/ndhoang/tuipay/internal/database"
	tuipayHttp "github.com/ndhoang/tuipay/internal/http"
	paymentHandler "github.com/ndhoang/tuipay/internal/http/payment"
	"github.com/ndhoang/tuipay/internal/notify"
	"github.com/ndhoang/tuipay/internal/payment"
	paymentStore "github.com/ndhoang/tuipay/internal/payment/store"
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

	mailer, err := notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})
	if err != nil {
		slog.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	var (
		bills      = client.NewBilling(cfg.Services.BillingURL, cfg.Auth.InternalKey, cfg.Services.Timeout)
		accounts   = client.NewLedger(cfg.Services.LedgerURL, cfg.Auth.InternalKey, cfg.Services.Timeout)
		challenges = client.NewChallenge(cfg.Services.ChallengeURL, cfg.Auth.InternalKey, cfg.Services.Timeout)
	)

	paymentService := payment.NewService(paymentStore.New(db), bills, accounts, challenges, mailer)
	defer paymentService.Wait()

	router := tuipayHttp.NewPayment(paymentHandler.NewHandler(paymentService), cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting payment service", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
