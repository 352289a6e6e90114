package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ndhoang/tuipay/internal/auth"
	billingHandler "github.com/ndhoang/tuipay/internal/http/billing"
	challengeHandler "github.com/ndhoang/tuipay/internal/http/challenge"
	ledgerHandler "github.com/ndhoang/tuipay/internal/http/ledger"
	paymentHandler "github.com/ndhoang/tuipay/internal/http/payment"
)

// NewPayment builds the public payment API. Every route requires a verified
// payer identity; the browser UI is served from another origin, hence CORS.
func NewPayment(paymentsV1 *paymentHandler.Handler, jwtSecret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Use(auth.Identity(jwtSecret))
		paymentsV1.Routes(r)
	})

	return router
}

// NewBilling builds the bill registry's internal API.
func NewBilling(billsV1 *billingHandler.Handler, internalKey string) http.Handler {
	router := newInternal(internalKey)

	router.Route("/api/bills", billsV1.Routes)

	return router
}

// NewLedger builds the account ledger's internal API.
func NewLedger(accountsV1 *ledgerHandler.Handler, internalKey string) http.Handler {
	router := newInternal(internalKey)

	router.Route("/api/accounts", accountsV1.Routes)

	return router
}

// NewChallenge builds the one-time-code service's internal API.
func NewChallenge(challengesV1 *challengeHandler.Handler, internalKey string) http.Handler {
	router := newInternal(internalKey)

	router.Route("/api/challenges", challengesV1.Routes)

	return router
}

func newInternal(internalKey string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(auth.InternalKey(internalKey))

	return router
}
