// Package auth carries payer identity into request contexts and guards
// internal service-to-service endpoints.
//
// Payers authenticate against the gateway, which issues an HS256 token with
// the payer id as subject. Services never see credentials; they only verify
// the token signature and expiry.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey int

const (
	payerIDKey contextKey = iota
	correlationIDKey
)

// PayerID returns the authenticated payer id stored in ctx.
func PayerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(payerIDKey).(uuid.UUID)
	return id, ok
}

// CorrelationID returns the request-scoped correlation id, or uuid.Nil if the
// request did not pass through the identity middleware.
func CorrelationID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(correlationIDKey).(uuid.UUID)
	return id
}

// WithPayerID is intended for tests and internal fan-out; requests get their
// identity from the middleware below.
func WithPayerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, payerIDKey, id)
}

// WithCorrelationID stores a request-scoped correlation id in ctx.
func WithCorrelationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// Identity verifies the payer token and injects the payer id plus a fresh
// correlation id into the request context. The token is read from the
// Authorization header or from the access_token cookie set by the gateway UI.
func Identity(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				http.Error(w, "missing credentials", http.StatusUnauthorized)
				return
			}

			payerID, err := verifyToken(raw, secret)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := WithPayerID(r.Context(), payerID)
			ctx = WithCorrelationID(ctx, uuid.New())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// InternalKey rejects requests that do not carry the shared X-API-Key used
// between services.
func InternalKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				http.Error(w, "invalid api key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}

	if c, err := r.Cookie("access_token"); err == nil {
		return c.Value
	}

	return ""
}

func verifyToken(raw, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(sub)
}
