package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndhoang/tuipay/internal/client"
	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

const testAPIKey = "internal-key"

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAPIKey, r.Header.Get("X-API-Key"))
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	return ts
}

func TestBilling_GetPayable(t *testing.T) {
	billID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/bills/payable", r.URL.Path)

			api.JSON(w, http.StatusOK, map[string]any{
				"id":            billID,
				"semester":      1,
				"academic_year": "2025-2026",
				"amount":        15_000_000,
			})
		})

		c := client.NewBilling(ts.URL, testAPIKey, time.Second)
		got, err := c.GetPayable(context.Background(), "SV001")

		require.NoError(t, err)
		assert.Equal(t, billID, got.BillID)
		assert.Equal(t, 1, got.Semester)
		assert.Equal(t, "2025-2026", got.AcademicYear)
		assert.Equal(t, int64(15_000_000), got.Amount)
	})

	t.Run("No payable bill", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			api.Error(w, http.StatusNotFound, api.CodeNoPayableBill, "all bills are paid")
		})

		c := client.NewBilling(ts.URL, testAPIKey, time.Second)
		_, err := c.GetPayable(context.Background(), "SV001")

		assert.ErrorIs(t, err, payment.ErrNoPayableBill)
	})

	t.Run("Unknown student maps to no payable bill", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			api.Error(w, http.StatusNotFound, api.CodeStudentNotFound, "student not found")
		})

		c := client.NewBilling(ts.URL, testAPIKey, time.Second)
		_, err := c.GetPayable(context.Background(), "SV404")

		assert.ErrorIs(t, err, payment.ErrNoPayableBill)
	})

	t.Run("Server error", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			api.Error(w, http.StatusInternalServerError, api.CodeInternal, "boom")
		})

		c := client.NewBilling(ts.URL, testAPIKey, time.Second)
		_, err := c.GetPayable(context.Background(), "SV001")

		assert.ErrorIs(t, err, payment.ErrDownstreamUnavailable)
	})

	t.Run("Service unreachable", func(t *testing.T) {
		c := client.NewBilling("http://127.0.0.1:1", testAPIKey, 200*time.Millisecond)
		_, err := c.GetPayable(context.Background(), "SV001")

		assert.ErrorIs(t, err, payment.ErrDownstreamUnavailable)
	})
}

func TestLedger_Deduct(t *testing.T) {
	payerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/accounts/"+payerID.String()+"/deduct", r.URL.Path)

			api.JSON(w, http.StatusOK, map[string]any{"new_balance": 5_000_000})
		})

		c := client.NewLedger(ts.URL, testAPIKey, time.Second)
		got, err := c.Deduct(context.Background(), payerID, 15_000_000, "TXN-A1B2C3D4E5F6")

		require.NoError(t, err)
		assert.Equal(t, int64(5_000_000), got)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			api.Error(w, http.StatusBadRequest, api.CodeInsufficientBalance, "balance too low")
		})

		c := client.NewLedger(ts.URL, testAPIKey, time.Second)
		_, err := c.Deduct(context.Background(), payerID, 15_000_000, "TXN-A1B2C3D4E5F6")

		assert.ErrorIs(t, err, payment.ErrInsufficientBalance)
	})
}

func TestLedger_Get(t *testing.T) {
	payerID := uuid.New()

	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts/"+payerID.String(), r.URL.Path)

		api.JSON(w, http.StatusOK, map[string]any{
			"email":     "an@example.com",
			"full_name": "Nguyen Van An",
			"balance":   20_000_000,
		})
	})

	c := client.NewLedger(ts.URL, testAPIKey, time.Second)
	got, err := c.Get(context.Background(), payerID)

	require.NoError(t, err)
	assert.Equal(t, "an@example.com", got.Email)
	assert.Equal(t, "Nguyen Van An", got.FullName)
	assert.Equal(t, int64(20_000_000), got.Balance)
}

func TestChallenge_Create(t *testing.T) {
	transactionID := uuid.New()

	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/challenges", r.URL.Path)

		api.JSON(w, http.StatusCreated, map[string]any{
			"code":               "123456",
			"expires_in_seconds": 300,
		})
	})

	c := client.NewChallenge(ts.URL, testAPIKey, time.Second)
	got, err := c.Create(context.Background(), transactionID)

	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
	assert.Equal(t, 5*time.Minute, got.ExpiresIn)
}

func TestChallenge_VerifyAndConsume(t *testing.T) {
	transactionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/challenges/verify", r.URL.Path)

			api.JSON(w, http.StatusOK, map[string]any{"transaction_id": transactionID})
		})

		c := client.NewChallenge(ts.URL, testAPIKey, time.Second)
		got, err := c.VerifyAndConsume(context.Background(), "123456")

		require.NoError(t, err)
		assert.Equal(t, transactionID, got)
	})

	t.Run("Invalid code", func(t *testing.T) {
		ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			api.Error(w, http.StatusBadRequest, api.CodeInvalidOrExpiredCode, "invalid or expired code")
		})

		c := client.NewChallenge(ts.URL, testAPIKey, time.Second)
		_, err := c.VerifyAndConsume(context.Background(), "000000")

		assert.ErrorIs(t, err, payment.ErrInvalidOrExpiredCode)
	})
}
