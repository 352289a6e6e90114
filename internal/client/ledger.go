package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

// Ledger reaches the account balance service.
type Ledger struct {
	base
}

func NewLedger(baseURL, apiKey string, timeout time.Duration) *Ledger {
	return &Ledger{base: newBase(baseURL, apiKey, timeout)}
}

type accountResponse struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Balance  int64  `json:"balance"`
}

func (c *Ledger) Get(ctx context.Context, payerID uuid.UUID) (*payment.Account, error) {
	var resp accountResponse

	if err := c.doJSON(ctx, http.MethodGet, "/api/accounts/"+payerID.String(), nil, &resp); err != nil {
		return nil, err
	}

	return &payment.Account{
		Email:    resp.Email,
		FullName: resp.FullName,
		Balance:  resp.Balance,
	}, nil
}

type deductRequest struct {
	Amount     int64  `json:"amount"`
	ReceiptRef string `json:"receipt_ref"`
}

type deductResponse struct {
	NewBalance int64 `json:"new_balance"`
}

func (c *Ledger) Deduct(ctx context.Context, payerID uuid.UUID, amount int64, receiptRef string) (int64, error) {
	var resp deductResponse

	err := c.doJSON(ctx, http.MethodPost, "/api/accounts/"+payerID.String()+"/deduct",
		deductRequest{Amount: amount, ReceiptRef: receiptRef}, &resp)
	if err != nil {
		return 0, translate(err, map[string]error{
			api.CodeInsufficientBalance: payment.ErrInsufficientBalance,
		})
	}

	return resp.NewBalance, nil
}
