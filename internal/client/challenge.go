package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

// Challenge reaches the one-time-code service.
type Challenge struct {
	base
}

func NewChallenge(baseURL, apiKey string, timeout time.Duration) *Challenge {
	return &Challenge{base: newBase(baseURL, apiKey, timeout)}
}

type createChallengeRequest struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

type createChallengeResponse struct {
	Code      string `json:"code"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}

func (c *Challenge) Create(ctx context.Context, transactionID uuid.UUID) (*payment.IssuedChallenge, error) {
	var resp createChallengeResponse

	err := c.doJSON(ctx, http.MethodPost, "/api/challenges",
		createChallengeRequest{TransactionID: transactionID}, &resp)
	if err != nil {
		return nil, err
	}

	return &payment.IssuedChallenge{
		Code:      resp.Code,
		ExpiresIn: time.Duration(resp.ExpiresIn) * time.Second,
	}, nil
}

type verifyRequest struct {
	Code string `json:"code"`
}

type verifyResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

func (c *Challenge) VerifyAndConsume(ctx context.Context, code string) (uuid.UUID, error) {
	var resp verifyResponse

	err := c.doJSON(ctx, http.MethodPost, "/api/challenges/verify", verifyRequest{Code: code}, &resp)
	if err != nil {
		return uuid.Nil, translate(err, map[string]error{
			api.CodeInvalidOrExpiredCode: payment.ErrInvalidOrExpiredCode,
		})
	}

	return resp.TransactionID, nil
}

type expireRequest struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

func (c *Challenge) ExpireByTransaction(ctx context.Context, transactionID uuid.UUID) error {
	return c.doJSON(ctx, http.MethodPost, "/api/challenges/expire",
		expireRequest{TransactionID: transactionID}, nil)
}
