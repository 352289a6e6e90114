package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/payment"
)

type billSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	Semester     int       `json:"semester"`
	AcademicYear string    `json:"academic_year"`
	Amount       int64     `json:"amount"`
}

type challengeResponse struct {
	TransactionID    uuid.UUID           `json:"transaction_id"`
	Bill             billSummaryResponse `json:"bill"`
	ExpiresInSeconds int64               `json:"expires_in_seconds"`
}

type transactionResponse struct {
	ID        uuid.UUID      `json:"id"`
	BillID    uuid.UUID      `json:"bill_id"`
	Amount    int64          `json:"amount"`
	Status    payment.Status `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type confirmResponse struct {
	Transaction transactionResponse `json:"transaction"`
	NewBalance  int64               `json:"new_balance"`
}

type historyResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

func toChallengeResponse(result *payment.ChallengeResult) challengeResponse {
	return challengeResponse{
		TransactionID: result.TransactionID,
		Bill: billSummaryResponse{
			ID:           result.Bill.BillID,
			Semester:     result.Bill.Semester,
			AcademicYear: result.Bill.AcademicYear,
			Amount:       result.Bill.Amount,
		},
		ExpiresInSeconds: int64(result.ExpiresIn.Seconds()),
	}
}

func toTransactionResponse(tx *payment.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		BillID:    tx.BillID,
		Amount:    tx.Amount,
		Status:    tx.Status,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func toConfirmResponse(result *payment.ConfirmResult) confirmResponse {
	return confirmResponse{
		Transaction: toTransactionResponse(result.Transaction),
		NewBalance:  result.NewBalance,
	}
}

func toHistoryResponse(txs []*payment.Transaction) historyResponse {
	resp := historyResponse{Transactions: make([]transactionResponse, len(txs))}
	for i, tx := range txs {
		resp.Transactions[i] = toTransactionResponse(tx)
	}

	return resp
}
