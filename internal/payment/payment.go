package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a payment transaction.
// A transaction goes pending -> completed exactly once and never reverses;
// a pending transaction that is cancelled or superseded is deleted outright.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

var (
	ErrNoPayableBill         = errors.New("no payable bill")
	ErrInvalidOrExpiredCode  = errors.New("invalid or expired code")
	ErrTransactionNotFound   = errors.New("transaction not found or already processed")
	ErrStaleBill             = errors.New("payable bill changed since the challenge was issued")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrDownstreamUnavailable = errors.New("downstream service unavailable")

	// ErrPartialFailure marks the one non-compensable state of the saga: the
	// deduction committed but the bill was not marked paid (or the final
	// completion write failed). Operators find these by scanning pending
	// transactions whose receipt reference was logged.
	ErrPartialFailure = errors.New("payment partially applied, manual reconciliation required")

	// ErrPendingExists surfaces the one-pending-per-bill invariant from the
	// transaction store.
	ErrPendingExists = errors.New("a pending transaction already exists for this bill")
)

// Transaction is a payment attempt and the single source of truth for
// whether the payment happened.
type Transaction struct {
	ID        uuid.UUID
	PayerID   uuid.UUID
	BillID    uuid.UUID
	Amount    int64 // Amount in VND, snapshotted when the challenge is issued
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BillSummary describes the billed item to payers and notifications.
type BillSummary struct {
	BillID       uuid.UUID
	Semester     int
	AcademicYear string
	Amount       int64
}

// Account is the slice of the ledger account the orchestrator needs: where to
// send mail and the advisory balance.
type Account struct {
	Email    string
	FullName string
	Balance  int64
}

// IssuedChallenge is what the challenge store hands back on creation.
type IssuedChallenge struct {
	Code      string
	ExpiresIn time.Duration
}

// ChallengeResult is returned by RequestChallenge.
type ChallengeResult struct {
	TransactionID uuid.UUID
	Bill          BillSummary
	ExpiresIn     time.Duration
}

// ConfirmResult is returned by a successful ConfirmPayment.
type ConfirmResult struct {
	Transaction *Transaction
	NewBalance  int64
}

// ReceiptRef is the operator-facing reference for a ledger deduction. It is
// logged before the bill is touched so a partial failure stays detectable.
func ReceiptRef(transactionID uuid.UUID) string {
	hex := strings.ReplaceAll(transactionID.String(), "-", "")
	return "TXN-" + strings.ToUpper(hex[:12])
}

// PartialFailureError carries the evidence an operator needs to reconcile a
// deduction whose follow-up steps did not complete. errors.Is matches it
// against ErrPartialFailure.
type PartialFailureError struct {
	ReceiptRef    string
	TransactionID uuid.UUID
	Err           error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("payment %s partially applied (receipt %s): %v",
		e.TransactionID, e.ReceiptRef, e.Err)
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{ErrPartialFailure, e.Err}
}
