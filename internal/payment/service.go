package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/auth"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payment

// Repository is the transaction ledger owned by this service.
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	// BeginConfirm locks the pending transaction row for the duration of one
	// confirmation attempt. Absence (completed, deleted, or wrong owner)
	// yields ErrTransactionNotFound.
	BeginConfirm(ctx context.Context, id, payerID uuid.UUID) (ConfirmTx, error)
	DeletePending(ctx context.Context, id, payerID uuid.UUID) (bool, error)
	DeletePendingByBill(ctx context.Context, payerID, billID uuid.UUID) ([]uuid.UUID, error)
	ListByPayer(ctx context.Context, payerID uuid.UUID) ([]*Transaction, error)
}

// ConfirmTx holds the row lock on one pending transaction. Complete commits
// the pending -> completed transition; Rollback releases the lock leaving the
// transaction pending and safe to retry.
type ConfirmTx interface {
	Transaction() *Transaction
	Complete(ctx context.Context) error
	Rollback() error
}

// Bills is the bill registry collaborator.
type Bills interface {
	GetPayable(ctx context.Context, studentRef string) (*BillSummary, error)
	MarkPaid(ctx context.Context, billID uuid.UUID) error
}

// Accounts is the ledger store collaborator.
type Accounts interface {
	Get(ctx context.Context, payerID uuid.UUID) (*Account, error)
	// Deduct conditionally subtracts amount; the store's own balance check is
	// authoritative, whatever this service read beforehand.
	Deduct(ctx context.Context, payerID uuid.UUID, amount int64, receiptRef string) (int64, error)
}

// Challenges is the one-time-code store collaborator.
type Challenges interface {
	Create(ctx context.Context, transactionID uuid.UUID) (*IssuedChallenge, error)
	VerifyAndConsume(ctx context.Context, code string) (uuid.UUID, error)
	ExpireByTransaction(ctx context.Context, transactionID uuid.UUID) error
}

// Notifier delivers out-of-band mail. Always best-effort.
type Notifier interface {
	SendChallenge(ctx context.Context, email ChallengeEmail) error
	SendReceipt(ctx context.Context, email ReceiptEmail) error
}

type ChallengeEmail struct {
	To        string
	Name      string
	Code      string
	Bill      BillSummary
	ExpiresIn time.Duration
}

type ReceiptEmail struct {
	To         string
	Name       string
	ReceiptRef string
	Bill       BillSummary
	NewBalance int64
	PaidAt     time.Time
}

const detachedTimeout = 15 * time.Second

// Service sequences the payment confirmation saga. It owns no durable state
// beyond what it writes into the transaction ledger and the challenge store.
type Service struct {
	repo       Repository
	bills      Bills
	accounts   Accounts
	challenges Challenges
	notifier   Notifier

	detached sync.WaitGroup
}

func NewService(repo Repository, bills Bills, accounts Accounts, challenges Challenges, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		bills:      bills,
		accounts:   accounts,
		challenges: challenges,
		notifier:   notifier,
	}
}

// RequestChallenge resolves the payable bill, supersedes any pending
// transaction for it, creates a fresh pending transaction with a one-time
// code bound to it, and queues the code for out-of-band delivery.
func (s *Service) RequestChallenge(ctx context.Context, payerID uuid.UUID, studentRef string) (*ChallengeResult, error) {
	payable, err := s.bills.GetPayable(ctx, studentRef)
	if err != nil {
		return nil, err
	}

	// Resend path: delete any pending transaction for this bill and expire
	// its code. Best-effort; a failure here is logged and must not block
	// issuing a new challenge.
	s.supersedePending(ctx, payerID, payable.BillID)

	tx := &Transaction{
		PayerID: payerID,
		BillID:  payable.BillID,
		Amount:  payable.Amount,
		Status:  StatusPending,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	issued, err := s.challenges.Create(ctx, tx.ID)
	if err != nil {
		// The transaction has no code and can never be confirmed; drop it
		// rather than leaving it to the next supersede.
		if _, derr := s.repo.DeletePending(ctx, tx.ID, payerID); derr != nil {
			slog.Warn("failed to drop codeless transaction",
				"transaction_id", tx.ID, "error", derr)
		}

		return nil, fmt.Errorf("creating challenge: %w", err)
	}

	s.detach(ctx, "challenge email", func(ctx context.Context) error {
		acc, err := s.accounts.Get(ctx, payerID)
		if err != nil {
			return fmt.Errorf("resolving recipient: %w", err)
		}

		return s.notifier.SendChallenge(ctx, ChallengeEmail{
			To:        acc.Email,
			Name:      acc.FullName,
			Code:      issued.Code,
			Bill:      *payable,
			ExpiresIn: issued.ExpiresIn,
		})
	})

	return &ChallengeResult{
		TransactionID: tx.ID,
		Bill:          *payable,
		ExpiresIn:     issued.ExpiresIn,
	}, nil
}

// ConfirmPayment runs the forward path of the saga: consume the code, lock
// the transaction row, re-validate the bill, deduct the balance, mark the
// bill paid, complete the transaction. Every step before the deduction fails
// closed: the transaction stays pending and a fresh attempt is safe.
func (s *Service) ConfirmPayment(ctx context.Context, payerID uuid.UUID, code, studentRef string) (*ConfirmResult, error) {
	transactionID, err := s.challenges.VerifyAndConsume(ctx, code)
	if err != nil {
		return nil, err
	}

	confirm, err := s.repo.BeginConfirm(ctx, transactionID, payerID)
	if err != nil {
		return nil, err
	}
	defer confirm.Rollback()

	tx := confirm.Transaction()

	payable, err := s.bills.GetPayable(ctx, studentRef)
	switch {
	case errors.Is(err, ErrNoPayableBill):
		return nil, ErrStaleBill
	case err != nil:
		return nil, err
	case payable.BillID != tx.BillID:
		return nil, ErrStaleBill
	}

	acc, err := s.accounts.Get(ctx, tx.PayerID)
	if err != nil {
		return nil, err
	}

	// Advisory only; the ledger re-checks inside the deduction itself.
	if acc.Balance < tx.Amount {
		return nil, ErrInsufficientBalance
	}

	ref := ReceiptRef(tx.ID)

	newBalance, err := s.accounts.Deduct(ctx, tx.PayerID, tx.Amount, ref)
	if err != nil {
		return nil, err
	}

	// Money has left the account. Log the receipt before touching the bill so
	// a failure from here on is detectable by operators scanning pending
	// transactions for this reference.
	slog.Info("balance deducted",
		"receipt_ref", ref,
		"transaction_id", tx.ID,
		"bill_id", tx.BillID,
		"amount", tx.Amount,
		"new_balance", newBalance,
		"correlation_id", auth.CorrelationID(ctx))

	if err := s.bills.MarkPaid(ctx, tx.BillID); err != nil {
		slog.Error("reconciliation required: deduction committed but bill not marked paid",
			"receipt_ref", ref,
			"transaction_id", tx.ID,
			"bill_id", tx.BillID,
			"error", err)

		return nil, &PartialFailureError{ReceiptRef: ref, TransactionID: tx.ID, Err: err}
	}

	if err := confirm.Complete(ctx); err != nil {
		slog.Error("reconciliation required: bill paid but transaction not completed",
			"receipt_ref", ref,
			"transaction_id", tx.ID,
			"error", err)

		return nil, &PartialFailureError{ReceiptRef: ref, TransactionID: tx.ID, Err: err}
	}

	s.detach(ctx, "receipt email", func(ctx context.Context) error {
		return s.notifier.SendReceipt(ctx, ReceiptEmail{
			To:         acc.Email,
			Name:       acc.FullName,
			ReceiptRef: ref,
			Bill:       *payable,
			NewBalance: newBalance,
			PaidAt:     time.Now(),
		})
	})

	return &ConfirmResult{Transaction: tx, NewBalance: newBalance}, nil
}

// Cancel deletes the payer's transaction iff it is still pending and expires
// its code. Cancelling a transaction that is gone or already completed is a
// no-op success. A cancel racing a confirm blocks on the confirm's row lock
// and then matches nothing.
func (s *Service) Cancel(ctx context.Context, payerID, transactionID uuid.UUID) error {
	deleted, err := s.repo.DeletePending(ctx, transactionID, payerID)
	if err != nil {
		return fmt.Errorf("cancelling transaction: %w", err)
	}

	if !deleted {
		return nil
	}

	if err := s.challenges.ExpireByTransaction(ctx, transactionID); err != nil {
		slog.Warn("failed to expire challenge for cancelled transaction",
			"transaction_id", transactionID, "error", err)
	}

	return nil
}

// History returns the payer's transactions, newest first.
func (s *Service) History(ctx context.Context, payerID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListByPayer(ctx, payerID)
}

// Wait blocks until all detached tasks have finished. Used on shutdown and in
// tests.
func (s *Service) Wait() {
	s.detached.Wait()
}

func (s *Service) supersedePending(ctx context.Context, payerID, billID uuid.UUID) {
	deleted, err := s.repo.DeletePendingByBill(ctx, payerID, billID)
	if err != nil {
		slog.Warn("failed to clean up pending transactions",
			"payer_id", payerID, "bill_id", billID, "error", err)
		return
	}

	for _, id := range deleted {
		slog.Info("superseded pending transaction", "transaction_id", id,
			"correlation_id", auth.CorrelationID(ctx))

		if err := s.challenges.ExpireByTransaction(ctx, id); err != nil {
			slog.Warn("failed to expire challenge for superseded transaction",
				"transaction_id", id, "error", err)
		}
	}
}

// detach runs fn in the background with its own deadline, outliving the
// request that spawned it. Failures land in the log, never in the caller's
// result.
func (s *Service) detach(ctx context.Context, task string, fn func(context.Context) error) {
	correlationID := auth.CorrelationID(ctx)

	s.detached.Add(1)

	go func() {
		defer s.detached.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), detachedTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			slog.Error("detached task failed",
				"task", task, "correlation_id", correlationID, "error", err)
		}
	}()
}
