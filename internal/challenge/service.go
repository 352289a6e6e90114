package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=challenge
type Repository interface {
	CreateChallenge(ctx context.Context, ch *Challenge) error
	// ConsumeActive atomically flips an active, unexpired challenge to used and
	// returns its transaction id. Exactly one of any number of concurrent
	// callers with the same code succeeds.
	ConsumeActive(ctx context.Context, code string, createdAfter time.Time) (uuid.UUID, error)
	// MarkExpired lazily retires an active challenge whose TTL has elapsed.
	MarkExpired(ctx context.Context, code string, createdBefore time.Time) error
	ExpireByTransaction(ctx context.Context, transactionID uuid.UUID) (int64, error)
	SweepExpired(ctx context.Context, createdBefore time.Time) (int64, error)
}

type Service struct {
	repo   Repository
	ttl    time.Duration
	length int

	now func() time.Time
}

func NewService(repo Repository, ttl time.Duration, length int) *Service {
	return &Service{
		repo:   repo,
		ttl:    ttl,
		length: length,
		now:    time.Now,
	}
}

// TTL reports how long issued codes stay valid.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Create issues a fresh code bound to the transaction. Any prior active code
// for the same transaction is expired first, keeping a single live code per
// transaction.
func (s *Service) Create(ctx context.Context, transactionID uuid.UUID) (*Challenge, error) {
	if n, err := s.repo.ExpireByTransaction(ctx, transactionID); err != nil {
		return nil, fmt.Errorf("expiring prior challenges: %w", err)
	} else if n > 0 {
		slog.Info("superseded active challenge", "transaction_id", transactionID, "count", n)
	}

	code, err := generateCode(s.length)
	if err != nil {
		return nil, err
	}

	ch := &Challenge{
		Code:          code,
		TransactionID: transactionID,
		Status:        StatusActive,
	}
	if err := s.repo.CreateChallenge(ctx, ch); err != nil {
		return nil, err
	}

	return ch, nil
}

// VerifyAndConsume checks a submitted code and, on success, marks it used in
// the same store operation. Expiry is enforced here, lazily: an active row
// past its TTL fails verification and is retired in passing.
func (s *Service) VerifyAndConsume(ctx context.Context, code string) (uuid.UUID, error) {
	cutoff := s.now().Add(-s.ttl)

	transactionID, err := s.repo.ConsumeActive(ctx, code, cutoff)
	if err == nil {
		return transactionID, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return uuid.Nil, err
	}

	// The code may be an active row past its TTL. Retiring it is hygiene, not
	// correctness: the cutoff above already refused it.
	if err := s.repo.MarkExpired(ctx, code, cutoff); err != nil {
		slog.Warn("failed to retire expired challenge", "error", err)
	}

	return uuid.Nil, ErrInvalidCode
}

// ExpireByTransaction retires the active code for a transaction, if any.
// Used when a pending transaction is cancelled or superseded.
func (s *Service) ExpireByTransaction(ctx context.Context, transactionID uuid.UUID) error {
	_, err := s.repo.ExpireByTransaction(ctx, transactionID)
	return err
}

// Sweep retires every active challenge past its TTL. Correctness never
// depends on it; expiry is checked at verification time.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.repo.SweepExpired(ctx, s.now().Add(-s.ttl))
}
