package ledger

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ConditionalDeduct(ctx context.Context, id uuid.UUID, amount int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

// Deduct subtracts amount from the account and returns the new balance. The
// sufficiency check happens inside the store's single conditional update, so
// two concurrent deductions can never both pass against a stale balance.
func (s *Service) Deduct(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return s.repo.ConditionalDeduct(ctx, id, amount)
}
