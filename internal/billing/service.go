package billing

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	GetPayable(ctx context.Context, studentRef string) (*Bill, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*Bill, error)
	ListByStudent(ctx context.Context, studentRef string) ([]*Bill, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetPayable returns the oldest unpaid bill for the student, or ErrNoPayable.
func (s *Service) GetPayable(ctx context.Context, studentRef string) (*Bill, error) {
	return s.repo.GetPayable(ctx, studentRef)
}

// MarkPaid flips a bill from unpaid to paid exactly once. Re-marking a paid
// bill fails with ErrAlreadyPaid rather than succeeding silently.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.MarkPaid(ctx, id)
}

// ListByStudent returns every bill for the student in payment order, with the
// Payable flag set on the single bill that may be paid next.
func (s *Service) ListByStudent(ctx context.Context, studentRef string) ([]*Bill, error) {
	bills, err := s.repo.ListByStudent(ctx, studentRef)
	if err != nil {
		return nil, err
	}

	if len(bills) == 0 {
		return nil, ErrStudentNotFound
	}

	for _, b := range bills {
		if b.Status == StatusUnpaid {
			b.Payable = true
			break
		}
	}

	return bills, nil
}
