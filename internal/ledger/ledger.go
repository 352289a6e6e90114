package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("deduction amount must be positive")
)

// Account holds a payer's spendable balance. The balance never goes negative:
// every deduction is conditional on sufficient funds inside the store.
type Account struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Balance   int64 // Balance in VND
	CreatedAt time.Time
	UpdatedAt time.Time
}
