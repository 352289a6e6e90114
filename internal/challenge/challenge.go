package challenge

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a one-time code.
type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

var (
	// ErrInvalidCode covers every verification failure: unknown code, already
	// used, expired, or superseded. Callers get no more detail than that.
	ErrInvalidCode = errors.New("invalid or expired code")

	ErrNotFound = errors.New("challenge not found")
)

// Challenge binds a single-use code to one pending transaction. A code that
// verifies successfully transitions active -> used in the same step, so a
// replay can never verify twice.
type Challenge struct {
	ID            uuid.UUID
	Code          string
	TransactionID uuid.UUID
	Status        Status
	CreatedAt     time.Time
}
