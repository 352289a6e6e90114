package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the payment state of a bill.
type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

var (
	ErrNotFound        = errors.New("bill not found")
	ErrAlreadyPaid     = errors.New("bill already paid")
	ErrNoPayable       = errors.New("no payable bill")
	ErrStudentNotFound = errors.New("student not found")
)

// Bill is one tuition line item owed by a student. Bills are ordered by
// (academic_year, semester); only the oldest unpaid one is payable.
type Bill struct {
	ID           uuid.UUID
	StudentRef   string
	StudentName  string
	Semester     int
	AcademicYear string
	Amount       int64 // Amount in VND
	Status       Status
	Payable      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
