package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/billing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBillColumns = `
	id, student_ref, student_name, semester, academic_year, amount, status, created_at, updated_at
`

func scanBill(s scanner) (*billing.Bill, error) {
	var (
		b         billing.Bill
		statusStr string
	)

	if err := s.Scan(
		&b.ID, &b.StudentRef, &b.StudentName, &b.Semester, &b.AcademicYear,
		&b.Amount, &statusStr, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Status = billing.Status(statusStr)

	return &b, nil
}

// GetPayable returns the oldest unpaid bill for the student. The academic
// year sorts lexicographically ("2023-2024" < "2024-2025"), so the two-column
// order is the payment order.
func (s *Store) GetPayable(ctx context.Context, studentRef string) (*billing.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE student_ref = $1 AND status = 'unpaid'
		ORDER BY academic_year ASC, semester ASC
		LIMIT 1`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, studentRef))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrNoPayable
		}

		return nil, fmt.Errorf("getting payable bill: %w", err)
	}

	return b, nil
}

// MarkPaid transitions a bill unpaid -> paid under a row lock. A bill that is
// already paid fails with ErrAlreadyPaid so a retried mark is detectable.
func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE id = $1
		FOR UPDATE`

	b, err := scanBill(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrNotFound
		}

		return nil, fmt.Errorf("locking bill: %w", err)
	}

	if b.Status == billing.StatusPaid {
		return nil, billing.ErrAlreadyPaid
	}

	update := `
		UPDATE bills
		SET status = 'paid', updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := dbTx.QueryRowContext(ctx, update, id).Scan(&b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("marking bill paid: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing mark paid: %w", err)
	}

	b.Status = billing.StatusPaid

	return b, nil
}

func (s *Store) ListByStudent(ctx context.Context, studentRef string) ([]*billing.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE student_ref = $1
		ORDER BY academic_year ASC, semester ASC`

	rows, err := s.db.QueryContext(ctx, query, studentRef)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*billing.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}
