package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ndhoang/tuipay/internal/payment"
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

const selectTransactionColumns = `
	id, payer_id, bill_id, amount, status, created_at, updated_at
`

func scanTransaction(s scanner) (*payment.Transaction, error) {
	var (
		tx        payment.Transaction
		statusStr string
	)

	if err := s.Scan(
		&tx.ID, &tx.PayerID, &tx.BillID, &tx.Amount, &statusStr, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Status = payment.Status(statusStr)

	return &tx, nil
}

const uniqueViolation = "23505"

func (s *Store) CreateTransaction(ctx context.Context, tx *payment.Transaction) error {
	query := `
		INSERT INTO transactions (payer_id, bill_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.PayerID,
		tx.BillID,
		tx.Amount,
		tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return payment.ErrPendingExists
		}

		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// BeginConfirm opens a database transaction and locks the pending row for the
// caller's critical section. Two concurrent confirmations for the same id
// queue on the row lock; the loser then sees no pending row.
func (s *Store) BeginConfirm(ctx context.Context, id, payerID uuid.UUID) (payment.ConfirmTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning confirm tx: %w", err)
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND payer_id = $2 AND status = 'pending'
		FOR UPDATE`

	tx, err := scanTransaction(dbTx.QueryRowContext(ctx, query, id, payerID))
	if err != nil {
		dbTx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("locking transaction: %w", err)
	}

	return &confirmTx{dbTx: dbTx, tx: tx}, nil
}

func (s *Store) DeletePending(ctx context.Context, id, payerID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND payer_id = $2 AND status = 'pending'
	`

	res, err := s.db.ExecContext(ctx, query, id, payerID)
	if err != nil {
		return false, fmt.Errorf("deleting transaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting deleted transactions: %w", err)
	}

	return n > 0, nil
}

func (s *Store) DeletePendingByBill(ctx context.Context, payerID, billID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		DELETE FROM transactions
		WHERE payer_id = $1 AND bill_id = $2 AND status = 'pending'
		RETURNING id
	`

	rows, err := s.db.QueryContext(ctx, query, payerID, billID)
	if err != nil {
		return nil, fmt.Errorf("deleting pending transactions: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning deleted transaction id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deleted transaction rows: %w", err)
	}

	return ids, nil
}

func (s *Store) ListByPayer(ctx context.Context, payerID uuid.UUID) ([]*payment.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE payer_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, payerID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*payment.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

type confirmTx struct {
	dbTx *sql.Tx
	tx   *payment.Transaction
}

func (c *confirmTx) Transaction() *payment.Transaction { return c.tx }

func (c *confirmTx) Complete(ctx context.Context) error {
	query := `
		UPDATE transactions
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	if err := c.dbTx.QueryRowContext(ctx, query, c.tx.ID).Scan(&c.tx.UpdatedAt); err != nil {
		return fmt.Errorf("completing transaction: %w", err)
	}

	if err := c.dbTx.Commit(); err != nil {
		return fmt.Errorf("committing confirmation: %w", err)
	}

	c.tx.Status = payment.StatusCompleted

	return nil
}

func (c *confirmTx) Rollback() error { return c.dbTx.Rollback() }
