package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	query := `
		SELECT id, email, full_name, balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var acc ledger.Account

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&acc.ID, &acc.Email, &acc.FullName, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &acc, nil
}

// ConditionalDeduct subtracts amount iff the balance covers it. The check and
// the decrement are one statement, so concurrent deductions on the same
// account serialize on the row and re-evaluate against the committed balance.
func (s *Store) ConditionalDeduct(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE id = $1 AND balance >= $2
		RETURNING balance
	`

	var newBalance int64

	err := s.db.QueryRowContext(ctx, query, id, amount).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("deducting balance: %w", err)
	}

	// No row updated: either the account does not exist or the balance is
	// short. Distinguish the two for the caller.
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return 0, fmt.Errorf("checking account: %w", err)
	}

	if !exists {
		return 0, ledger.ErrNotFound
	}

	return 0, ledger.ErrInsufficientBalance
}
