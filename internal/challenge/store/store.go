package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/challenge"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateChallenge(ctx context.Context, ch *challenge.Challenge) error {
	query := `
		INSERT INTO challenges (code, transaction_id, status, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ch.Code,
		ch.TransactionID,
		ch.Status,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating challenge: %w", err)
	}

	return nil
}

// ConsumeActive is the single-use guarantee: one conditional UPDATE flips
// active -> used, so of all concurrent verifications of the same code exactly
// one sees a row.
func (s *Store) ConsumeActive(ctx context.Context, code string, createdAfter time.Time) (uuid.UUID, error) {
	query := `
		UPDATE challenges
		SET status = 'used'
		WHERE code = $1 AND status = 'active' AND created_at > $2
		RETURNING transaction_id
	`

	var transactionID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, code, createdAfter).Scan(&transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, challenge.ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("consuming challenge: %w", err)
	}

	return transactionID, nil
}

func (s *Store) MarkExpired(ctx context.Context, code string, createdBefore time.Time) error {
	query := `
		UPDATE challenges
		SET status = 'expired'
		WHERE code = $1 AND status = 'active' AND created_at <= $2
	`

	if _, err := s.db.ExecContext(ctx, query, code, createdBefore); err != nil {
		return fmt.Errorf("marking challenge expired: %w", err)
	}

	return nil
}

func (s *Store) ExpireByTransaction(ctx context.Context, transactionID uuid.UUID) (int64, error) {
	query := `
		UPDATE challenges
		SET status = 'expired'
		WHERE transaction_id = $1 AND status = 'active'
	`

	res, err := s.db.ExecContext(ctx, query, transactionID)
	if err != nil {
		return 0, fmt.Errorf("expiring challenges: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting expired challenges: %w", err)
	}

	return n, nil
}

func (s *Store) SweepExpired(ctx context.Context, createdBefore time.Time) (int64, error) {
	query := `
		UPDATE challenges
		SET status = 'expired'
		WHERE status = 'active' AND created_at <= $1
	`

	res, err := s.db.ExecContext(ctx, query, createdBefore)
	if err != nil {
		return 0, fmt.Errorf("sweeping challenges: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting swept challenges: %w", err)
	}

	return n, nil
}
