package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bet-engine/internal/model"
	"bet-engine/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.IdempotencyRepository = (*IdempotencyRepositoryImpl)(nil)

// IdempotencyRepositoryImpl is the PostgreSQL implementation of
// IdempotencyRepository. The primary key on the request key is what decides
// the winner when two requests race with the same key.
type IdempotencyRepositoryImpl struct {
	*TransactionManager
}

func NewIdempotencyRepository(pool *pgxpool.Pool) repository.IdempotencyRepository {
	return &IdempotencyRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Get retrieves a record; a nil record means the key is unseen
func (r *IdempotencyRepositoryImpl) Get(ctx context.Context, key string, tx ...pgx.Tx) (*model.IdempotencyRecord, error) {
	query := `
        SELECT key, user_id, operation, status, bet_id, created_at, updated_at
        FROM idempotency_keys WHERE key = $1`

	rec := &model.IdempotencyRecord{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, key).Scan(&rec.Key, &rec.UserID, &rec.Operation, &rec.Status, &rec.BetID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get idempotency record: %w", err)
	}
	return rec, nil
}

// Begin claims the key with an in-progress record
func (r *IdempotencyRepositoryImpl) Begin(ctx context.Context, rec *model.IdempotencyRecord, tx pgx.Tx) error {
	query := `
        INSERT INTO idempotency_keys (key, user_id, operation, status, bet_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	err := tx.QueryRow(ctx, query, rec.Key, rec.UserID, rec.Operation, rec.Status, rec.BetID).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateKey
		}
		return fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	return nil
}

// Resolve marks the record succeeded and binds the resulting bet
func (r *IdempotencyRepositoryImpl) Resolve(ctx context.Context, key string, betID int64, tx pgx.Tx) error {
	query := `
        UPDATE idempotency_keys
        SET status = $1, bet_id = $2, updated_at = NOW()
        WHERE key = $3`

	commandTag, err := tx.Exec(ctx, query, model.IdemSucceeded, betID, key)
	if err != nil {
		return fmt.Errorf("failed to resolve idempotency key: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("idempotency key %s disappeared before resolution", key)
	}
	return nil
}
