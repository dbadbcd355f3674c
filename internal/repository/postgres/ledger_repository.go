package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bet-engine/internal/model"
	"bet-engine/internal/money"
	"bet-engine/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository.
// The table is append-only; no update or delete statements exist here.
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Insert appends one ledger entry
func (r *LedgerRepositoryImpl) Insert(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (user_id, bet_id, amount, kind, idempotency_key)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.UserID, entry.BetID, entry.Amount, entry.Kind, entry.IdempotencyKey).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// ListByUser retrieves paginated ledger entries, newest first
func (r *LedgerRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `
        SELECT id, user_id, bet_id, amount, kind, idempotency_key, created_at
        FROM ledger_entries WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		entry := &model.LedgerEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.BetID, &entry.Amount, &entry.Kind, &entry.IdempotencyKey, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SumByUser returns the signed sum of all entries for the account. Used by
// the reconciliation check against the account balance.
func (r *LedgerRepositoryImpl) SumByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (money.Money, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE user_id = $1`

	var sum decimal.Decimal
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return money.Zero, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return money.FromDecimal(sum), nil
}
