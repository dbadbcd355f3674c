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
	"bet-engine/internal/money"
	"bet-engine/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetOrCreate fetches the account, lazily creating it on first reference.
func (r *AccountRepositoryImpl) GetOrCreate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `
        INSERT INTO accounts (user_id, balance, version)
        VALUES ($1, 0, 0)
        ON CONFLICT (user_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return r.Get(ctx, userID, tx)
}

// Get fetches the account without locking it.
func (r *AccountRepositoryImpl) Get(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT user_id, balance, version, frozen, created_at, updated_at FROM accounts WHERE user_id = $1`

	acc := &model.Account{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&acc.UserID, &acc.Balance, &acc.Version, &acc.Frozen, &acc.CreatedAt, &acc.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// GetForUpdate fetches the account with a row lock. Reconciliation reads
// balance and ledger sum under this lock so a writer mid-commit cannot make
// the two look inconsistent.
func (r *AccountRepositoryImpl) GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT user_id, balance, version, frozen, created_at, updated_at FROM accounts WHERE user_id = $1 FOR UPDATE`

	acc := &model.Account{}
	err := tx.QueryRow(ctx, query, userID).Scan(&acc.UserID, &acc.Balance, &acc.Version, &acc.Frozen, &acc.CreatedAt, &acc.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account for update: %w", err)
	}
	return acc, nil
}

// UpdateBalance compares and swaps on the account version. A zero row count
// means the version went stale, the account vanished, or it is frozen; the
// follow-up read disambiguates.
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance money.Money, expectedVersion int, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE user_id = $2 AND version = $3 AND NOT frozen`

	commandTag, err := tx.Exec(ctx, query, balance, userID, expectedVersion)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		acc, getErr := r.Get(ctx, userID, tx)
		switch {
		case errors.Is(getErr, model.ErrAccountNotFound):
			return model.ErrAccountNotFound
		case getErr != nil:
			return fmt.Errorf("failed to re-read account after stale update: %w", getErr)
		case acc.Frozen:
			return model.ErrAccountFrozen
		default:
			return model.ErrConcurrentModification
		}
	}
	return nil
}

// Freeze halts all further mutation of the account.
func (r *AccountRepositoryImpl) Freeze(ctx context.Context, userID int64, tx ...pgx.Tx) error {
	query := `UPDATE accounts SET frozen = TRUE, updated_at = NOW() WHERE user_id = $1`

	commandTag, err := r.getExecutor(tx...).Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to freeze account: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// ListUserIDs pages account ids in ascending order.
func (r *AccountRepositoryImpl) ListUserIDs(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	query := `SELECT user_id FROM accounts WHERE user_id > $1 ORDER BY user_id LIMIT $2`

	rows, err := r.pool.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query account ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
