package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bet-engine/internal/model"
	"bet-engine/internal/money"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository defines operations on the per-user wallet account.
// Balance writes are compare-and-swap on the account version; callers retry
// the whole logical operation on a conflict.
type AccountRepository interface {
	// GetOrCreate fetches the account, lazily creating it with a zero
	// balance on first reference.
	GetOrCreate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// Get fetches the account; fails with ErrAccountNotFound.
	Get(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetForUpdate fetches the account with a row lock (must be in a
	// transaction). Used only by reconciliation, which needs balance and
	// ledger sum read under the same lock the writers take.
	GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// UpdateBalance writes a new balance iff the stored version still equals
	// expectedVersion, bumping the version. Fails with
	// ErrConcurrentModification on a stale version, ErrAccountFrozen on a
	// frozen account, ErrInsufficientFunds on the non-negative-balance check.
	UpdateBalance(ctx context.Context, userID int64, balance money.Money, expectedVersion int, tx pgx.Tx) error

	// Freeze marks the account so that all further mutation fails.
	Freeze(ctx context.Context, userID int64, tx ...pgx.Tx) error

	// ListUserIDs pages account ids in ascending order, for reconciliation.
	ListUserIDs(ctx context.Context, afterID int64, limit int) ([]int64, error)
}

// LedgerRepository is the append-only transaction log.
type LedgerRepository interface {
	// Insert appends one entry. The idempotency key is unique across the
	// log, a hard backstop against double-applied mutations.
	Insert(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// ListByUser retrieves paginated entries, newest first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)

	// SumByUser returns the signed sum of all entries for the account.
	SumByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (money.Money, error)
}

// BetRepository defines operations for bet records.
type BetRepository interface {
	// Insert creates a new bet record
	Insert(ctx context.Context, bet *model.Bet, tx pgx.Tx) error

	// Get retrieves a bet by id
	Get(ctx context.Context, betID int64, tx ...pgx.Tx) (*model.Bet, error)

	// ListByUser retrieves a user's bets narrowed by filter, newest first.
	ListByUser(ctx context.Context, userID int64, filter model.BetFilter) ([]*model.Bet, error)

	// ListPendingByEvent retrieves all bets still pending on an event.
	ListPendingByEvent(ctx context.Context, eventID int64) ([]*model.Bet, error)

	// TransitionIfPending moves the bet to a terminal state iff it is still
	// pending, setting settled_at. Returns false when another operation won.
	TransitionIfPending(ctx context.Context, betID int64, to model.BetState, tx pgx.Tx) (bool, error)

	// StatsByUser aggregates the user's betting history.
	StatsByUser(ctx context.Context, userID int64) (*model.UserStats, error)
}

// IdempotencyRepository deduplicates retried requests by client key.
type IdempotencyRepository interface {
	// Get retrieves a record; fails with pgx.ErrNoRows mapped to nil, nil
	// when the key is unseen.
	Get(ctx context.Context, key string, tx ...pgx.Tx) (*model.IdempotencyRecord, error)

	// Begin claims the key by inserting an in-progress record. Fails with
	// ErrDuplicateKey when another request already holds it.
	Begin(ctx context.Context, rec *model.IdempotencyRecord, tx pgx.Tx) error

	// Resolve marks the record succeeded and binds the resulting bet.
	Resolve(ctx context.Context, key string, betID int64, tx pgx.Tx) error
}
