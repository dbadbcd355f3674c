package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bet-engine/internal/model"
	"bet-engine/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

// BetRepositoryImpl is the PostgreSQL implementation of BetRepository
type BetRepositoryImpl struct {
	*TransactionManager
}

func NewBetRepository(pool *pgxpool.Pool) repository.BetRepository {
	return &BetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const betColumns = `id, user_id, event_id, outcome, stake, odds, potential_payout, state, placed_at, settled_at`

func scanBet(row pgx.Row) (*model.Bet, error) {
	bet := &model.Bet{}
	err := row.Scan(&bet.ID, &bet.UserID, &bet.EventID, &bet.Outcome, &bet.Stake, &bet.Odds, &bet.PotentialPayout, &bet.State, &bet.PlacedAt, &bet.SettledAt)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// Insert creates a new bet record
func (r *BetRepositoryImpl) Insert(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        INSERT INTO bets (user_id, event_id, outcome, stake, odds, potential_payout, state)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, placed_at`

	err := tx.QueryRow(ctx, query, bet.UserID, bet.EventID, bet.Outcome, bet.Stake, bet.Odds, bet.PotentialPayout, bet.State).
		Scan(&bet.ID, &bet.PlacedAt)

	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// Get retrieves a bet by id
func (r *BetRepositoryImpl) Get(ctx context.Context, betID int64, tx ...pgx.Tx) (*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`

	executor := r.getExecutor(tx...)
	bet, err := scanBet(executor.QueryRow(ctx, query, betID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	return bet, nil
}

// ListByUser retrieves a user's bets narrowed by filter, newest first
func (r *BetRepositoryImpl) ListByUser(ctx context.Context, userID int64, filter model.BetFilter) ([]*model.Bet, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + betColumns + ` FROM bets WHERE user_id = $1`)
	args := []any{userID}

	appendArg := func(clause string, v any) {
		args = append(args, v)
		sb.WriteString(" AND " + clause + " $" + strconv.Itoa(len(args)))
	}
	if filter.State != nil {
		appendArg("state =", *filter.State)
	}
	if filter.Outcome != nil {
		appendArg("outcome =", *filter.Outcome)
	}
	if filter.From != nil {
		appendArg("placed_at >=", *filter.From)
	}
	if filter.To != nil {
		appendArg("placed_at <=", *filter.To)
	}

	args = append(args, filter.Limit, filter.Offset)
	sb.WriteString(fmt.Sprintf(" ORDER BY placed_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

// ListPendingByEvent retrieves all bets still pending on an event
func (r *BetRepositoryImpl) ListPendingByEvent(ctx context.Context, eventID int64) ([]*model.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE event_id = $1 AND state = 'pending' ORDER BY id`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending bets: %w", err)
	}
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

// TransitionIfPending moves the bet to a terminal state iff it is still
// pending. A false return means a concurrent settlement or cancellation won.
func (r *BetRepositoryImpl) TransitionIfPending(ctx context.Context, betID int64, to model.BetState, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE bets
		SET state = $1,
		    settled_at = NOW()
		WHERE id = $2
		  AND state = $3`

	result, err := tx.Exec(ctx, query, to, betID, model.BetPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition bet: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// StatsByUser aggregates the user's betting history
func (r *BetRepositoryImpl) StatsByUser(ctx context.Context, userID int64) (*model.UserStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE state = 'pending'),
               COUNT(*) FILTER (WHERE state = 'won'),
               COUNT(*) FILTER (WHERE state = 'lost'),
               COUNT(*) FILTER (WHERE state = 'cancelled'),
               COALESCE(SUM(stake), 0),
               COALESCE(SUM(potential_payout) FILTER (WHERE state = 'won'), 0)
               + COALESCE(SUM(stake) FILTER (WHERE state = 'cancelled'), 0)
        FROM bets WHERE user_id = $1`

	stats := &model.UserStats{UserID: userID}
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&stats.TotalBets, &stats.Pending, &stats.Won, &stats.Lost, &stats.Cancelled, &stats.TotalStaked, &stats.TotalReturned)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bet stats: %w", err)
	}
	return stats, nil
}
