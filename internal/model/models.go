package model

import (
	"time"

	"github.com/shopspring/decimal"

	"bet-engine/internal/money"
)

// Account is the per-user wallet. Version is the optimistic-concurrency
// token: every balance mutation compares and swaps on it.
type Account struct {
	UserID    int64       `json:"user_id"`
	Balance   money.Money `json:"balance"`
	Version   int         `json:"version"`
	Frozen    bool        `json:"frozen"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// LedgerEntry is one append-only balance mutation. Amount is signed:
// negative for debits, positive for credits. The account balance must equal
// the sum of its entries at all times.
type LedgerEntry struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	BetID          *int64      `json:"bet_id,omitempty"`
	Amount         money.Money `json:"amount"`
	Kind           LedgerKind  `json:"kind"`
	IdempotencyKey string      `json:"idempotency_key"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Bet is a staked position. Odds and PotentialPayout are snapshotted at
// placement and never change, even if the event's odds move.
type Bet struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	EventID         int64           `json:"event_id"`
	Outcome         Outcome         `json:"outcome"`
	Stake           money.Money     `json:"stake"`
	Odds            decimal.Decimal `json:"odds"`
	PotentialPayout money.Money     `json:"potential_payout"`
	State           BetState        `json:"state"`
	PlacedAt        time.Time       `json:"placed_at"`
	SettledAt       *time.Time      `json:"settled_at,omitempty"`
}

// Event is a row of the external event/odds catalog, read-only to the
// engine.
type Event struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	HomeTeam string          `json:"home_team"`
	AwayTeam string          `json:"away_team"`
	HomeOdds decimal.Decimal `json:"home_odds"`
	DrawOdds decimal.Decimal `json:"draw_odds"`
	AwayOdds decimal.Decimal `json:"away_odds"`
	StartsAt time.Time       `json:"starts_at"`
	Status   EventStatus     `json:"status"`
	Result   *Outcome        `json:"result,omitempty"`
}

// IsOpenForBetting reports whether bets may still be placed or cancelled.
func (e *Event) IsOpenForBetting(now time.Time) bool {
	return e.Status == EventUpcoming && e.StartsAt.After(now)
}

// OddsFor returns the current odds for an outcome.
func (e *Event) OddsFor(outcome Outcome) (decimal.Decimal, error) {
	switch outcome {
	case OutcomeHome:
		return e.HomeOdds, nil
	case OutcomeDraw:
		return e.DrawOdds, nil
	case OutcomeAway:
		return e.AwayOdds, nil
	default:
		return decimal.Zero, ErrInvalidOutcome
	}
}

// IdempotencyRecord deduplicates retried placement/cancellation requests.
// The key's uniqueness constraint decides the winner of a concurrent race.
type IdempotencyRecord struct {
	Key       string            `json:"key"`
	UserID    int64             `json:"user_id"`
	Operation Operation         `json:"operation"`
	Status    IdempotencyStatus `json:"status"`
	BetID     *int64            `json:"bet_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// BetFilter narrows a bet history listing.
type BetFilter struct {
	State   *BetState
	Outcome *Outcome
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// UserStats aggregates a user's betting history.
type UserStats struct {
	UserID        int64       `json:"user_id"`
	TotalBets     int         `json:"total_bets"`
	Pending       int         `json:"pending"`
	Won           int         `json:"won"`
	Lost          int         `json:"lost"`
	Cancelled     int         `json:"cancelled"`
	TotalStaked   money.Money `json:"total_staked"`
	TotalReturned money.Money `json:"total_returned"`
}

type PlaceBetRequest struct {
	EventID        int64  `json:"event_id" binding:"required" example:"1"`
	Outcome        string `json:"outcome" binding:"required,oneof=home draw away" example:"home" enums:"home,draw,away"`
	Stake          string `json:"stake" binding:"required" example:"20.00"`
	IdempotencyKey string `json:"idempotency_key" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type CancelBetRequest struct {
	IdempotencyKey string `json:"idempotency_key" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440001"`
}

type SettleBetRequest struct {
	Result string `json:"result" binding:"required,oneof=home draw away" example:"home" enums:"home,draw,away"`
}

type BetResponse struct {
	Status  string `json:"status" example:"placed"`
	Balance string `json:"balance" example:"80.00"`
	Bet     *Bet   `json:"bet"`
}

type BetListResponse struct {
	Bets   []*Bet `json:"bets"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type LedgerListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type QuoteResponse struct {
	EventID         int64  `json:"event_id" example:"1"`
	Outcome         string `json:"outcome" example:"home"`
	Stake           string `json:"stake" example:"20.00"`
	Odds            string `json:"odds" example:"2.50"`
	PotentialPayout string `json:"potential_payout" example:"50.00"`
	Profit          string `json:"profit" example:"30.00"`
}

type SettleEventResponse struct {
	EventID int64 `json:"event_id"`
	Settled int   `json:"settled"`
	Won     int   `json:"won"`
	Lost    int   `json:"lost"`
}

type BalanceResponse struct {
	UserID  int64  `json:"user_id" example:"1"`
	Balance string `json:"balance" example:"100.00"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
