package service

import (
	"context"

	"bet-engine/internal/model"
)

// BetService defines the user-facing bet lifecycle operations
type BetService interface {
	PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.BetResponse, error)
	CancelBet(ctx context.Context, userID, betID int64, idempotencyKey string) (*model.BetResponse, error)
	GetBet(ctx context.Context, userID, betID int64) (*model.Bet, error)
	ListBets(ctx context.Context, userID int64, filter model.BetFilter) ([]*model.Bet, error)
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	GetLedger(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)
	GetStats(ctx context.Context, userID int64) (*model.UserStats, error)
	Quote(ctx context.Context, eventID int64, outcome, stake string) (*model.QuoteResponse, error)
}

// SettlementService applies decided outcomes. Invoked by the settlement
// trigger, never by end users.
type SettlementService interface {
	SettleBet(ctx context.Context, betID int64, result model.Outcome) (*model.BetResponse, error)
	SettleEvent(ctx context.Context, eventID int64, result model.Outcome) (*model.SettleEventResponse, error)
}

// ReconciliationService verifies the ledger invariant and freezes accounts
// that fail it
type ReconciliationService interface {
	ReconcileAccounts(ctx context.Context) error
}
