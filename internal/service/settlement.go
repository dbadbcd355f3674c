package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"bet-engine/internal/catalog"
	"bet-engine/internal/config"
	"bet-engine/internal/metrics"
	"bet-engine/internal/model"
	"bet-engine/internal/producer"
	"bet-engine/internal/repository"
)

type SettlementServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	betRepo     repository.BetRepository
	catalog     catalog.Catalog
	dbManager   repository.DBManager
	publisher   producer.Publisher
	logger      zerolog.Logger
	maxRetries  int
}

func NewSettlementService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	betRepo repository.BetRepository,
	cat catalog.Catalog,
	dbManager repository.DBManager,
	publisher producer.Publisher,
	cfg config.BetConfig,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		betRepo:     betRepo,
		catalog:     cat,
		dbManager:   dbManager,
		publisher:   publisher,
		logger:      logger,
		maxRetries:  cfg.MaxRetries,
	}
}

// settlementKey is the deterministic ledger key for a payout. Its uniqueness
// constraint is the hard backstop against crediting a win twice.
func settlementKey(betID int64) string {
	return fmt.Sprintf("settle:%d", betID)
}

// SettleBet resolves one bet against the actual outcome. Settling an
// already-terminal bet is a no-op that reports the existing state.
func (s *SettlementServiceImpl) SettleBet(ctx context.Context, betID int64, result model.Outcome) (*model.BetResponse, error) {
	var resp *model.BetResponse

	var err error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err = s.settleOnce(ctx, betID, result, &resp)
		if !errors.Is(err, model.ErrConcurrentModification) {
			break
		}
		metrics.VersionConflicts.Inc()
	}
	if err != nil {
		return nil, err
	}

	if resp.Status != "already_settled" {
		metrics.BetsSettled.WithLabelValues(resp.Bet.State.String()).Inc()
		s.publisher.PublishBetEvent(ctx, producer.BetEvent{
			Type:    producer.TypeBetSettled,
			BetID:   resp.Bet.ID,
			UserID:  resp.Bet.UserID,
			EventID: resp.Bet.EventID,
			Outcome: resp.Bet.Outcome.String(),
			Stake:   resp.Bet.Stake.String(),
			Odds:    resp.Bet.Odds.String(),
			State:   resp.Bet.State.String(),
		})
		s.logger.Info().Int64("bet_id", betID).
			Str("actual_outcome", result.String()).
			Str("state", resp.Bet.State.String()).
			Str("balance", resp.Balance).
			Msg("bet settled")
	}
	return resp, nil
}

func (s *SettlementServiceImpl) settleOnce(ctx context.Context, betID int64, result model.Outcome, out **model.BetResponse) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		bet, err := s.betRepo.Get(ctx, betID, tx)
		if err != nil {
			return err
		}

		if bet.State.Terminal() {
			acc, err := s.accountRepo.Get(ctx, bet.UserID, tx)
			if err != nil {
				return err
			}
			*out = &model.BetResponse{
				Status:  "already_settled",
				Balance: acc.Balance.String(),
				Bet:     bet,
			}
			return nil
		}

		won := bet.Outcome == result
		to := model.BetLost
		if won {
			to = model.BetWon
		}

		flipped, err := s.betRepo.TransitionIfPending(ctx, bet.ID, to, tx)
		if err != nil {
			return fmt.Errorf("transition bet: %w", err)
		}
		if !flipped {
			// A concurrent settlement or cancellation got there first;
			// retry re-reads and reports the terminal state.
			return model.ErrConcurrentModification
		}

		acc, err := s.accountRepo.Get(ctx, bet.UserID, tx)
		if err != nil {
			return err
		}

		newBalance := acc.Balance
		if won {
			if acc.Frozen {
				return model.ErrAccountFrozen
			}
			// The payout is the snapshot computed at placement, never
			// re-derived from live odds.
			newBalance = acc.Balance.Add(bet.PotentialPayout)
			if err := s.accountRepo.UpdateBalance(ctx, bet.UserID, newBalance, acc.Version, tx); err != nil {
				return fmt.Errorf("credit payout: %w", err)
			}

			entry := &model.LedgerEntry{
				UserID:         bet.UserID,
				BetID:          &bet.ID,
				Amount:         bet.PotentialPayout,
				Kind:           model.KindPayoutCredit,
				IdempotencyKey: settlementKey(bet.ID),
			}
			if err := s.ledgerRepo.Insert(ctx, entry, tx); err != nil {
				return fmt.Errorf("append payout credit: %w", err)
			}
		}

		settled, err := s.betRepo.Get(ctx, bet.ID, tx)
		if err != nil {
			return err
		}
		*out = &model.BetResponse{
			Status:  "settled",
			Balance: newBalance.String(),
			Bet:     settled,
		}
		return nil
	})
}

// SettleEvent applies a final result to every pending bet on an event, each
// bet in its own atomic unit so one failure cannot wedge the rest.
func (s *SettlementServiceImpl) SettleEvent(ctx context.Context, eventID int64, result model.Outcome) (*model.SettleEventResponse, error) {
	if _, err := s.catalog.EventByID(ctx, eventID); err != nil {
		return nil, err
	}

	bets, err := s.betRepo.ListPendingByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list pending bets: %w", err)
	}

	summary := &model.SettleEventResponse{EventID: eventID}
	for _, bet := range bets {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		resp, err := s.SettleBet(ctx, bet.ID, result)
		if err != nil {
			s.logger.Error().Err(err).Int64("bet_id", bet.ID).Int64("event_id", eventID).Msg("failed to settle bet")
			continue
		}
		if resp.Status == "already_settled" {
			continue
		}
		summary.Settled++
		switch resp.Bet.State {
		case model.BetWon:
			summary.Won++
		case model.BetLost:
			summary.Lost++
		}
	}

	s.logger.Info().Int64("event_id", eventID).
		Str("result", result.String()).
		Int("pending", len(bets)).
		Int("settled", summary.Settled).
		Int("won", summary.Won).
		Int("lost", summary.Lost).
		Msg("event settlement completed")

	return summary, nil
}
