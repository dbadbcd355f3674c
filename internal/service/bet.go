package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"bet-engine/internal/catalog"
	"bet-engine/internal/config"
	"bet-engine/internal/metrics"
	"bet-engine/internal/model"
	"bet-engine/internal/money"
	"bet-engine/internal/producer"
	"bet-engine/internal/repository"
)

// rollback and re-read the winner's record outside the tx
var errKeyRace = errors.New("idempotency key insert race")

// awaitWinner polling bounds. The winner resolves its key inside the same
// commit that creates the bet, so the wait is normally one round trip.
const (
	winnerPollInterval = 50 * time.Millisecond
	winnerPollAttempts = 20
)

type BetServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	betRepo     repository.BetRepository
	idemRepo    repository.IdempotencyRepository
	catalog     catalog.Catalog
	dbManager   repository.DBManager
	publisher   producer.Publisher
	logger      zerolog.Logger

	minStake   money.Money
	maxStake   money.Money
	maxRetries int
}

func NewBetService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	betRepo repository.BetRepository,
	idemRepo repository.IdempotencyRepository,
	cat catalog.Catalog,
	dbManager repository.DBManager,
	publisher producer.Publisher,
	cfg config.BetConfig,
	logger zerolog.Logger,
) BetService {
	return &BetServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		betRepo:     betRepo,
		idemRepo:    idemRepo,
		catalog:     cat,
		dbManager:   dbManager,
		publisher:   publisher,
		logger:      logger,
		minStake:    money.MustFromString(cfg.MinStake),
		maxStake:    money.MustFromString(cfg.MaxStake),
		maxRetries:  cfg.MaxRetries,
	}
}

// withRetry re-runs the whole logical operation on a version conflict, up to
// the configured budget. fn must re-validate on each attempt; account state
// may have changed under it.
func (s *BetServiceImpl) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err = fn()
		if !errors.Is(err, model.ErrConcurrentModification) {
			return err
		}
		metrics.VersionConflicts.Inc()
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return err
}

func (s *BetServiceImpl) PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.BetResponse, error) {
	// Validate inputs early, before the transaction
	stake, err := money.FromString(req.Stake)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidStake, err.Error())
	}
	if !stake.IsPositive() {
		return nil, fmt.Errorf("%w: stake must be positive", model.ErrInvalidStake)
	}

	outcome, err := model.ParseOutcome(req.Outcome)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidOutcome, req.Outcome)
	}

	if stake.LessThan(s.minStake) {
		metrics.BetsRejected.WithLabelValues("below_minimum").Inc()
		return nil, fmt.Errorf("%w: minimum is %s", model.ErrStakeBelowMinimum, s.minStake)
	}
	if stake.GreaterThan(s.maxStake) {
		metrics.BetsRejected.WithLabelValues("above_maximum").Inc()
		return nil, fmt.Errorf("%w: maximum is %s", model.ErrStakeAboveMaximum, s.maxStake)
	}

	// Resolved key means a retry of a finished request: replay, do not
	// re-execute.
	if rec, err := s.idemRepo.Get(ctx, req.IdempotencyKey); err != nil {
		return nil, fmt.Errorf("get idempotency record: %w", err)
	} else if rec != nil {
		return s.replay(ctx, userID, rec)
	}

	var result *model.BetResponse
	err = s.withRetry(ctx, func() error {
		// Odds are re-read per attempt: a conflict retry must see current
		// market state, not the first attempt's.
		event, err := s.catalog.EventByID(ctx, req.EventID)
		if err != nil {
			return err
		}
		if !event.IsOpenForBetting(time.Now()) {
			metrics.BetsRejected.WithLabelValues("market_closed").Inc()
			return model.ErrMarketClosed
		}
		odds, err := event.OddsFor(outcome)
		if err != nil {
			return err
		}
		payout := stake.MulOdds(odds)

		return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			rec := &model.IdempotencyRecord{
				Key:       req.IdempotencyKey,
				UserID:    userID,
				Operation: model.OpPlaceBet,
				Status:    model.IdemInProgress,
			}
			if err := s.idemRepo.Begin(ctx, rec, tx); err != nil {
				if errors.Is(err, model.ErrDuplicateKey) {
					// Lost the race for the key, rollback and observe the winner
					return errKeyRace
				}
				return fmt.Errorf("claim idempotency key: %w", err)
			}

			acc, err := s.accountRepo.GetOrCreate(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get or create account: %w", err)
			}
			if acc.Frozen {
				return model.ErrAccountFrozen
			}

			newBalance := acc.Balance.Sub(stake)
			if newBalance.IsNegative() {
				metrics.BetsRejected.WithLabelValues("insufficient_funds").Inc()
				return model.ErrInsufficientFunds
			}

			if err := s.accountRepo.UpdateBalance(ctx, userID, newBalance, acc.Version, tx); err != nil {
				return fmt.Errorf("debit stake: %w", err)
			}

			bet := &model.Bet{
				UserID:          userID,
				EventID:         req.EventID,
				Outcome:         outcome,
				Stake:           stake,
				Odds:            odds,
				PotentialPayout: payout,
				State:           model.BetPending,
			}
			if err := s.betRepo.Insert(ctx, bet, tx); err != nil {
				return fmt.Errorf("insert bet: %w", err)
			}

			entry := &model.LedgerEntry{
				UserID:         userID,
				BetID:          &bet.ID,
				Amount:         stake.Neg(),
				Kind:           model.KindStakeDebit,
				IdempotencyKey: req.IdempotencyKey,
			}
			if err := s.ledgerRepo.Insert(ctx, entry, tx); err != nil {
				return fmt.Errorf("append stake debit: %w", err)
			}

			if err := s.idemRepo.Resolve(ctx, req.IdempotencyKey, bet.ID, tx); err != nil {
				return fmt.Errorf("resolve idempotency key: %w", err)
			}

			result = &model.BetResponse{
				Status:  "placed",
				Balance: newBalance.String(),
				Bet:     bet,
			}
			return nil
		})
	})

	if errors.Is(err, errKeyRace) {
		return s.awaitWinner(ctx, userID, req.IdempotencyKey)
	}
	if err != nil {
		return nil, err
	}

	metrics.BetsPlaced.WithLabelValues(outcome.String()).Inc()
	metrics.StakeVolume.Add(float64(stake.Decimal().Shift(2).IntPart()))
	s.publisher.PublishBetEvent(ctx, producer.BetEvent{
		Type:    producer.TypeBetPlaced,
		BetID:   result.Bet.ID,
		UserID:  userID,
		EventID: req.EventID,
		Outcome: outcome.String(),
		Stake:   stake.String(),
		Odds:    result.Bet.Odds.String(),
		State:   model.BetPending.String(),
	})
	s.logger.Info().Int64("user_id", userID).Int64("bet_id", result.Bet.ID).
		Str("outcome", outcome.String()).
		Str("stake", stake.String()).
		Str("odds", result.Bet.Odds.String()).
		Str("new_balance", result.Balance).
		Msg("bet placed")

	return result, nil
}

func (s *BetServiceImpl) CancelBet(ctx context.Context, userID, betID int64, idempotencyKey string) (*model.BetResponse, error) {
	if rec, err := s.idemRepo.Get(ctx, idempotencyKey); err != nil {
		return nil, fmt.Errorf("get idempotency record: %w", err)
	} else if rec != nil {
		return s.replay(ctx, userID, rec)
	}

	var result *model.BetResponse
	err := s.withRetry(ctx, func() error {
		return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			bet, err := s.betRepo.Get(ctx, betID, tx)
			if err != nil {
				return err
			}
			if bet.UserID != userID {
				return model.ErrBetNotFound
			}
			if bet.State.Terminal() {
				return fmt.Errorf("%w: bet is %s", model.ErrBetAlreadySettled, bet.State)
			}

			// Cancellation window follows the betting window.
			event, err := s.catalog.EventByID(ctx, bet.EventID)
			if err != nil {
				return err
			}
			if !event.IsOpenForBetting(time.Now()) {
				return model.ErrCancellationWindowClosed
			}

			rec := &model.IdempotencyRecord{
				Key:       idempotencyKey,
				UserID:    userID,
				Operation: model.OpCancelBet,
				Status:    model.IdemInProgress,
				BetID:     &bet.ID,
			}
			if err := s.idemRepo.Begin(ctx, rec, tx); err != nil {
				if errors.Is(err, model.ErrDuplicateKey) {
					return errKeyRace
				}
				return fmt.Errorf("claim idempotency key: %w", err)
			}

			// The state precondition, not a lock, arbitrates against a
			// concurrent settlement of the same bet.
			flipped, err := s.betRepo.TransitionIfPending(ctx, bet.ID, model.BetCancelled, tx)
			if err != nil {
				return fmt.Errorf("transition bet: %w", err)
			}
			if !flipped {
				return model.ErrBetAlreadySettled
			}

			acc, err := s.accountRepo.Get(ctx, userID, tx)
			if err != nil {
				return err
			}
			if acc.Frozen {
				return model.ErrAccountFrozen
			}
			newBalance := acc.Balance.Add(bet.Stake)
			if err := s.accountRepo.UpdateBalance(ctx, userID, newBalance, acc.Version, tx); err != nil {
				return fmt.Errorf("refund stake: %w", err)
			}

			entry := &model.LedgerEntry{
				UserID:         userID,
				BetID:          &bet.ID,
				Amount:         bet.Stake,
				Kind:           model.KindRefundCredit,
				IdempotencyKey: idempotencyKey,
			}
			if err := s.ledgerRepo.Insert(ctx, entry, tx); err != nil {
				return fmt.Errorf("append refund credit: %w", err)
			}

			if err := s.idemRepo.Resolve(ctx, idempotencyKey, bet.ID, tx); err != nil {
				return fmt.Errorf("resolve idempotency key: %w", err)
			}

			cancelled, err := s.betRepo.Get(ctx, bet.ID, tx)
			if err != nil {
				return err
			}
			result = &model.BetResponse{
				Status:  "cancelled",
				Balance: newBalance.String(),
				Bet:     cancelled,
			}
			return nil
		})
	})

	if errors.Is(err, errKeyRace) {
		return s.awaitWinner(ctx, userID, idempotencyKey)
	}
	if err != nil {
		return nil, err
	}

	metrics.BetsSettled.WithLabelValues(model.BetCancelled.String()).Inc()
	s.publisher.PublishBetEvent(ctx, producer.BetEvent{
		Type:    producer.TypeBetCancelled,
		BetID:   result.Bet.ID,
		UserID:  userID,
		EventID: result.Bet.EventID,
		Outcome: result.Bet.Outcome.String(),
		Stake:   result.Bet.Stake.String(),
		Odds:    result.Bet.Odds.String(),
		State:   model.BetCancelled.String(),
	})
	s.logger.Info().Int64("user_id", userID).Int64("bet_id", betID).
		Str("refund", result.Bet.Stake.String()).
		Str("new_balance", result.Balance).
		Msg("bet cancelled")

	return result, nil
}

// replay returns the stored result for a key seen before, without
// re-executing anything.
func (s *BetServiceImpl) replay(ctx context.Context, userID int64, rec *model.IdempotencyRecord) (*model.BetResponse, error) {
	if rec.UserID != userID {
		return nil, fmt.Errorf("%w: key %s", model.ErrKeyOwnerMismatch, rec.Key)
	}
	if rec.Status != model.IdemSucceeded || rec.BetID == nil {
		return s.awaitWinner(ctx, userID, rec.Key)
	}

	bet, err := s.betRepo.Get(ctx, *rec.BetID)
	if err != nil {
		return nil, fmt.Errorf("get bet for replay: %w", err)
	}
	acc, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance for replay: %w", err)
	}

	s.logger.Info().Str("key", rec.Key).Int64("user_id", userID).Int64("bet_id", bet.ID).Msg("request already processed")
	return &model.BetResponse{
		Status:  "already_processed",
		Balance: acc.Balance.String(),
		Bet:     bet,
	}, nil
}

// awaitWinner polls for the resolution of a key another request holds. The
// loser of a same-key race lands here and returns the winner's result.
func (s *BetServiceImpl) awaitWinner(ctx context.Context, userID int64, key string) (*model.BetResponse, error) {
	for attempt := 0; attempt < winnerPollAttempts; attempt++ {
		rec, err := s.idemRepo.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("poll idempotency record: %w", err)
		}
		if rec != nil && rec.Status == model.IdemSucceeded && rec.BetID != nil {
			return s.replay(ctx, userID, rec)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(winnerPollInterval):
		}
	}
	return nil, model.ErrRequestInFlight
}

func (s *BetServiceImpl) GetBet(ctx context.Context, userID, betID int64) (*model.Bet, error) {
	bet, err := s.betRepo.Get(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet.UserID != userID {
		return nil, model.ErrBetNotFound
	}
	return bet, nil
}

func (s *BetServiceImpl) ListBets(ctx context.Context, userID int64, filter model.BetFilter) ([]*model.Bet, error) {
	bets, err := s.betRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	return bets, nil
}

func (s *BetServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	acc, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: acc.Balance.String(),
	}, nil
}

func (s *BetServiceImpl) GetLedger(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *BetServiceImpl) GetStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	stats, err := s.betRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	return stats, nil
}

// Quote computes a payout preview at current odds without touching the
// ledger. The figure is informational; the odds that bind are the ones
// snapshotted when the bet is actually placed.
func (s *BetServiceImpl) Quote(ctx context.Context, eventID int64, outcomeStr, stakeStr string) (*model.QuoteResponse, error) {
	stake, err := money.FromString(stakeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidStake, err.Error())
	}
	if !stake.IsPositive() {
		return nil, fmt.Errorf("%w: stake must be positive", model.ErrInvalidStake)
	}
	outcome, err := model.ParseOutcome(outcomeStr)
	if err != nil {
		return nil, err
	}

	event, err := s.catalog.EventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	odds, err := event.OddsFor(outcome)
	if err != nil {
		return nil, err
	}

	payout := stake.MulOdds(odds)
	return &model.QuoteResponse{
		EventID:         eventID,
		Outcome:         outcome.String(),
		Stake:           stake.String(),
		Odds:            odds.String(),
		PotentialPayout: payout.String(),
		Profit:          payout.Sub(stake).String(),
	}, nil
}
