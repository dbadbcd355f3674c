package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"bet-engine/internal/metrics"
	"bet-engine/internal/model"
	"bet-engine/internal/repository"
)

type ReconciliationServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
	batchSize   int
}

func NewReconciliationService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	batchSize int,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		dbManager:   dbManager,
		logger:      logger,
		batchSize:   batchSize,
	}
}

// ReconcileAccounts walks every account and checks the invariant
// balance == sum(ledger entries). A mismatch freezes the account: further
// mutation fails rather than compounding a corrupt ledger.
func (s *ReconciliationServiceImpl) ReconcileAccounts(ctx context.Context) error {
	var (
		afterID int64
		checked int
		frozen  int
	)

	for {
		ids, err := s.accountRepo.ListUserIDs(ctx, afterID, s.batchSize)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, userID := range ids {
			// Stop quickly on shutdown
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			froze, err := s.reconcileOne(ctx, userID)
			if err != nil {
				s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to reconcile account")
				continue
			}
			checked++
			if froze {
				frozen++
			}
		}
		afterID = ids[len(ids)-1]
	}

	if frozen > 0 {
		s.logger.Error().Int("checked", checked).Int("frozen", frozen).Msg("reconciliation froze accounts")
	} else {
		s.logger.Debug().Int("checked", checked).Msg("reconciliation completed")
	}
	return nil
}

func (s *ReconciliationServiceImpl) reconcileOne(ctx context.Context, userID int64) (bool, error) {
	var froze bool
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// The row lock holds writers off so balance and ledger sum are read
		// from the same committed state.
		acc, err := s.accountRepo.GetForUpdate(ctx, userID, tx)
		if err != nil {
			return err
		}
		if acc.Frozen {
			return nil
		}

		sum, err := s.ledgerRepo.SumByUser(ctx, userID, tx)
		if err != nil {
			return err
		}

		if !acc.Balance.Equal(sum) {
			metrics.ReconciliationFailures.Inc()
			s.logger.Error().Int64("user_id", userID).
				Str("balance", acc.Balance.String()).
				Str("ledger_sum", sum.String()).
				Err(model.ErrInvariantViolation).
				Msg("account balance diverged from ledger, freezing account")
			if err := s.accountRepo.Freeze(ctx, userID, tx); err != nil {
				return fmt.Errorf("freeze account: %w", err)
			}
			froze = true
		}
		return nil
	})
	return froze, err
}
