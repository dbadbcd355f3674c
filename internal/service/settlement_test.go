package service

import (
	"context"
	"testing"

	"bet-engine/internal/config"
	"bet-engine/internal/model"
	"bet-engine/internal/money"
	"bet-engine/internal/producer"
	catalogmocks "bet-engine/mocks/catalog"
	mocks "bet-engine/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSettlementService(
	accountRepo *mocks.AccountRepository,
	ledgerRepo *mocks.LedgerRepository,
	betRepo *mocks.BetRepository,
	cat *catalogmocks.Catalog,
	dbManager *mocks.DBManager,
) SettlementService {
	cfg := config.BetConfig{MinStake: "1.00", MaxStake: "10000.00", MaxRetries: 3}
	return NewSettlementService(accountRepo, ledgerRepo, betRepo, cat, dbManager, producer.NopPublisher{}, cfg, zerolog.Nop())
}

func pendingBet() *model.Bet {
	return &model.Bet{
		ID:              7,
		UserID:          1,
		EventID:         1,
		Outcome:         model.OutcomeHome,
		Stake:           money.MustFromString("20.00"),
		Odds:            decimal.RequireFromString("2.50"),
		PotentialPayout: money.MustFromString("50.00"),
		State:           model.BetPending,
	}
}

func TestSettleBet_Win_CreditsSnapshotPayout(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	won := *pendingBet()
	won.State = model.BetWon

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(pendingBet(), nil).Once()
	mockBetRepo.On("TransitionIfPending", ctx, int64(7), model.BetWon, mock.Anything).Return(true, nil)
	mockAccountRepo.On("Get", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("80.00"),
		Version: 4,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), money.MustFromString("130.00"), 4, mock.Anything).Return(nil)
	mockLedgerRepo.On("Insert", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.Amount.Equal(money.MustFromString("50.00")) &&
			entry.Kind == model.KindPayoutCredit &&
			entry.IdempotencyKey == "settle:7" &&
			entry.BetID != nil && *entry.BetID == 7
	}), mock.Anything).Return(nil)
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(&won, nil).Once()

	svc := newTestSettlementService(mockAccountRepo, mockLedgerRepo, mockBetRepo, catalogmocks.NewCatalog(t), mockDBManager)

	resp, err := svc.SettleBet(ctx, 7, model.OutcomeHome)

	require.NoError(t, err)
	assert.Equal(t, "settled", resp.Status)
	assert.Equal(t, "130.00", resp.Balance)
	assert.Equal(t, model.BetWon, resp.Bet.State)
}

func TestSettleBet_Loss_NoCredit(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	lost := *pendingBet()
	lost.State = model.BetLost

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(pendingBet(), nil).Once()
	mockBetRepo.On("TransitionIfPending", ctx, int64(7), model.BetLost, mock.Anything).Return(true, nil)
	mockAccountRepo.On("Get", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("80.00"),
		Version: 4,
	}, nil)
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(&lost, nil).Once()

	svc := newTestSettlementService(mockAccountRepo, mockLedgerRepo, mockBetRepo, catalogmocks.NewCatalog(t), mockDBManager)

	resp, err := svc.SettleBet(ctx, 7, model.OutcomeAway)

	require.NoError(t, err)
	assert.Equal(t, "settled", resp.Status)
	assert.Equal(t, "80.00", resp.Balance)
	assert.Equal(t, model.BetLost, resp.Bet.State)
	mockAccountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockLedgerRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBet_AlreadySettled_NoOp(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	won := *pendingBet()
	won.State = model.BetWon

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(&won, nil)
	mockAccountRepo.On("Get", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("130.00"),
	}, nil)

	svc := newTestSettlementService(mockAccountRepo, mocks.NewLedgerRepository(t), mockBetRepo, catalogmocks.NewCatalog(t), mockDBManager)

	resp, err := svc.SettleBet(ctx, 7, model.OutcomeHome)

	require.NoError(t, err)
	assert.Equal(t, "already_settled", resp.Status)
	assert.Equal(t, "130.00", resp.Balance)
	mockBetRepo.AssertNotCalled(t, "TransitionIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleBet_LostTransitionRace_ReportsTerminalState(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	cancelled := *pendingBet()
	cancelled.State = model.BetCancelled

	// A concurrent cancellation flips the bet between the read and the
	// transition. The retry re-reads and reports the terminal state.
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(pendingBet(), nil).Once()
	mockBetRepo.On("TransitionIfPending", ctx, int64(7), model.BetWon, mock.Anything).Return(false, nil).Once()
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(&cancelled, nil).Once()
	mockAccountRepo.On("Get", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("100.00"),
	}, nil)

	svc := newTestSettlementService(mockAccountRepo, mocks.NewLedgerRepository(t), mockBetRepo, catalogmocks.NewCatalog(t), mockDBManager)

	resp, err := svc.SettleBet(ctx, 7, model.OutcomeHome)

	require.NoError(t, err)
	assert.Equal(t, "already_settled", resp.Status)
	assert.Equal(t, model.BetCancelled, resp.Bet.State)
}

func TestSettleEvent_SettlesAllPendingBets(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockCatalog := catalogmocks.NewCatalog(t)
	mockDBManager := mocks.NewDBManager(t)

	winner := pendingBet()
	loser := &model.Bet{
		ID:              8,
		UserID:          2,
		EventID:         1,
		Outcome:         model.OutcomeAway,
		Stake:           money.MustFromString("10.00"),
		Odds:            decimal.RequireFromString("2.80"),
		PotentialPayout: money.MustFromString("28.00"),
		State:           model.BetPending,
	}
	wonBet := *winner
	wonBet.State = model.BetWon
	lostBet := *loser
	lostBet.State = model.BetLost

	mockCatalog.On("EventByID", ctx, int64(1)).Return(&model.Event{ID: 1, Status: model.EventFinished}, nil)
	mockBetRepo.On("ListPendingByEvent", ctx, int64(1)).Return([]*model.Bet{winner, loser}, nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(winner, nil).Once()
	mockBetRepo.On("TransitionIfPending", ctx, int64(7), model.BetWon, mock.Anything).Return(true, nil)
	mockAccountRepo.On("Get", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("80.00"),
		Version: 2,
	}, nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(1), money.MustFromString("130.00"), 2, mock.Anything).Return(nil)
	mockLedgerRepo.On("Insert", ctx, mock.MatchedBy(func(entry *model.LedgerEntry) bool {
		return entry.IdempotencyKey == "settle:7"
	}), mock.Anything).Return(nil)
	mockBetRepo.On("Get", ctx, int64(7), mock.Anything).Return(&wonBet, nil).Once()

	mockBetRepo.On("Get", ctx, int64(8), mock.Anything).Return(loser, nil).Once()
	mockBetRepo.On("TransitionIfPending", ctx, int64(8), model.BetLost, mock.Anything).Return(true, nil)
	mockAccountRepo.On("Get", ctx, int64(2), mock.Anything).Return(&model.Account{
		UserID:  2,
		Balance: money.MustFromString("90.00"),
		Version: 2,
	}, nil)
	mockBetRepo.On("Get", ctx, int64(8), mock.Anything).Return(&lostBet, nil).Once()

	svc := newTestSettlementService(mockAccountRepo, mockLedgerRepo, mockBetRepo, mockCatalog, mockDBManager)

	resp, err := svc.SettleEvent(ctx, 1, model.OutcomeHome)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Settled)
	assert.Equal(t, 1, resp.Won)
	assert.Equal(t, 1, resp.Lost)
}

func TestSettleEvent_EventNotFound(t *testing.T) {
	ctx := context.Background()

	mockCatalog := catalogmocks.NewCatalog(t)
	mockCatalog.On("EventByID", ctx, int64(42)).Return(nil, model.ErrEventNotFound)

	svc := newTestSettlementService(
		mocks.NewAccountRepository(t),
		mocks.NewLedgerRepository(t),
		mocks.NewBetRepository(t),
		mockCatalog,
		mocks.NewDBManager(t),
	)

	resp, err := svc.SettleEvent(ctx, 42, model.OutcomeHome)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrEventNotFound)
}

func TestReconcileAccounts_FreezesDivergedAccount(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockAccountRepo.On("ListUserIDs", ctx, int64(0), 100).Return([]int64{1, 2}, nil).Once()
	mockAccountRepo.On("ListUserIDs", ctx, int64(2), 100).Return(nil, nil).Once()
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })

	// Account 1 is consistent, account 2 has drifted from its ledger.
	mockAccountRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("80.00"),
	}, nil)
	mockLedgerRepo.On("SumByUser", ctx, int64(1), mock.Anything).Return(money.MustFromString("80.00"), nil)

	mockAccountRepo.On("GetForUpdate", ctx, int64(2), mock.Anything).Return(&model.Account{
		UserID:  2,
		Balance: money.MustFromString("100.00"),
	}, nil)
	mockLedgerRepo.On("SumByUser", ctx, int64(2), mock.Anything).Return(money.MustFromString("90.00"), nil)
	mockAccountRepo.On("Freeze", ctx, int64(2), mock.Anything).Return(nil)

	svc := NewReconciliationService(mockAccountRepo, mockLedgerRepo, mockDBManager, 100, zerolog.Nop())

	err := svc.ReconcileAccounts(ctx)

	require.NoError(t, err)
	mockAccountRepo.AssertNotCalled(t, "Freeze", ctx, int64(1), mock.Anything)
}

func TestReconcileAccounts_SkipsFrozenAccount(t *testing.T) {
	ctx := context.Background()

	mockAccountRepo := mocks.NewAccountRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockAccountRepo.On("ListUserIDs", ctx, int64(0), 100).Return([]int64{1}, nil).Once()
	mockAccountRepo.On("ListUserIDs", ctx, int64(1), 100).Return(nil, nil).Once()
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockAccountRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.Account{
		UserID:  1,
		Balance: money.MustFromString("100.00"),
		Frozen:  true,
	}, nil)

	svc := NewReconciliationService(mockAccountRepo, mockLedgerRepo, mockDBManager, 100, zerolog.Nop())

	err := svc.ReconcileAccounts(ctx)

	require.NoError(t, err)
	mockLedgerRepo.AssertNotCalled(t, "SumByUser", mock.Anything, mock.Anything, mock.Anything)
}
