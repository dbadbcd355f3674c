package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"bet-engine/internal/catalog"
	"bet-engine/internal/config"
	"bet-engine/internal/database"
	"bet-engine/internal/handler"
	"bet-engine/internal/model"
	"bet-engine/internal/producer"
	"bet-engine/internal/repository/postgres"
	"bet-engine/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

const (
	testUserID  = 7001
	testEventID = 9001
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	os.Exit(m.Run())
}

func setupE2E(t *testing.T) *handler.Handler {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	// Children before parents, the log and keys reference bets
	_, err := testPool.Exec(ctx, "DELETE FROM idempotency_keys WHERE user_id = $1", testUserID)
	require.NoError(t, err)
	_, err = testPool.Exec(ctx, "DELETE FROM ledger_entries WHERE user_id = $1", testUserID)
	require.NoError(t, err)
	_, err = testPool.Exec(ctx, "DELETE FROM bets WHERE user_id = $1", testUserID)
	require.NoError(t, err)

	// Seed test account, reset balance and version if already exists
	_, err = testPool.Exec(ctx, `
		INSERT INTO accounts (user_id, balance, version, frozen)
		VALUES ($1, 100.00, 0, FALSE)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = EXCLUDED.balance,
			version = EXCLUDED.version,
			frozen = EXCLUDED.frozen,
			updated_at = NOW()
	`, testUserID)
	require.NoError(t, err)

	// Seed an open event at fixed odds
	_, err = testPool.Exec(ctx, `
		INSERT INTO events (id, name, home_team, away_team, home_odds, draw_odds, away_odds, starts_at, status)
		VALUES ($1, 'Arsenal vs Chelsea', 'Arsenal', 'Chelsea', 2.50, 3.10, 2.80, $2, 'upcoming')
		ON CONFLICT (id) DO UPDATE
		SET home_odds = EXCLUDED.home_odds,
			starts_at = EXCLUDED.starts_at,
			status = EXCLUDED.status
	`, testEventID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	logger := zerolog.Nop()
	accountRepo := postgres.NewAccountRepository(testPool)
	ledgerRepo := postgres.NewLedgerRepository(testPool)
	betRepo := postgres.NewBetRepository(testPool)
	idemRepo := postgres.NewIdempotencyRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)
	cat := catalog.NewPostgresCatalog(testPool)

	cfg := config.BetConfig{MinStake: "1.00", MaxStake: "10000.00", MaxRetries: 3}
	betSvc := service.NewBetService(accountRepo, ledgerRepo, betRepo, idemRepo, cat, dbManager, producer.NopPublisher{}, cfg, logger)
	settlementSvc := service.NewSettlementService(accountRepo, ledgerRepo, betRepo, cat, dbManager, producer.NopPublisher{}, cfg, logger)

	return handler.NewHandler(betSvc, settlementSvc, logger)
}

// assertLedgerConsistent checks balance == seed + sum(ledger entries). The
// seeded 100.00 stands in for deposits that predate the log.
func assertLedgerConsistent(t *testing.T) {
	var consistent bool
	err := testPool.QueryRow(context.Background(), `
		SELECT (SELECT balance FROM accounts WHERE user_id = $1) =
		       100.00 + COALESCE((SELECT SUM(amount) FROM ledger_entries WHERE user_id = $1), 0)
	`, testUserID).Scan(&consistent)
	require.NoError(t, err)
	assert.True(t, consistent, "account balance must equal seed plus ledger sum")
}

func placeBetRequest(key string) []byte {
	body, _ := json.Marshal(model.PlaceBetRequest{
		EventID:        testEventID,
		Outcome:        "home",
		Stake:          "20.00",
		IdempotencyKey: key,
	})
	return body
}

// Test_ConcurrentPlacements_SameIdempotencyKey verifies:
// - Duplicated concurrent placements with the same idempotency key
// - Exactly one placement succeeds, producing one bet and one debit
// - All other requests observe the winner's result as already_processed
// - Final balance is debited exactly once
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentPlacements_SameIdempotencyKey(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	const numRequests = 25

	// Use the same idempotency key for all requests
	key := uuid.New().String()
	reqBody := placeBetRequest(key)

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})

	type result struct {
		statusCode int
		response   model.BetResponse
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			<-barrier

			req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/bets?user_id=%d", testUserID), bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			var resp model.BetResponse
			json.Unmarshal(w.Body.Bytes(), &resp)

			results <- result{statusCode: w.Code, response: resp}
		}()
	}

	// All goroutines start simultaneously
	close(barrier)

	wg.Wait()
	close(results)

	var (
		placedCount           int
		alreadyProcessedCount int
		errorCount            int
	)

	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")

		switch {
		case res.statusCode == http.StatusCreated && res.response.Status == "placed":
			placedCount++
		case res.statusCode == http.StatusOK && res.response.Status == "already_processed":
			alreadyProcessedCount++
		default:
			errorCount++
			t.Logf("Unexpected response: status=%d, body=%+v", res.statusCode, res.response)
		}
	}

	assert.Equal(t, 1, placedCount, "Exactly one request should place the bet")
	assert.Equal(t, numRequests-1, alreadyProcessedCount, "All other requests should replay the winner's result")
	assert.Equal(t, 0, errorCount, "No unexpected errors should occur")

	var dbBalance string
	err := testPool.QueryRow(context.Background(), "SELECT balance FROM accounts WHERE user_id = $1", testUserID).Scan(&dbBalance)
	require.NoError(t, err)
	assert.Equal(t, "80.00", dbBalance, "Stake should be debited exactly once")

	var betCount int
	err = testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM bets WHERE user_id = $1", testUserID).Scan(&betCount)
	require.NoError(t, err)
	assert.Equal(t, 1, betCount, "Exactly one bet should exist")

	var debitCount int
	err = testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1 AND kind = 'stake_debit'", testUserID).Scan(&debitCount)
	require.NoError(t, err)
	assert.Equal(t, 1, debitCount, "Exactly one stake debit should be logged")

	assertLedgerConsistent(t)
}

// Test_ConcurrentPlacements_DistinctKeys verifies that placements with
// distinct keys under contention all land, each with its own debit, with no
// lost updates on the shared account.
func Test_ConcurrentPlacements_DistinctKeys(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	const numRequests = 4 // 4 * 20.00 out of a 100.00 balance

	barrier := make(chan struct{})
	statusCodes := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			<-barrier

			reqBody := placeBetRequest(uuid.New().String())
			req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/bets?user_id=%d", testUserID), bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			statusCodes <- w.Code
		}()
	}

	close(barrier)
	wg.Wait()
	close(statusCodes)

	// A request may exhaust its retry budget under contention and report a
	// conflict; what must never happen is a lost update or a 500.
	created := 0
	for code := range statusCodes {
		assert.NotEqual(t, http.StatusInternalServerError, code, "No 500 errors")
		if code == http.StatusCreated {
			created++
		}
	}
	assert.GreaterOrEqual(t, created, 1, "At least one placement should land")

	var dbBalance string
	err := testPool.QueryRow(context.Background(), "SELECT balance FROM accounts WHERE user_id = $1", testUserID).Scan(&dbBalance)
	require.NoError(t, err)
	expected := fmt.Sprintf("%d.00", 100-20*created)
	assert.Equal(t, expected, dbBalance, "Every accepted stake debited exactly once, none lost")

	assertLedgerConsistent(t)
}

// Test_BetLifecycle_WinPaysSnapshotPayout walks the worked lifecycle:
// 100.00, stake 20.00 at 2.50 -> 80.00, win -> 130.00. A repeated
// settlement must not credit again.
func Test_BetLifecycle_WinPaysSnapshotPayout(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	// Place
	req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/bets?user_id=%d", testUserID), bytes.NewBuffer(placeBetRequest(uuid.New().String())))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var placed model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &placed)
	assert.Equal(t, "80.00", placed.Balance)
	assert.Equal(t, "50.00", placed.Bet.PotentialPayout.String())
	betID := placed.Bet.ID

	// Settle as a win
	settleBody, _ := json.Marshal(model.SettleBetRequest{Result: "home"})
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/bets/%d/settle", betID), bytes.NewBuffer(settleBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var settled model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &settled)
	assert.Equal(t, "settled", settled.Status)
	assert.Equal(t, "130.00", settled.Balance)
	assert.Equal(t, model.BetWon, settled.Bet.State)

	// Settle again: no second credit
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/bets/%d/settle", betID), bytes.NewBuffer(settleBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var again model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &again)
	assert.Equal(t, "already_settled", again.Status)
	assert.Equal(t, "130.00", again.Balance)

	var payoutCount int
	err := testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1 AND kind = 'payout_credit'", testUserID).Scan(&payoutCount)
	require.NoError(t, err)
	assert.Equal(t, 1, payoutCount, "Exactly one payout credit should be logged")

	assertLedgerConsistent(t)
}

// Test_CancelRefundsStake verifies cancellation refunds the stake as a
// refund credit and that a retried cancellation replays instead of
// refunding twice.
func Test_CancelRefundsStake(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	// Place
	req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/bets?user_id=%d", testUserID), bytes.NewBuffer(placeBetRequest(uuid.New().String())))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var placed model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &placed)
	betID := placed.Bet.ID

	// Cancel
	cancelKey := uuid.New().String()
	cancelBody, _ := json.Marshal(model.CancelBetRequest{IdempotencyKey: cancelKey})
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/bets/%d/cancel?user_id=%d", betID, testUserID), bytes.NewBuffer(cancelBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var cancelled model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &cancelled)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "100.00", cancelled.Balance)
	assert.Equal(t, model.BetCancelled, cancelled.Bet.State)

	// Retry the cancellation with the same key: replay, not a second refund
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/v1/bets/%d/cancel?user_id=%d", betID, testUserID), bytes.NewBuffer(cancelBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var replayed model.BetResponse
	json.Unmarshal(w.Body.Bytes(), &replayed)
	assert.Equal(t, "already_processed", replayed.Status)
	assert.Equal(t, "100.00", replayed.Balance)

	var refundCount int
	err := testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1 AND kind = 'refund_credit'", testUserID).Scan(&refundCount)
	require.NoError(t, err)
	assert.Equal(t, 1, refundCount, "Exactly one refund credit should be logged")

	assertLedgerConsistent(t)
}

// Test_InsufficientFunds verifies the non-negative balance rule end to end.
func Test_InsufficientFunds(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	body, _ := json.Marshal(model.PlaceBetRequest{
		EventID:        testEventID,
		Outcome:        "home",
		Stake:          "200.00",
		IdempotencyKey: uuid.New().String(),
	})

	req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/bets?user_id=%d", testUserID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &errResp)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errResp.Code)

	var dbBalance string
	err := testPool.QueryRow(context.Background(), "SELECT balance FROM accounts WHERE user_id = $1", testUserID).Scan(&dbBalance)
	require.NoError(t, err)
	assert.Equal(t, "100.00", dbBalance, "Rejected placement must not touch the balance")
}
