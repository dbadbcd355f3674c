package model

import "errors"

var (
	// Bet rejection reasons. User-correctable, never retried internally.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStakeBelowMinimum = errors.New("stake below minimum")
	ErrStakeAboveMaximum = errors.New("stake above maximum")
	ErrMarketClosed      = errors.New("event is not open for betting")

	// Cancellation rejections.
	ErrBetAlreadySettled        = errors.New("bet already settled")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")

	// Transient; retried internally up to the configured budget before
	// being surfaced.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrInvariantViolation means a reconciliation check failed. The
	// affected account is frozen and refuses further mutation.
	ErrInvariantViolation = errors.New("ledger invariant violation")
	ErrAccountFrozen      = errors.New("account frozen")

	ErrAccountNotFound = errors.New("account not found")
	ErrBetNotFound     = errors.New("bet not found")
	ErrEventNotFound   = errors.New("event not found")

	// Idempotency failures.
	ErrDuplicateKey     = errors.New("idempotency key already used")
	ErrRequestInFlight  = errors.New("request with this key is in flight")
	ErrKeyOwnerMismatch = errors.New("idempotency key belongs to another request")

	ErrInvalidStake    = errors.New("invalid stake")
	ErrInvalidOutcome  = errors.New("invalid outcome")
	ErrInvalidBetState = errors.New("invalid bet state")
	ErrNotBetOwner     = errors.New("bet belongs to another user")
)
