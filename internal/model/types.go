package model

// Outcome is one of an event's bettable results.
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case string(OutcomeHome):
		return OutcomeHome, nil
	case string(OutcomeDraw):
		return OutcomeDraw, nil
	case string(OutcomeAway):
		return OutcomeAway, nil
	default:
		return "", ErrInvalidOutcome
	}
}

func (o Outcome) String() string {
	return string(o)
}

// BetState is the bet lifecycle state. PENDING is the only non-terminal
// state; no transition leaves WON, LOST or CANCELLED.
type BetState string

const (
	BetPending   BetState = "pending"
	BetWon       BetState = "won"
	BetLost      BetState = "lost"
	BetCancelled BetState = "cancelled"
)

func ParseBetState(s string) (BetState, error) {
	switch s {
	case string(BetPending):
		return BetPending, nil
	case string(BetWon):
		return BetWon, nil
	case string(BetLost):
		return BetLost, nil
	case string(BetCancelled):
		return BetCancelled, nil
	default:
		return "", ErrInvalidBetState
	}
}

func (s BetState) String() string {
	return string(s)
}

func (s BetState) Terminal() bool {
	return s != BetPending
}

// LedgerKind classifies a ledger entry. Refunds and payouts are distinct
// kinds even though both credit the account.
type LedgerKind string

const (
	KindStakeDebit   LedgerKind = "stake_debit"
	KindRefundCredit LedgerKind = "refund_credit"
	KindPayoutCredit LedgerKind = "payout_credit"
)

func (k LedgerKind) String() string {
	return string(k)
}

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventLive      EventStatus = "live"
	EventFinished  EventStatus = "finished"
	EventCancelled EventStatus = "cancelled"
)

type IdempotencyStatus string

const (
	IdemInProgress IdempotencyStatus = "in_progress"
	IdemSucceeded  IdempotencyStatus = "succeeded"
)

type Operation string

const (
	OpPlaceBet  Operation = "place_bet"
	OpCancelBet Operation = "cancel_bet"
)
