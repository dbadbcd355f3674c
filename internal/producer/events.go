package producer

// BetEvent is the JSON payload published for bet lifecycle changes.
type BetEvent struct {
	Type     string `json:"type"` // bet_placed, bet_settled, bet_cancelled
	BetID    int64  `json:"bet_id"`
	UserID   int64  `json:"user_id"`
	EventID  int64  `json:"event_id"`
	Outcome  string `json:"outcome"`
	Stake    string `json:"stake"`
	Odds     string `json:"odds"`
	State    string `json:"state"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}

const (
	TypeBetPlaced    = "bet_placed"
	TypeBetSettled   = "bet_settled"
	TypeBetCancelled = "bet_cancelled"
)
