package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BetsPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bets_placed_total",
		Help: "Bets accepted, by chosen outcome.",
	}, []string{"outcome"})

	BetsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bets_rejected_total",
		Help: "Placement attempts rejected, by reason.",
	}, []string{"reason"})

	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bets_settled_total",
		Help: "Bets moved to a terminal state, by result.",
	}, []string{"result"})

	StakeVolume = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stake_volume_cents_total",
		Help: "Total stake accepted, in cents.",
	})

	VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_version_conflicts_total",
		Help: "Optimistic-concurrency conflicts observed on account mutation.",
	})

	ReconciliationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_reconciliation_failures_total",
		Help: "Accounts whose balance diverged from their ledger sum.",
	})
)
