package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vocalwork",
		Name:      "jobs_completed_total",
		Help:      "Number of jobs transitioned to COMPLETED.",
	})

	WalletCredited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vocalwork",
		Name:      "wallet_credited_total",
		Help:      "Total reward amount credited to candidate wallets.",
	})

	RecordingSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vocalwork",
		Name:      "recording_sessions_active",
		Help:      "Recording sessions currently held by the manager.",
	})

	GenerationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vocalwork",
		Name:      "generation_fallbacks_total",
		Help:      "Generation calls that degraded to the fixed fallback.",
	}, []string{"kind"})
)
