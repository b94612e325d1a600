package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "faustdle"

// Game counters, registered once on the default registry and served at /metrics.
var (
	gamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "games_started_total",
		Help:      "Games started by kind (classic, scramble) and mode",
	}, []string{"kind", "mode"})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "games_finished_total",
		Help:      "Games finished by kind and result (won, lost)",
	}, []string{"kind", "result"})

	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "guesses_total",
		Help:      "Guesses by outcome (hit, miss, unknown)",
	}, []string{"outcome"})

	seedSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "seed_searches_total",
		Help:      "Seed searches by result (found, not_found, error)",
	}, []string{"result"})

	seedSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "seed_search_duration_seconds",
		Help:      "Wall time spent searching for a seed",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)
