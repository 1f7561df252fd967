package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EvaluationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tipovacka_evaluations_total",
	Help: "Number of evaluate and reset operations by target kind",
}, []string{"target", "operation"})

var RowFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tipovacka_row_failures_total",
	Help: "Number of rows that failed inside batch writes, by error kind",
}, []string{"kind"})

var RecomputedAggregatesCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tipovacka_recomputed_aggregates_total",
	Help: "Number of profile aggregates written by recomputation",
})

var ManualAdjustmentCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tipovacka_manual_adjustments_total",
	Help: "Number of manual point adjustments",
})

var DriftingProfilesGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "tipovacka_drifting_profiles",
	Help: "Profiles whose cached points differ from the recomputed total at the last check",
})

var PublishErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tipovacka_publish_errors_total",
	Help: "Number of points-changed events that could not be published",
})

var LeaderboardSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "tipovacka_leaderboard_subscribers",
	Help: "Open leaderboard websocket connections",
})
