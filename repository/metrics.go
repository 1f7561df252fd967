package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "tipovacka_sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

func observe(query string) func() {
	t := time.Now()
	return func() {
		queryDuration.WithLabelValues(query).Observe(time.Since(t).Seconds())
	}
}
