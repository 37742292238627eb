package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SimulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oslab_simulations_total",
			Help: "Total number of simulations served, by kind and algorithm",
		},
		[]string{"kind", "algorithm"},
	)

	PageFaultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oslab_page_faults_total",
		Help: "Total page faults observed across all served replacement simulations",
	})

	RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "oslab_request_duration_seconds",
		Help:    "Histogram of simulation request handling time",
		Buckets: prometheus.DefBuckets,
	})

	SessionsLive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "oslab_sessions_live",
		Help: "Number of retained result sessions",
	})
)

func init() {
	prometheus.MustRegister(SimulationsTotal, PageFaultsTotal, RequestDuration, SessionsLive)
}

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
