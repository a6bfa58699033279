package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flatcatalog_requests_total",
		Help: "Total number of HTTP requests by method and status",
	}, []string{"method", "status"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "flatcatalog_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	StoreErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flatcatalog_store_errors_total",
		Help: "Total store-level errors by entity",
	}, []string{"entity"})
	EntitiesCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flatcatalog_entities_created_total",
		Help: "Total entities created by type",
	}, []string{"entity"})
	EntitiesDeletedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flatcatalog_entities_deleted_total",
		Help: "Total entities deleted by type",
	}, []string{"entity"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(StoreErrorsTotal)
	prometheus.MustRegister(EntitiesCreatedTotal)
	prometheus.MustRegister(EntitiesDeletedTotal)
}

// Handler exposes the registered metrics for Prometheus scraping.
func Handler() http.Handler { return promhttp.Handler() }
