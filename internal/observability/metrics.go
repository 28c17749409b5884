package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// CacheHits counts fresh cache reads, per namespace.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of cache reads served from a fresh entry",
		},
		[]string{"namespace"},
	)

	// CacheMisses counts reads that found no fresh entry, per namespace.
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of cache reads that found no fresh entry",
		},
		[]string{"namespace"},
	)

	// APIRequests counts outgoing catalog API calls, per endpoint.
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_requests_total",
			Help: "Total number of requests issued to the catalog API",
		},
		[]string{"endpoint"},
	)

	// APIErrors counts failed catalog API calls, per endpoint.
	APIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_errors_total",
			Help: "Total number of catalog API requests that failed",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(CacheHits, CacheMisses, APIRequests, APIErrors)
}
