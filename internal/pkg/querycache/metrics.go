package querycache

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "hits_total",
		Help:      "Reads served from a cached entry.",
	}, []string{"resource"})
	cacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "misses_total",
		Help:      "Reads that found no fresh entry.",
	}, []string{"resource"})
	cacheFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "fetches_total",
		Help:      "Outbound fetch attempts, including retries.",
	}, []string{"resource"})
	cacheFetchErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "fetch_errors_total",
		Help:      "Reads that failed after exhausting retries.",
	}, []string{"resource"})
	cacheInvalidations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "invalidations_total",
		Help:      "Entries marked stale by a mutation.",
	}, []string{"resource"})
	cacheWaiting = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "weddingsite",
		Subsystem: "query_cache",
		Name:      "waiting_readers",
		Help:      "Readers currently blocked on an in-flight fetch.",
	}, []string{"resource"})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, cacheFetches, cacheFetchErrors, cacheInvalidations, cacheWaiting)
}
