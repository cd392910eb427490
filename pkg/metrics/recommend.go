package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served",
	})

	// How many times the degraded fallback path produced the result set
	FallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_fallback_total",
		Help: "Recommendation responses served from the degraded fallback path",
	})

	// Dataset file parses (every request without the cache, reloads with it)
	DatasetReloadTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dataset_reload_total",
		Help: "Times the dataset file was read and parsed",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendTotal,
		FallbackTotal,
		DatasetReloadTotal,
	)
}
