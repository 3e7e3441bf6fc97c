package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	ExtractionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumedex",
			Name:      "extraction_requests_total",
			Help:      "Total number of document extraction requests",
		},
		[]string{"status"},
	)

	ExtractionRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resumedex",
			Name:      "extraction_request_duration_seconds",
			Help:      "Document extraction request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ExtractionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumedex",
			Name:      "extraction_cache_total",
			Help:      "Extraction cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	ResumesAnalyzedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumedex",
			Name:      "resumes_analyzed_total",
			Help:      "Total number of resumes analyzed",
		},
		[]string{"status"},
	)

	RankRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resumedex",
			Name:      "rank_requests_total",
			Help:      "Total number of ranking requests",
		},
	)

	RankBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resumedex",
			Name:      "rank_batch_size",
			Help:      "Number of resumes scored per ranking request",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers Prometheus pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(ExtractionRequestsTotal)
	prometheus.MustRegister(ExtractionRequestDuration)
	prometheus.MustRegister(ExtractionCacheTotal)
	prometheus.MustRegister(ResumesAnalyzedTotal)
	prometheus.MustRegister(RankRequestsTotal)
	prometheus.MustRegister(RankBatchSize)
	pipelineMetricsRegistered = true
}
