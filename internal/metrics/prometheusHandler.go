package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var searchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "search_requests_total",
	Help: "Resolved searches labelled by the most precise tier that matched",
}, []string{"tier"})

var indexDocuments = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "index_documents",
	Help: "Documents in the live index per category",
}, []string{"category"})

var indexFailedDocuments = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "index_failed_documents",
	Help: "Documents in the live index whose content could not be extracted",
})

var indexGeneration = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "index_generation",
	Help: "Generation number of the live index",
})

var indexBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "index_build_duration_seconds",
	Help:    "Time spent building an index snapshot.",
	Buckets: []float64{.01, .05, .1, .5, 1, 2, 5, 10, 30},
})

var reloadJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reload_jobs_total",
	Help: "Reload jobs labelled by final status",
}, []string{"status"})

var countJobsInQueue = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "count_jobs_in_queue",
	Help: "Number of reload jobs waiting for the worker",
})

var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cache_lookups_total",
	Help: "Search cache lookups labelled by hit, miss or error",
}, []string{"result"})

var keepAlivePingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "keepalive_pings_total",
	Help: "Keep-alive pings labelled by outcome",
}, []string{"result"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses (MCP) working through the recorder.
func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func CaptureSearch(tier string) {
	searchRequestsTotal.WithLabelValues(tier).Inc()
}

// CaptureIndex publishes the shape of a freshly swapped-in index.
func CaptureIndex(generation uint64, perCategory map[string]int, failed int, elapsed time.Duration) {
	for category, count := range perCategory {
		indexDocuments.WithLabelValues(category).Set(float64(count))
	}
	indexFailedDocuments.Set(float64(failed))
	indexGeneration.Set(float64(generation))
	indexBuildDuration.Observe(elapsed.Seconds())
}

func CaptureReloadJob(status string) {
	reloadJobsTotal.WithLabelValues(status).Inc()
}

func IncrementJobsInQueue() {
	countJobsInQueue.Inc()
}

func DecrementJobsInQueue() {
	countJobsInQueue.Dec()
}

func CaptureCacheLookup(result string) {
	cacheLookupsTotal.WithLabelValues(result).Inc()
}

func CaptureKeepAlive(result string) {
	keepAlivePingsTotal.WithLabelValues(result).Inc()
}
