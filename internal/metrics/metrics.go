package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects per-request metrics from a coinlist.RESTClient.
type Recorder struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinlist_requests_total",
				Help: "Requests sent to the CoinList REST API by method and HTTP status",
			},
			[]string{"method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coinlist_request_duration_seconds",
				Help:    "Round-trip latency of CoinList REST requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinlist_request_errors_total",
				Help: "Requests that failed before a valid JSON response was read",
			},
			[]string{"method"},
		),
	}

	r.registry.MustRegister(r.requests, r.duration, r.errors)
	return r
}

// ObserveRequest records one dispatched request. status is 0 when no response arrived.
func (r *Recorder) ObserveRequest(method string, status int, elapsed time.Duration, err error) {
	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}

	r.requests.WithLabelValues(method, code).Inc()
	r.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if err != nil {
		r.errors.WithLabelValues(method).Inc()
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps all metrics in the text exposition format for the
// node-exporter textfile collector. The write is atomic.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create metrics directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
