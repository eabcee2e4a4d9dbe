package cronwhen

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	validateLatency  *prometheus.HistogramVec
	validateOutcomes *prometheus.CounterVec
	telemetryOnce    sync.Once

	// Latency buckets for the validate latency histogram. This can be
	// overridden on the application side before the first Validator
	// with telemetry enabled is created.
	LatencyBuckets = prometheus.ExponentialBuckets(0.05, 2.5, 12)
)

func initTelemetry() {
	telemetryOnce.Do(func() {
		validateLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cronwhen_validate_latency_milliseconds",
			Help:    "time taken to validate a cron expression in milliseconds",
			Buckets: LatencyBuckets,
		}, []string{"outcome"})

		validateOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cronwhen_validations_total",
			Help: "cron expression validations by outcome and error kind",
		}, []string{"outcome", "error_kind"})

		prometheus.MustRegister(validateLatency, validateOutcomes)
	})
}

func observeValidation(elapsed time.Duration, result Result) {
	outcome := "ok"
	errorKind := "none"
	if !result.OK() {
		outcome = "error"
		errorKind = "internal"
		var perr *ParseError
		if errors.As(result.Err, &perr) {
			errorKind = perr.Kind.String()
		}
	}
	validateLatency.WithLabelValues(outcome).Observe(float64(elapsed.Nanoseconds()) / 1e6)
	validateOutcomes.WithLabelValues(outcome, errorKind).Inc()
}
