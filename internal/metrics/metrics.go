// Package metrics records evaluation activity in Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Evaluation outcomes used as label values.
const (
	OutcomeComputed = "computed"
	OutcomeCached   = "cached"
	OutcomeInvalid  = "invalid"
)

// Recorder counts evaluations and tracks their duration.
type Recorder struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewRecorder registers the evaluation collectors on reg. If reg is nil the
// default registerer is used; already-registered collectors are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pv_evaluations_total",
		Help: "Total number of system evaluations by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pv_evaluation_duration_seconds",
		Help:    "Time spent computing one evaluation",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(evaluations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			evaluations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &Recorder{evaluations: evaluations, duration: duration}, nil
}

// RecordEvaluation increments the outcome counter. Nil receivers are no-ops
// so callers can run without metrics.
func (r *Recorder) RecordEvaluation(outcome string) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(outcome).Inc()
}

// RecordDuration observes the time one computed evaluation took.
func (r *Recorder) RecordDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.duration.Observe(d.Seconds())
}
