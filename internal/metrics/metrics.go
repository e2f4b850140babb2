// Package metrics exposes Prometheus instrumentation for scheduling and
// simulation activity.
package metrics

import (
	"sync"

	"github.com/me/disksched/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	prometheusMetrics sync.Once

	sequencesComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disksched",
			Subsystem: "engine",
			Name:      "sequences_total",
			Help:      "Number of service sequences computed, by algorithm.",
		},
		[]string{"algorithm"})
	seekDistance = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "disksched",
			Subsystem: "engine",
			Name:      "seek_distance",
			Help:      "Total seek distance of computed sequences, in tracks.",
			Buckets:   append([]float64{0}, prometheus.ExponentialBuckets(8, 2, 10)...),
		},
		[]string{"algorithm"})

	simulationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "disksched",
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Number of finished simulation runs, by outcome.",
		},
		[]string{"outcome"})
	simulationRunsCompleted = simulationRuns.WithLabelValues("completed")
	simulationRunsStopped   = simulationRuns.WithLabelValues("stopped")

	simulationSteps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "disksched",
			Subsystem: "simulation",
			Name:      "steps_total",
			Help:      "Number of head movements applied by simulations.",
		})
)

// Register adds the collectors to the default Prometheus registry. It is
// safe to call more than once.
func Register() {
	prometheusMetrics.Do(func() {
		prometheus.MustRegister(sequencesComputed, seekDistance, simulationRuns, simulationSteps)
	})
}

// ObserveSequence records a computed sequence and its final metrics.
func ObserveSequence(alg model.Algorithm, m model.SeekMetrics) {
	sequencesComputed.WithLabelValues(alg.String()).Inc()
	seekDistance.WithLabelValues(alg.String()).Observe(float64(m.TotalSeekTime))
}

// ObserveStep records one applied head movement.
func ObserveStep() {
	simulationSteps.Inc()
}

// ObserveRun records the outcome of a finished simulation.
func ObserveRun(stopped bool) {
	if stopped {
		simulationRunsStopped.Inc()
	} else {
		simulationRunsCompleted.Inc()
	}
}
