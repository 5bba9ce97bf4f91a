package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"numevo/internal/evo"
)

// RunMetrics records engine progress on a private registry so concurrent
// clients never collide on the default one.
type RunMetrics struct {
	registry *prometheus.Registry

	generationsEvaluated prometheus.Counter
	populationSize       prometheus.Gauge
	populationAverage    prometheus.Gauge
	populationStdDev     prometheus.Gauge
	runsStopped          *prometheus.CounterVec
	generationsPerRun    prometheus.Histogram
}

func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		generationsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "numevo_generations_evaluated_total",
			Help: "Total number of generations handed to the stop condition",
		}),
		populationSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "numevo_population_size",
			Help: "Size of the most recently evaluated population",
		}),
		populationAverage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "numevo_population_average",
			Help: "Average component sum of the most recently evaluated population",
		}),
		populationStdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "numevo_population_stddev",
			Help: "Standard deviation of component sums in the most recently evaluated population",
		}),
		runsStopped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numevo_runs_stopped_total",
				Help: "Total number of finished runs by stop condition",
			},
			[]string{"stop"},
		),
		generationsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "numevo_generations_per_run",
			Help:    "Distribution of bred generations per finished run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	m.registry.MustRegister(
		m.generationsEvaluated,
		m.populationSize,
		m.populationAverage,
		m.populationStdDev,
		m.runsStopped,
		m.generationsPerRun,
	)
	return m
}

func (m *RunMetrics) ObserveGeneration(d evo.GenerationDiagnostics) {
	m.generationsEvaluated.Inc()
	m.populationSize.Set(float64(d.PopulationSize))
	m.populationAverage.Set(d.Average)
	m.populationStdDev.Set(d.StdDev)
}

func (m *RunMetrics) ObserveStop(generations int, stop string) {
	m.runsStopped.WithLabelValues(stop).Inc()
	m.generationsPerRun.Observe(float64(generations))
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText dumps every registered metric in the Prometheus text format.
func (m *RunMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("encode metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
