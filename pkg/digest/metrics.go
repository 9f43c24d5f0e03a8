package digest

import (
	"sync"

	"github.com/buildbarn/bb-sha256d/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	generatorPrometheusMetrics sync.Once

	generatorBytesHashedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "digest",
			Name:      "generator_bytes_hashed_total",
			Help:      "Total number of bytes written into digest generators.",
		},
		[]string{"function"})
	generatorDigestsComputedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "digest",
			Name:      "generator_digests_computed_total",
			Help:      "Total number of digests computed by digest generators.",
		},
		[]string{"function"})
	generatorDigestsComputedSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "digest",
			Name:      "generator_digests_computed_size_bytes",
			Help:      "Size of objects for which digests were computed, in bytes.",
			Buckets:   append([]float64{0}, util.DecimalExponentialBuckets(0, 10, 0)...),
		},
		[]string{"function"})
)

// RegisterPrometheusMetrics registers the metrics of digest generators
// against the default Prometheus registry. It may safely be called
// multiple times.
func RegisterPrometheusMetrics() {
	generatorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(generatorBytesHashedTotal)
		prometheus.MustRegister(generatorDigestsComputedTotal)
		prometheus.MustRegister(generatorDigestsComputedSizeBytes)
	})
}
