package bench

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 전용 레지스트리에 올라가는 벤치마크 지표
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	trials   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics 지표 생성
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quickbench",
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock duration of a single sort call.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"config", "size"}),
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickbench",
			Name:      "trials_total",
			Help:      "Timed sort trials executed.",
		}, []string{"config"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickbench",
			Name:      "verification_failures_total",
			Help:      "Trials whose output failed the order or permutation check.",
		}, []string{"config"}),
	}
}

func (m *Metrics) observe(config string, size int, d time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(config, strconv.Itoa(size)).Observe(d.Seconds())
	m.trials.WithLabelValues(config).Inc()
	if failed {
		m.failures.WithLabelValues(config).Inc()
	}
}

// Gatherer 레지스트리
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile node_exporter textfile 형식으로 기록
func (m *Metrics) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, m.registry); err != nil {
		return errors.Wrapf(err, "write metrics %s", filename)
	}
	return nil
}
